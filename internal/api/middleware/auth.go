package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/service"
)

type contextKey string

const UserIDKey contextKey = "userID"

// Auth validates the bearer token and binds it to the live session: a token
// whose subject is not the currently signed-in user is rejected, so a stale
// token stops working the moment someone logs out or switches accounts.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}

			userID, err := authService.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			current := authService.Current()
			if current == nil || current.ID != userID {
				http.Error(w, "Session expired", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated user id set by Auth.
func GetUserID(ctx context.Context) (domain.ID, bool) {
	id, ok := ctx.Value(UserIDKey).(domain.ID)
	return id, ok
}
