package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps sentinel errors to status codes; everything unexpected is
// a 500 with a generic body. Bodies are plain text.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrNotAuthenticated):
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrEmailTaken):
		http.Error(w, "Email already registered", http.StatusConflict)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrProjectNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrNotAuthor):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, domain.ErrNoAuthors),
		errors.Is(err, domain.ErrNoTags),
		errors.Is(err, domain.ErrTooManyImages),
		errors.Is(err, domain.ErrNoPendingDelete):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrQuotaExceeded):
		http.Error(w, "Payload too large for storage", http.StatusRequestEntityTooLarge)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
