package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/mael/portfolio-showcase/internal/config"
	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/observe"
	"github.com/mael/portfolio-showcase/internal/repository"
)

// AuthService owns the single session of the application context. The
// current user is published on a subject; combiners and the websocket feed
// subscribe to it. All operations are synchronous and either complete fully
// or leave state untouched.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      *config.Config
	log      *zap.Logger
	current  *observe.Subject[*domain.User]

	// now is swappable so tests control timestamp-derived ids.
	now func() time.Time
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Promo     string
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, cfg *config.Config, log *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		log:      log.Named("auth"),
		current:  observe.NewSubject[*domain.User](nil),
		now:      time.Now,
	}
}

// Sessions exposes the session subject for subscribers.
func (s *AuthService) Sessions() *observe.Subject[*domain.User] {
	return s.current
}

// Current returns the signed-in user (password-stripped), or nil.
func (s *AuthService) Current() *domain.User {
	return s.current.Get()
}

// RestoreSession re-publishes the durable session record, if any. Called at
// startup before the server begins serving, so a restart preserves login
// state the way a page reload did.
func (s *AuthService) RestoreSession() error {
	user, err := s.sessions.Get()
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if user != nil {
		s.current.Set(user)
		s.log.Info("session restored", zap.Int64("userId", int64(user.ID)))
	}
	return nil
}

// Login matches email and password exactly, both case-sensitive, against the
// durable registry. Success stores and publishes a redacted copy of the
// user; failure returns ErrInvalidCredentials and changes nothing.
func (s *AuthService) Login(email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.setCurrent(user); err != nil {
		return nil, err
	}
	s.log.Info("login", zap.Int64("userId", int64(user.ID)))
	return s.current.Get(), nil
}

// Register appends a new user to the registry and logs them in immediately.
// The id is the registration timestamp in milliseconds, which keeps it
// disjoint from the small fixture ids without any counter state.
func (s *AuthService) Register(input RegisterInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		ID:        domain.ID(s.now().UnixMilli()),
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Promo:     input.Promo,
		Favorites: []domain.ID{},
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	if err := s.setCurrent(user); err != nil {
		return nil, err
	}
	s.log.Info("registered", zap.Int64("userId", int64(user.ID)))
	return s.current.Get(), nil
}

// Logout clears the durable session record and the in-memory session.
func (s *AuthService) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return err
	}
	s.current.Set(nil)
	return nil
}

// UpdateUser applies a profile edit through domain.MergeProfile, so the
// stored email and password survive whatever the edit carries, then
// refreshes the session copy.
func (s *AuthService) UpdateUser(updated *domain.User) (*domain.User, error) {
	stored, err := s.users.GetByID(updated.ID)
	if err != nil {
		return nil, err
	}
	merged := domain.MergeProfile(stored, updated)
	if err := s.users.Update(merged); err != nil {
		return nil, err
	}
	if cur := s.current.Get(); cur != nil && cur.ID == merged.ID {
		if err := s.setCurrent(merged); err != nil {
			return nil, err
		}
	}
	return merged.Redacted(), nil
}

// ToggleFavorite flips projectID in the signed-in user's favorites set and
// reports whether the project is now a favorite. Logged out, it is a no-op
// returning ErrNotAuthenticated for the caller to surface.
func (s *AuthService) ToggleFavorite(projectID domain.ID) (bool, error) {
	cur := s.current.Get()
	if cur == nil {
		return false, domain.ErrNotAuthenticated
	}
	stored, err := s.users.GetByID(cur.ID)
	if err != nil {
		return false, err
	}

	added := true
	for i, id := range stored.Favorites {
		if id == projectID {
			stored.Favorites = append(stored.Favorites[:i], stored.Favorites[i+1:]...)
			added = false
			break
		}
	}
	if added {
		stored.Favorites = append(stored.Favorites, projectID)
	}

	if err := s.users.Update(stored); err != nil {
		return false, err
	}
	if err := s.setCurrent(stored); err != nil {
		return false, err
	}
	return added, nil
}

// setCurrent persists the redacted copy as the durable session record and
// publishes it. The password never reaches the session or any subscriber.
func (s *AuthService) setCurrent(user *domain.User) error {
	redacted := user.Redacted()
	if err := s.sessions.Put(redacted); err != nil {
		return err
	}
	s.current.Set(redacted)
	return nil
}

// --- API tokens ---
//
// The HTTP surface authenticates callers with an HS256 token bound to the
// session user. The token is transport plumbing; the session record above
// stays the source of truth.

func (s *AuthService) GenerateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": s.now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat": s.now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (domain.ID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}
	return domain.ParseID(sub)
}
