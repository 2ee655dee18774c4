package localstore

import (
	"errors"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/repository"
	"github.com/mael/portfolio-showcase/internal/store"
)

type SessionRepo struct {
	store store.Store
}

func NewSessionRepo(s store.Store) *SessionRepo {
	return &SessionRepo{store: s}
}

func (r *SessionRepo) Get() (*domain.User, error) {
	var user domain.User
	if err := r.store.Get(keySession, &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *SessionRepo) Put(user *domain.User) error {
	return r.store.Put(keySession, user)
}

func (r *SessionRepo) Clear() error {
	return r.store.Delete(keySession)
}

var _ repository.SessionRepository = (*SessionRepo)(nil)
