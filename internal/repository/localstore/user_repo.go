// Package localstore implements the repositories over the key/value store
// adapter. Each collection lives whole under one key; reads decode and
// normalize the full collection, writes replace it atomically.
package localstore

import (
	"errors"
	"fmt"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/repository"
	"github.com/mael/portfolio-showcase/internal/store"
)

const (
	keyUsers    = "users"
	keyProjects = "projects"
	keySession  = "session"
)

type UserRepo struct {
	store store.Store
}

func NewUserRepo(s store.Store) *UserRepo {
	return &UserRepo{store: s}
}

func (r *UserRepo) All() ([]domain.User, error) {
	var users []domain.User
	if err := r.store.Get(keyUsers, &users); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) GetByID(id domain.ID) (*domain.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return users[i].Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepo) GetByEmail(email string) (*domain.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return users[i].Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepo) Create(user *domain.User) error {
	users, err := r.All()
	if err != nil {
		return err
	}
	users = append(users, *user.Clone())
	return r.store.Put(keyUsers, users)
}

func (r *UserRepo) Update(user *domain.User) error {
	users, err := r.All()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user.Clone()
			return r.store.Put(keyUsers, users)
		}
	}
	return fmt.Errorf("update user %d: %w", user.ID, domain.ErrUserNotFound)
}

func (r *UserRepo) ReplaceAll(users []domain.User) error {
	return r.store.Put(keyUsers, users)
}

var _ repository.UserRepository = (*UserRepo)(nil)
