package repository

import "github.com/mael/portfolio-showcase/internal/domain"

// Repositories are synchronous: every mutation has reached the durable store
// by the time the call returns. There are no contexts because there is
// nothing to cancel; the storage boundary blocks the calling turn.

type UserRepository interface {
	All() ([]domain.User, error)
	GetByID(id domain.ID) (*domain.User, error)
	// GetByEmail matches case-sensitively, as the registration flow does.
	GetByEmail(email string) (*domain.User, error)
	Create(user *domain.User) error
	Update(user *domain.User) error
	ReplaceAll(users []domain.User) error
}

type ProjectRepository interface {
	All() ([]domain.Project, error)
	GetByID(id domain.ID) (*domain.Project, error)
	// Create assigns the next id (max existing + 1) onto project.
	Create(project *domain.Project) error
	Update(project *domain.Project) error
	Delete(id domain.ID) error
	ReplaceAll(projects []domain.Project) error
}

// SessionRepository holds at most one durable session record: the redacted
// copy of the signed-in user.
type SessionRepository interface {
	// Get returns (nil, nil) when no session is stored.
	Get() (*domain.User, error)
	Put(user *domain.User) error
	Clear() error
}

type Repositories struct {
	User    UserRepository
	Project ProjectRepository
	Session SessionRepository
}
