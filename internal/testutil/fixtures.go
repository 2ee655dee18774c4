package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/repository"
)

var nextFixtureID int64 = 1000

func freshID() domain.ID {
	return domain.ID(atomic.AddInt64(&nextFixtureID, 1))
}

// UserBuilder creates registry users for tests.
type UserBuilder struct {
	user domain.User
}

func NewUserBuilder() *UserBuilder {
	id := freshID()
	return &UserBuilder{user: domain.User{
		ID:        id,
		Email:     fmt.Sprintf("user%d@example.com", id),
		Password:  "password123",
		FirstName: "Test",
		LastName:  fmt.Sprintf("User%d", id),
		Favorites: []domain.ID{},
	}}
}

func (b *UserBuilder) WithID(id domain.ID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.user.FirstName = first
	b.user.LastName = last
	return b
}

func (b *UserBuilder) WithFavorites(ids ...domain.ID) *UserBuilder {
	b.user.Favorites = ids
	return b
}

func (b *UserBuilder) Build(t *testing.T, repos *repository.Repositories) *domain.User {
	t.Helper()
	require.NoError(t, repos.User.Create(&b.user))
	return b.user.Clone()
}

// ProjectBuilder creates projects for tests; the repository assigns the id.
type ProjectBuilder struct {
	project domain.Project
}

func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{project: domain.Project{
		Title:       "Test Project",
		Description: "A project made in a test",
		ImageURL:    "assets/test.png",
		Authors:     []domain.Author{{ID: 1, Name: "Test User"}},
		Tags:        []string{"Go"},
		Promo:       "A1",
	}}
}

func (b *ProjectBuilder) WithTitle(title string) *ProjectBuilder {
	b.project.Title = title
	return b
}

func (b *ProjectBuilder) WithAuthors(authors ...domain.Author) *ProjectBuilder {
	b.project.Authors = authors
	return b
}

func (b *ProjectBuilder) WithTags(tags ...string) *ProjectBuilder {
	b.project.Tags = tags
	return b
}

func (b *ProjectBuilder) WithModules(modules ...string) *ProjectBuilder {
	b.project.Modules = modules
	return b
}

func (b *ProjectBuilder) WithPromo(promo string) *ProjectBuilder {
	b.project.Promo = promo
	return b
}

func (b *ProjectBuilder) Value() domain.Project {
	return *b.project.Clone()
}

func (b *ProjectBuilder) Build(t *testing.T, repos *repository.Repositories) *domain.Project {
	t.Helper()
	p := b.project.Clone()
	require.NoError(t, repos.Project.Create(p))
	return p
}
