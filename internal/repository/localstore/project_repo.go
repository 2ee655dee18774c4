package localstore

import (
	"errors"
	"fmt"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/repository"
	"github.com/mael/portfolio-showcase/internal/store"
)

type ProjectRepo struct {
	store store.Store
}

func NewProjectRepo(s store.Store) *ProjectRepo {
	return &ProjectRepo{store: s}
}

func (r *ProjectRepo) All() ([]domain.Project, error) {
	var projects []domain.Project
	if err := r.store.Get(keyProjects, &projects); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	// IsFavorite is view-dependent; whatever a past client persisted is not
	// source of truth.
	for i := range projects {
		projects[i].IsFavorite = false
	}
	return projects, nil
}

func (r *ProjectRepo) GetByID(id domain.ID) (*domain.Project, error) {
	projects, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return projects[i].Clone(), nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *ProjectRepo) Create(project *domain.Project) error {
	projects, err := r.All()
	if err != nil {
		return err
	}
	var maxID domain.ID
	for i := range projects {
		if projects[i].ID > maxID {
			maxID = projects[i].ID
		}
	}
	project.ID = maxID + 1
	projects = append(projects, *project.Clone())
	return r.store.Put(keyProjects, projects)
}

func (r *ProjectRepo) Update(project *domain.Project) error {
	projects, err := r.All()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = *project.Clone()
			return r.store.Put(keyProjects, projects)
		}
	}
	return fmt.Errorf("update project %d: %w", project.ID, domain.ErrProjectNotFound)
}

func (r *ProjectRepo) Delete(id domain.ID) error {
	projects, err := r.All()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == id {
			projects = append(projects[:i], projects[i+1:]...)
			return r.store.Put(keyProjects, projects)
		}
	}
	return fmt.Errorf("delete project %d: %w", id, domain.ErrProjectNotFound)
}

func (r *ProjectRepo) ReplaceAll(projects []domain.Project) error {
	return r.store.Put(keyProjects, projects)
}

var _ repository.ProjectRepository = (*ProjectRepo)(nil)
