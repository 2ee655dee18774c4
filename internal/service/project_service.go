package service

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/observe"
	"github.com/mael/portfolio-showcase/internal/repository"
)

// ProjectService owns the canonical project collection. It knows nothing
// about the viewing user; favorites belong to hydration. Every mutation
// updates the durable store and then republishes the raw collection.
type ProjectService struct {
	repo  repository.ProjectRepository
	users repository.UserRepository
	log   *zap.Logger

	projects *observe.Subject[[]domain.Project]

	mu            sync.Mutex
	pendingDelete *domain.ID
}

func NewProjectService(repo repository.ProjectRepository, users repository.UserRepository, log *zap.Logger) (*ProjectService, error) {
	s := &ProjectService{
		repo:     repo,
		users:    users,
		log:      log.Named("projects"),
		projects: observe.NewSubject[[]domain.Project](nil),
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Projects exposes the raw-collection subject for combiners.
func (s *ProjectService) Projects() *observe.Subject[[]domain.Project] {
	return s.projects
}

// List returns the raw, unhydrated collection.
func (s *ProjectService) List() []domain.Project {
	return domain.CloneProjects(s.projects.Get())
}

func (s *ProjectService) Get(id domain.ID) (*domain.Project, error) {
	return s.repo.GetByID(id)
}

// Create validates, snapshots author display fields from the registry,
// persists (the repository assigns id = max existing + 1) and republishes.
func (s *ProjectService) Create(userID domain.ID, project *domain.Project) (*domain.Project, error) {
	if err := s.validate(project); err != nil {
		return nil, err
	}
	s.snapshotAuthors(project)
	project.IsFavorite = false
	if err := s.repo.Create(project); err != nil {
		return nil, err
	}
	s.log.Info("project created", zap.Int64("projectId", int64(project.ID)), zap.Int64("userId", int64(userID)))
	return project.Clone(), s.reload()
}

// Update requires the caller to be a listed author of the stored project.
func (s *ProjectService) Update(userID domain.ID, project *domain.Project) (*domain.Project, error) {
	existing, err := s.repo.GetByID(project.ID)
	if err != nil {
		return nil, err
	}
	if !existing.HasAuthor(userID) {
		return nil, domain.ErrNotAuthor
	}
	if err := s.validate(project); err != nil {
		return nil, err
	}
	s.snapshotAuthors(project)
	project.IsFavorite = false
	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	return project.Clone(), s.reload()
}

// RequestDelete opens a delete intent for the project; nothing is removed
// until ConfirmDelete. Mirrors the confirm dialog of the UI.
func (s *ProjectService) RequestDelete(userID, projectID domain.ID) error {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		return err
	}
	if !project.HasAuthor(userID) {
		return domain.ErrNotAuthor
	}
	s.mu.Lock()
	s.pendingDelete = &projectID
	s.mu.Unlock()
	return nil
}

// CancelDelete drops the pending intent, if any.
func (s *ProjectService) CancelDelete() {
	s.mu.Lock()
	s.pendingDelete = nil
	s.mu.Unlock()
}

// ConfirmDelete removes the project of the pending intent.
func (s *ProjectService) ConfirmDelete(userID domain.ID) error {
	s.mu.Lock()
	pending := s.pendingDelete
	s.pendingDelete = nil
	s.mu.Unlock()
	if pending == nil {
		return domain.ErrNoPendingDelete
	}
	return s.Delete(userID, *pending)
}

// Delete removes a project; only a listed author may.
func (s *ProjectService) Delete(userID, projectID domain.ID) error {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		return err
	}
	if !project.HasAuthor(userID) {
		return domain.ErrNotAuthor
	}
	if err := s.repo.Delete(projectID); err != nil {
		return err
	}
	s.log.Info("project deleted", zap.Int64("projectId", int64(projectID)), zap.Int64("userId", int64(userID)))
	return s.reload()
}

// AllTags returns the sorted distinct tag vocabulary. Dedupe is
// case-insensitive with first-seen casing kept, matching how the editing
// form normalizes entries.
func (s *ProjectService) AllTags() []string {
	return distinct(s.projects.Get(), func(p domain.Project) []string { return p.Tags })
}

// AllModules is AllTags for the module facet.
func (s *ProjectService) AllModules() []string {
	return distinct(s.projects.Get(), func(p domain.Project) []string { return p.Modules })
}

func distinct(projects []domain.Project, pick func(domain.Project) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range projects {
		for _, v := range pick(p) {
			k := strings.ToLower(v)
			if !seen[k] {
				seen[k] = true
				out = append(out, v)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

func (s *ProjectService) validate(p *domain.Project) error {
	if len(p.Authors) == 0 {
		return domain.ErrNoAuthors
	}
	if len(p.Tags) == 0 {
		return domain.ErrNoTags
	}
	if len(p.AdditionalImages) > domain.MaxAdditionalImages {
		return domain.ErrTooManyImages
	}
	return nil
}

// snapshotAuthors refreshes the denormalized author fields from the live
// registry; unknown ids keep whatever the caller sent.
func (s *ProjectService) snapshotAuthors(p *domain.Project) {
	for i := range p.Authors {
		if u, err := s.users.GetByID(p.Authors[i].ID); err == nil {
			p.Authors[i].Name = u.FullName()
			p.Authors[i].AvatarURL = u.AvatarURL
		}
	}
}

func (s *ProjectService) reload() error {
	projects, err := s.repo.All()
	if err != nil {
		return err
	}
	s.projects.Set(projects)
	return nil
}
