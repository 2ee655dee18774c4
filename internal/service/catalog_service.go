package service

import (
	"go.uber.org/zap"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/listing"
	"github.com/mael/portfolio-showcase/internal/observe"
	"github.com/mael/portfolio-showcase/internal/repository"
)

// CatalogService is the hydration combiner plus the listing views built on
// it. It owns no collection of its own: whenever the raw projects or the
// session change, it recomputes the hydrated slice and republishes it, and
// views run the pipeline over that slice with their page's saved state.
type CatalogService struct {
	auth     *AuthService
	projects *ProjectService
	users    repository.UserRepository
	states   *listing.PageStates
	log      *zap.Logger

	hydrated *observe.Subject[[]domain.Project]
}

func NewCatalogService(auth *AuthService, projects *ProjectService, users repository.UserRepository, log *zap.Logger) *CatalogService {
	c := &CatalogService{
		auth:     auth,
		projects: projects,
		users:    users,
		states:   listing.NewPageStates(),
		log:      log.Named("catalog"),
		hydrated: observe.NewSubject[[]domain.Project](nil),
	}
	// Push-based: both inputs re-trigger hydration on every change. The
	// subscriptions live as long as the application context, so the
	// unsubscribe handles are dropped.
	projects.Projects().Subscribe(func([]domain.Project) { c.recompute() })
	auth.Sessions().Subscribe(func(*domain.User) { c.recompute() })
	return c
}

func (c *CatalogService) recompute() {
	registry, err := c.users.All()
	if err != nil {
		c.log.Warn("user registry unavailable, keeping author snapshots", zap.Error(err))
	}
	c.hydrated.Set(listing.Hydrate(c.projects.Projects().Get(), c.auth.Current(), registry))
}

// Hydrated exposes the combined subject; the websocket feed subscribes here.
func (c *CatalogService) Hydrated() *observe.Subject[[]domain.Project] {
	return c.hydrated
}

// States exposes the per-page transient UI state store.
func (c *CatalogService) States() *listing.PageStates {
	return c.states
}

// Home runs the pipeline for the home listing. A non-nil change is saved
// before recomputing, so coming back to the page reproduces the view.
func (c *CatalogService) Home(change *listing.StateChange) (listing.Result, domain.PageState) {
	st := c.pageState(listing.PageHome, change)
	return listing.Apply(c.hydrated.Get(), listing.QueryFromState(st, listing.PageSizeListing)), st
}

// Favorites runs the pipeline over the signed-in user's favorites.
func (c *CatalogService) Favorites(change *listing.StateChange) (listing.Result, domain.PageState, error) {
	if c.auth.Current() == nil {
		return listing.Result{}, domain.PageState{}, domain.ErrNotAuthenticated
	}
	st := c.pageState(listing.PageFavorites, change)
	favorites := keepProjects(c.hydrated.Get(), func(p domain.Project) bool { return p.IsFavorite })
	return listing.Apply(favorites, listing.QueryFromState(st, listing.PageSizeListing)), st, nil
}

// OwnedProjects runs the pipeline over the projects authored by the
// signed-in user, with the profile view's smaller page size.
func (c *CatalogService) OwnedProjects(change *listing.StateChange) (listing.Result, domain.PageState, error) {
	cur := c.auth.Current()
	if cur == nil {
		return listing.Result{}, domain.PageState{}, domain.ErrNotAuthenticated
	}
	st := c.pageState(listing.PageProfile, change)
	owned := keepProjects(c.hydrated.Get(), func(p domain.Project) bool { return p.HasAuthor(cur.ID) })
	return listing.Apply(owned, listing.QueryFromState(st, listing.PageSizeProfile)), st, nil
}

// pageState saves the change first, then reads back: the save-before-
// recompute contract of the UI.
func (c *CatalogService) pageState(pageKey string, change *listing.StateChange) domain.PageState {
	if change != nil {
		return c.states.Save(pageKey, *change)
	}
	return c.states.Get(pageKey)
}

func keepProjects(projects []domain.Project, pred func(domain.Project) bool) []domain.Project {
	var out []domain.Project
	for _, p := range projects {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
