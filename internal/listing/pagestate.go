package listing

import (
	"sync"

	"github.com/mael/portfolio-showcase/internal/domain"
)

// Page keys of the listing views sharing the pipeline.
const (
	PageHome      = "home"
	PageFavorites = "favorites"
	PageProfile   = "profile"
)

// StateChange is a partial update to a page state; nil fields are left
// untouched. Callers save the change before recomputing the pipeline so
// navigating away and back reproduces the exact prior view.
type StateChange struct {
	Page    *int               `json:"page,omitempty"`
	Search  *string            `json:"search,omitempty"`
	Sort    *domain.SortOption `json:"sort,omitempty"`
	Filters *domain.Filters    `json:"filters,omitempty"`
}

// PageStates keeps one PageState per logical page for the lifetime of the
// process. This is UI convenience state, not durable data: a restart drops
// it and every page starts from defaults again.
type PageStates struct {
	mu     sync.Mutex
	states map[string]domain.PageState
}

func NewPageStates() *PageStates {
	return &PageStates{states: make(map[string]domain.PageState)}
}

// Get returns the saved state for pageKey, or the defaults when the page has
// never been visited.
func (s *PageStates) Get(pageKey string) domain.PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[pageKey]; ok {
		return st
	}
	return domain.DefaultPageState()
}

// Save shallow-merges change into the stored state and returns the result.
func (s *PageStates) Save(pageKey string, change StateChange) domain.PageState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[pageKey]
	if !ok {
		st = domain.DefaultPageState()
	}
	if change.Page != nil {
		st.Page = *change.Page
	}
	if change.Search != nil {
		st.Search = *change.Search
	}
	if change.Sort != nil {
		st.Sort = *change.Sort
	}
	if change.Filters != nil {
		st.Filters = *change.Filters
	}
	s.states[pageKey] = st
	return st
}

// Reset restores pageKey to the defaults.
func (s *PageStates) Reset(pageKey string) domain.PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := domain.DefaultPageState()
	s.states[pageKey] = st
	return st
}
