package domain

// SortOption selects one of the four listing orders.
type SortOption string

const (
	SortRecent SortOption = "recent"
	SortOldest SortOption = "oldest"
	SortAZ     SortOption = "az"
	SortZA     SortOption = "za"
)

// SectionFlags marks which facet sections are currently active. An inactive
// section is ignored even when it still has selected values.
type SectionFlags struct {
	Tags    bool `json:"tags"`
	Modules bool `json:"modules"`
	Promos  bool `json:"promos"`
}

// Filters is the multi-facet selection of a listing page. Values within a
// facet combine with OR; active facets combine with AND.
type Filters struct {
	Tags           []string     `json:"tags"`
	Modules        []string     `json:"modules"`
	Promos         []string     `json:"promos"`
	SectionsActive SectionFlags `json:"sectionsActive"`
}

// PageState is the transient UI state of one logical listing page. It lives
// for the process lifetime only and is never written to the store.
type PageState struct {
	Page    int        `json:"page"`
	Search  string     `json:"search"`
	Sort    SortOption `json:"sort"`
	Filters Filters    `json:"filters"`
}

// DefaultPageState is the reset target: first page, no search, newest first,
// every facet active with nothing selected.
func DefaultPageState() PageState {
	return PageState{
		Page: 1,
		Sort: SortRecent,
		Filters: Filters{
			Tags:           []string{},
			Modules:        []string{},
			Promos:         []string{},
			SectionsActive: SectionFlags{Tags: true, Modules: true, Promos: true},
		},
	}
}
