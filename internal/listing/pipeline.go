package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mael/portfolio-showcase/internal/domain"
)

// Page sizes observed by the two listing layouts.
const (
	PageSizeListing = 12
	PageSizeProfile = 4
)

// Query is one run of the pipeline: the page's transient state plus the
// page size of the calling view.
type Query struct {
	Search   string
	Sort     domain.SortOption
	Filters  domain.Filters
	Page     int
	PageSize int
}

// QueryFromState builds a Query from a saved page state.
func QueryFromState(st domain.PageState, pageSize int) Query {
	return Query{
		Search:   st.Search,
		Sort:     st.Sort,
		Filters:  st.Filters,
		Page:     st.Page,
		PageSize: pageSize,
	}
}

// Result is the slice to render plus the pagination envelope.
type Result struct {
	Items      []domain.Project `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	TotalCount int              `json:"totalCount"`
}

// Apply runs the staged pipeline: search, facet filter, sort, paginate.
// Each stage is a no-op on an empty/default input, the whole run is
// idempotent, and changing only the page number never changes the
// filtered/sorted set, only the returned slice.
func Apply(projects []domain.Project, q Query) Result {
	filtered := filterBySearch(projects, q.Search)
	filtered = filterByFacets(filtered, q.Filters)
	sortProjects(filtered, q.Sort)
	return paginate(filtered, q.Page, q.PageSize)
}

func filterBySearch(projects []domain.Project, term string) []domain.Project {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]domain.Project(nil), projects...)
	}
	var out []domain.Project
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Title), term) || anyContains(p.Tags, term) {
			out = append(out, p)
		}
	}
	return out
}

func anyContains(values []string, lowerTerm string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lowerTerm) {
			return true
		}
	}
	return false
}

func filterByFacets(projects []domain.Project, f domain.Filters) []domain.Project {
	out := projects
	if f.SectionsActive.Tags && len(f.Tags) > 0 {
		out = keep(out, func(p domain.Project) bool { return intersects(p.Tags, f.Tags) })
	}
	if f.SectionsActive.Modules && len(f.Modules) > 0 {
		out = keep(out, func(p domain.Project) bool { return intersects(p.Modules, f.Modules) })
	}
	if f.SectionsActive.Promos && len(f.Promos) > 0 {
		out = keep(out, func(p domain.Project) bool { return contains(f.Promos, p.Promo) })
	}
	return out
}

func keep(projects []domain.Project, pred func(domain.Project) bool) []domain.Project {
	var out []domain.Project
	for _, p := range projects {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func intersects(have, want []string) bool {
	for _, h := range have {
		if contains(want, h) {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func sortProjects(projects []domain.Project, key domain.SortOption) {
	switch key {
	case domain.SortOldest:
		sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	case domain.SortAZ:
		c := collate.New(language.French)
		sort.SliceStable(projects, func(i, j int) bool {
			return c.CompareString(projects[i].Title, projects[j].Title) < 0
		})
	case domain.SortZA:
		c := collate.New(language.French)
		sort.SliceStable(projects, func(i, j int) bool {
			return c.CompareString(projects[i].Title, projects[j].Title) > 0
		})
	default:
		// SortRecent and any unknown key: newest (highest id) first.
		sort.Slice(projects, func(i, j int) bool { return projects[i].ID > projects[j].ID })
	}
}

func paginate(projects []domain.Project, page, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = PageSizeListing
	}
	totalPages := (len(projects) + pageSize - 1) / pageSize

	// Out-of-range pages snap back to the first page, not the last valid
	// one, so a filter that shrinks the set restarts the reader at the top.
	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(projects) {
		start = len(projects)
	}
	if end > len(projects) {
		end = len(projects)
	}

	return Result{
		Items:      append([]domain.Project(nil), projects[start:end]...),
		Page:       page,
		TotalPages: totalPages,
		TotalCount: len(projects),
	}
}
