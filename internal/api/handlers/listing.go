package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/listing"
	"github.com/mael/portfolio-showcase/internal/service"
)

// ListingHandler serves the three pipeline-backed views. Query parameters
// are saved into the page's state before the pipeline runs, so a request
// without parameters replays the last view exactly.
type ListingHandler struct {
	catalog        *service.CatalogService
	projectService *service.ProjectService
}

func NewListingHandler(catalog *service.CatalogService, projectService *service.ProjectService) *ListingHandler {
	return &ListingHandler{catalog: catalog, projectService: projectService}
}

// ListingResponse is the pipeline result plus the state it ran with and the
// facet vocabularies the filter panel needs.
type ListingResponse struct {
	listing.Result
	State      domain.PageState `json:"state"`
	AllTags    []string         `json:"allTags"`
	AllModules []string         `json:"allModules"`
}

func (h *ListingHandler) Home(w http.ResponseWriter, r *http.Request) {
	result, st := h.catalog.Home(stateChangeFromQuery(r, h.catalog.States().Get(listing.PageHome)))
	h.respond(w, result, st)
}

func (h *ListingHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	result, st, err := h.catalog.Favorites(stateChangeFromQuery(r, h.catalog.States().Get(listing.PageFavorites)))
	if err != nil {
		writeError(w, err)
		return
	}
	h.respond(w, result, st)
}

func (h *ListingHandler) OwnedProjects(w http.ResponseWriter, r *http.Request) {
	result, st, err := h.catalog.OwnedProjects(stateChangeFromQuery(r, h.catalog.States().Get(listing.PageProfile)))
	if err != nil {
		writeError(w, err)
		return
	}
	h.respond(w, result, st)
}

func (h *ListingHandler) respond(w http.ResponseWriter, result listing.Result, st domain.PageState) {
	if result.Items == nil {
		result.Items = []domain.Project{}
	}
	writeJSON(w, http.StatusOK, ListingResponse{
		Result:     result,
		State:      st,
		AllTags:    emptyToSlice(h.projectService.AllTags()),
		AllModules: emptyToSlice(h.projectService.AllModules()),
	})
}

// stateChangeFromQuery turns query parameters into a partial state update.
// Absent parameters change nothing. Facet parameters rebuild the whole
// filter set on top of the page's current one:
//
//	?q=chess&sort=az&page=2
//	?tags=Python,Flask&active=tags,promos
func stateChangeFromQuery(r *http.Request, current domain.PageState) *listing.StateChange {
	q := r.URL.Query()
	change := &listing.StateChange{}
	touched := false

	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			change.Page = &n
			touched = true
		}
	}
	if q.Has("q") {
		search := q.Get("q")
		change.Search = &search
		touched = true
	}
	if v := q.Get("sort"); v != "" {
		sortKey := domain.SortOption(v)
		change.Sort = &sortKey
		touched = true
	}

	filters := current.Filters
	filtersTouched := false
	if q.Has("tags") {
		filters.Tags = splitCSV(q.Get("tags"))
		filtersTouched = true
	}
	if q.Has("modules") {
		filters.Modules = splitCSV(q.Get("modules"))
		filtersTouched = true
	}
	if q.Has("promos") {
		filters.Promos = splitCSV(q.Get("promos"))
		filtersTouched = true
	}
	if q.Has("active") {
		active := splitCSV(q.Get("active"))
		filters.SectionsActive = domain.SectionFlags{
			Tags:    containsString(active, "tags"),
			Modules: containsString(active, "modules"),
			Promos:  containsString(active, "promos"),
		}
		filtersTouched = true
	}
	if filtersTouched {
		change.Filters = &filters
		touched = true
	}

	if !touched {
		return nil
	}
	return change
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if out == nil {
		return []string{}
	}
	return out
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
