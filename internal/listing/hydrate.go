// Package listing implements the shared project-listing pipeline: hydration
// of raw records against the live user registry, staged
// search/filter/sort/paginate application, and the per-page transient UI
// state the pipeline runs with.
package listing

import "github.com/mael/portfolio-showcase/internal/domain"

// Hydrate enriches a raw project collection for one viewing user. For every
// project it re-resolves author display fields against the registry (a miss
// keeps the stored snapshot) and computes IsFavorite from the viewer's
// favorites set; a nil viewer means no favorites at all.
//
// Pure: inputs are never mutated, output order matches input order, and
// identical inputs produce deep-equal outputs.
func Hydrate(raw []domain.Project, current *domain.User, registry []domain.User) []domain.Project {
	byID := make(map[domain.ID]*domain.User, len(registry))
	for i := range registry {
		byID[registry[i].ID] = &registry[i]
	}

	out := domain.CloneProjects(raw)
	for i := range out {
		p := &out[i]
		for j := range p.Authors {
			if u, ok := byID[p.Authors[j].ID]; ok {
				p.Authors[j].Name = u.FullName()
				p.Authors[j].AvatarURL = u.AvatarURL
			}
		}
		p.IsFavorite = current != nil && current.HasFavorite(p.ID)
	}
	return out
}
