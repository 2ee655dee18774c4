package domain

// MaxAdditionalImages caps the secondary image list; the primary image is
// stored separately in ImageURL.
const MaxAdditionalImages = 4

// Author is a denormalized snapshot of a user at the time a project was
// saved. Display fields are re-resolved against the live registry during
// hydration; the snapshot is what remains when the user record is gone.
type Author struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type ProjectLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Project struct {
	ID               ID            `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	ImageURL         string        `json:"imageUrl"`
	AdditionalImages []string      `json:"additionalImages,omitempty"`
	Authors          []Author      `json:"authors"`
	Tags             []string      `json:"tags"`
	Modules          []string      `json:"modules,omitempty"`
	Promo            string        `json:"promo"`
	Origin           string        `json:"origin,omitempty"`
	SkillsLearned    string        `json:"skillsLearned,omitempty"`
	Links            []ProjectLink `json:"links,omitempty"`

	// IsFavorite is derived per viewing user during hydration. The stored
	// value is ignored on load and never treated as source of truth.
	IsFavorite bool `json:"isFavorite"`
}

// HasAuthor reports whether userID appears in the author list.
func (p *Project) HasAuthor(userID ID) bool {
	for _, a := range p.Authors {
		if a.ID == userID {
			return true
		}
	}
	return false
}

func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	out := *p
	if p.AdditionalImages != nil {
		out.AdditionalImages = append([]string(nil), p.AdditionalImages...)
	}
	if p.Authors != nil {
		out.Authors = append([]Author(nil), p.Authors...)
	}
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	if p.Modules != nil {
		out.Modules = append([]string(nil), p.Modules...)
	}
	if p.Links != nil {
		out.Links = append([]ProjectLink(nil), p.Links...)
	}
	return &out
}

// CloneProjects deep-copies a collection.
func CloneProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i := range projects {
		out[i] = *projects[i].Clone()
	}
	return out
}
