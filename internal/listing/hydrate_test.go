package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/listing"
)

func sampleRegistry() []domain.User {
	return []domain.User{
		{ID: 1, FirstName: "Léa", LastName: "Martin", AvatarURL: "lea.png"},
		{ID: 2, FirstName: "Noah", LastName: "Dubois"},
	}
}

func sampleProjects() []domain.Project {
	return []domain.Project{
		{ID: 10, Title: "Atlas", Authors: []domain.Author{{ID: 1, Name: "Old Name", AvatarURL: "old.png"}}},
		{ID: 11, Title: "Brasserie", Authors: []domain.Author{{ID: 99, Name: "Gone User", AvatarURL: "gone.png"}}},
	}
}

func TestHydrate_ResolvesAuthorsFromRegistry(t *testing.T) {
	out := listing.Hydrate(sampleProjects(), nil, sampleRegistry())

	assert.Equal(t, "Léa Martin", out[0].Authors[0].Name)
	assert.Equal(t, "lea.png", out[0].Authors[0].AvatarURL)
	// Registry miss keeps the stored snapshot.
	assert.Equal(t, "Gone User", out[1].Authors[0].Name)
	assert.Equal(t, "gone.png", out[1].Authors[0].AvatarURL)
}

func TestHydrate_Favorites(t *testing.T) {
	viewer := &domain.User{ID: 1, Favorites: []domain.ID{11}}

	out := listing.Hydrate(sampleProjects(), viewer, sampleRegistry())
	assert.False(t, out[0].IsFavorite)
	assert.True(t, out[1].IsFavorite)
}

func TestHydrate_NilViewerMeansNoFavorites(t *testing.T) {
	raw := sampleProjects()
	raw[0].IsFavorite = true // stale stored flag must not leak through

	out := listing.Hydrate(raw, nil, sampleRegistry())
	for _, p := range out {
		assert.False(t, p.IsFavorite)
	}
}

func TestHydrate_IsPure(t *testing.T) {
	raw := sampleProjects()
	viewer := &domain.User{ID: 1, Favorites: []domain.ID{10}}
	registry := sampleRegistry()

	a := listing.Hydrate(raw, viewer, registry)
	b := listing.Hydrate(raw, viewer, registry)

	assert.Equal(t, a, b)
	// Inputs untouched.
	assert.Equal(t, "Old Name", raw[0].Authors[0].Name)
	assert.False(t, raw[1].IsFavorite)
	// Order and ids are stable.
	assert.Equal(t, domain.ID(10), a[0].ID)
	assert.Equal(t, domain.ID(11), a[1].ID)
}
