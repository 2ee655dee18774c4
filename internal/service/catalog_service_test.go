package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/listing"
	"github.com/mael/portfolio-showcase/internal/testutil"
)

func TestCatalogService_RecomputesOnLoginAndLogout(t *testing.T) {
	services, repos := newServices(t)
	author := testutil.NewUserBuilder().
		WithEmail("lea@example.com").
		WithPassword("azerty123").
		Build(t, repos)
	created, err := services.Project.Create(author.ID, &domain.Project{
		Title:   "Atlas",
		Authors: []domain.Author{{ID: author.ID}},
		Tags:    []string{"Go"},
	})
	require.NoError(t, err)

	_, err = services.Auth.Login("lea@example.com", "azerty123")
	require.NoError(t, err)
	_, err = services.Auth.ToggleFavorite(created.ID)
	require.NoError(t, err)

	hydrated := services.Catalog.Hydrated().Get()
	require.Len(t, hydrated, 1)
	assert.True(t, hydrated[0].IsFavorite)

	require.NoError(t, services.Auth.Logout())
	hydrated = services.Catalog.Hydrated().Get()
	require.Len(t, hydrated, 1)
	assert.False(t, hydrated[0].IsFavorite, "logout clears viewer-derived flags")
}

func TestCatalogService_HydratesAuthorDisplayFields(t *testing.T) {
	services, repos := newServices(t)
	author := testutil.NewUserBuilder().
		WithEmail("lea@example.com").
		WithPassword("azerty123").
		WithName("Léa", "Martin").
		Build(t, repos)
	_, err := services.Project.Create(author.ID, &domain.Project{
		Title:   "Atlas",
		Authors: []domain.Author{{ID: author.ID, Name: "stale"}},
		Tags:    []string{"Go"},
	})
	require.NoError(t, err)

	// A later profile edit flows into the hydrated authors.
	_, err = services.Auth.Login("lea@example.com", "azerty123")
	require.NoError(t, err)
	edit := author.Clone()
	edit.FirstName = "Léana"
	_, err = services.Auth.UpdateUser(edit)
	require.NoError(t, err)

	hydrated := services.Catalog.Hydrated().Get()
	require.Len(t, hydrated, 1)
	assert.Equal(t, "Léana Martin", hydrated[0].Authors[0].Name)
}

func TestCatalogService_FavoritesView(t *testing.T) {
	services, repos := newServices(t)
	author := testutil.NewUserBuilder().
		WithEmail("lea@example.com").
		WithPassword("azerty123").
		Build(t, repos)
	for _, title := range []string{"Un", "Deux", "Trois"} {
		_, err := services.Project.Create(author.ID, &domain.Project{
			Title:   title,
			Authors: []domain.Author{{ID: author.ID}},
			Tags:    []string{"Go"},
		})
		require.NoError(t, err)
	}

	_, _, err := services.Catalog.Favorites(nil)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = services.Auth.Login("lea@example.com", "azerty123")
	require.NoError(t, err)
	_, err = services.Auth.ToggleFavorite(2)
	require.NoError(t, err)

	res, st, err := services.Catalog.Favorites(nil)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Deux", res.Items[0].Title)
	assert.Equal(t, 1, st.Page)
}

func TestCatalogService_OwnedProjectsUsesProfilePageSize(t *testing.T) {
	services, repos := newServices(t)
	owner := testutil.NewUserBuilder().
		WithEmail("lea@example.com").
		WithPassword("azerty123").
		Build(t, repos)
	other := testutil.NewUserBuilder().Build(t, repos)

	for i := 0; i < 5; i++ {
		_, err := services.Project.Create(owner.ID, &domain.Project{
			Title:   "Mien",
			Authors: []domain.Author{{ID: owner.ID}},
			Tags:    []string{"Go"},
		})
		require.NoError(t, err)
	}
	_, err := services.Project.Create(other.ID, &domain.Project{
		Title:   "Pas à moi",
		Authors: []domain.Author{{ID: other.ID}},
		Tags:    []string{"Go"},
	})
	require.NoError(t, err)

	_, err = services.Auth.Login("lea@example.com", "azerty123")
	require.NoError(t, err)

	res, _, err := services.Catalog.OwnedProjects(nil)
	require.NoError(t, err)
	assert.Len(t, res.Items, listing.PageSizeProfile)
	assert.Equal(t, 5, res.TotalCount, "other people's projects stay out")
	assert.Equal(t, 2, res.TotalPages)
}

func TestCatalogService_HomeSavesStateBeforeRunning(t *testing.T) {
	services, repos := newServices(t)
	author := testutil.NewUserBuilder().Build(t, repos)
	for _, title := range []string{"Atlas", "Brasserie"} {
		_, err := services.Project.Create(author.ID, &domain.Project{
			Title:   title,
			Authors: []domain.Author{{ID: author.ID}},
			Tags:    []string{"Go"},
		})
		require.NoError(t, err)
	}

	search := "atl"
	res, st := services.Catalog.Home(&listing.StateChange{Search: &search})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Atlas", res.Items[0].Title)
	assert.Equal(t, "atl", st.Search)

	// Coming back with no change reproduces the saved view.
	res, st = services.Catalog.Home(nil)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "atl", st.Search)
}
