package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mael/portfolio-showcase/internal/api/handlers"
	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/testutil"
)

func seedProjects(t *testing.T, ts *testutil.TestServer, owner *domain.User, token string, titles ...string) {
	t.Helper()
	for _, title := range titles {
		resp := ts.Request(t, http.MethodPost, "/projects", token, map[string]any{
			"title":   title,
			"authors": []map[string]any{{"id": owner.ID}},
			"tags":    []string{"Go"},
		})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
}

func TestListingEndpoint_Home(t *testing.T) {
	ts := testutil.NewTestServer(t)
	u, token := loginAs(t, ts, "lea@example.com")
	seedProjects(t, ts, u, token, "Atlas", "Brasserie", "Échiquier")

	resp := ts.Request(t, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result handlers.ListingResponse
	testutil.DecodeJSON(t, resp, &result)

	require.Len(t, result.Items, 3)
	assert.Equal(t, "Échiquier", result.Items[0].Title, "recent first by default")
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, []string{"Go"}, result.AllTags)
}

func TestListingEndpoint_QueryParamsPersist(t *testing.T) {
	ts := testutil.NewTestServer(t)
	u, token := loginAs(t, ts, "lea@example.com")
	seedProjects(t, ts, u, token, "Atlas", "Brasserie")

	resp := ts.Request(t, http.MethodGet, "/projects?q=atl&sort=az", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result handlers.ListingResponse
	testutil.DecodeJSON(t, resp, &result)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Atlas", result.Items[0].Title)
	assert.Equal(t, "atl", result.State.Search)

	// A bare follow-up request replays the saved view.
	resp = ts.Request(t, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &result)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "atl", result.State.Search)

	// Clearing the search restores the full set.
	resp = ts.Request(t, http.MethodGet, "/projects?q=", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &result)
	assert.Len(t, result.Items, 2)
}

func TestListingEndpoint_FacetParams(t *testing.T) {
	ts := testutil.NewTestServer(t)
	u, token := loginAs(t, ts, "lea@example.com")

	resp := ts.Request(t, http.MethodPost, "/projects", token, map[string]any{
		"title":   "Atlas",
		"authors": []map[string]any{{"id": u.ID}},
		"tags":    []string{"Go"},
		"promo":   "A1",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = ts.Request(t, http.MethodPost, "/projects", token, map[string]any{
		"title":   "Brasserie",
		"authors": []map[string]any{{"id": u.ID}},
		"tags":    []string{"Python"},
		"promo":   "A2",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = ts.Request(t, http.MethodGet, "/projects?tags=Python", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result handlers.ListingResponse
	testutil.DecodeJSON(t, resp, &result)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Brasserie", result.Items[0].Title)

	// Deactivating the tag section ignores the selection.
	resp = ts.Request(t, http.MethodGet, "/projects?active=modules,promos", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &result)
	assert.Len(t, result.Items, 2)
}

func TestListingEndpoint_Pagination(t *testing.T) {
	ts := testutil.NewTestServer(t)
	u, token := loginAs(t, ts, "lea@example.com")
	var titles []string
	for i := 1; i <= 13; i++ {
		titles = append(titles, fmt.Sprintf("Projet %02d", i))
	}
	seedProjects(t, ts, u, token, titles...)

	resp := ts.Request(t, http.MethodGet, "/projects?page=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result handlers.ListingResponse
	testutil.DecodeJSON(t, resp, &result)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Projet 01", result.Items[0].Title)
	assert.Equal(t, 2, result.TotalPages)

	// An out-of-range page snaps back to the first.
	resp = ts.Request(t, http.MethodGet, "/projects?page=9", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, 1, result.Page)
	assert.Len(t, result.Items, 12)
}

func TestListingEndpoint_FavoritesRequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := ts.Request(t, http.MethodGet, "/favorites", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListingEndpoint_Favorites(t *testing.T) {
	ts := testutil.NewTestServer(t)
	u, token := loginAs(t, ts, "lea@example.com")
	seedProjects(t, ts, u, token, "Atlas", "Brasserie")

	resp := ts.Request(t, http.MethodPost, "/projects/2/favorite", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.Request(t, http.MethodGet, "/favorites", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result handlers.ListingResponse
	testutil.DecodeJSON(t, resp, &result)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Brasserie", result.Items[0].Title)
	assert.True(t, result.Items[0].IsFavorite)
}

func TestListingEndpoint_OwnedProjects(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner, ownerToken := loginAs(t, ts, "owner@example.com")
	seedProjects(t, ts, owner, ownerToken, "Un", "Deux", "Trois", "Quatre", "Cinq")

	stranger, strangerToken := loginAs(t, ts, "stranger@example.com")
	seedProjects(t, ts, stranger, strangerToken, "Autre")

	// Logging in as the stranger replaced the session; log the owner back in.
	ownerToken = ts.Login(t, "owner@example.com", "password123")

	resp := ts.Request(t, http.MethodGet, "/profile/projects", ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result handlers.ListingResponse
	testutil.DecodeJSON(t, resp, &result)
	assert.Len(t, result.Items, 4, "profile view pages by four")
	assert.Equal(t, 5, result.TotalCount)
	assert.Equal(t, 2, result.TotalPages)
}

func TestPageStateEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := ts.Request(t, http.MethodGet, "/pagestate/home", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st domain.PageState
	testutil.DecodeJSON(t, resp, &st)
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, domain.SortRecent, st.Sort)

	resp = ts.Request(t, http.MethodPatch, "/pagestate/home", "", map[string]any{
		"search": "chess",
		"page":   2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &st)
	assert.Equal(t, "chess", st.Search)
	assert.Equal(t, 2, st.Page)

	resp = ts.Request(t, http.MethodDelete, "/pagestate/home", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &st)
	assert.Equal(t, domain.DefaultPageState(), st)
}
