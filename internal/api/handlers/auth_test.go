package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mael/portfolio-showcase/internal/api/handlers"
	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/testutil"
)

func TestAuthEndpoints_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
	}{
		{
			name: "success",
			body: map[string]string{
				"email":     "new@example.com",
				"password":  "secret",
				"firstName": "Noah",
				"lastName":  "Dubois",
				"promo":     "A2",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing last name",
			body: map[string]string{
				"email":     "new@example.com",
				"password":  "secret",
				"firstName": "Noah",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing everything",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := testutil.NewTestServer(t)
			resp := ts.Request(t, http.MethodPost, "/auth/register", "", tt.body)
			defer resp.Body.Close()
			require.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == http.StatusOK {
				var result handlers.AuthResponse
				testutil.DecodeJSON(t, resp, &result)
				assert.NotEmpty(t, result.Token)
				assert.Equal(t, "new@example.com", result.User.Email)
				assert.Empty(t, result.User.Password)
			}
		})
	}
}

func TestAuthEndpoints_RegisterDuplicateEmail(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.NewUserBuilder().WithEmail("taken@example.com").Build(t, ts.Repos)

	resp := ts.Request(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":     "taken@example.com",
		"password":  "secret",
		"firstName": "Noah",
		"lastName":  "Dubois",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAuthEndpoints_Login(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{name: "success", email: "lea@example.com", password: "azerty123", wantStatus: http.StatusOK},
		{name: "wrong password", email: "lea@example.com", password: "nope", wantStatus: http.StatusUnauthorized},
		{name: "unknown user", email: "ghost@example.com", password: "azerty123", wantStatus: http.StatusUnauthorized},
		{name: "missing password", email: "lea@example.com", password: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := testutil.NewTestServer(t)
			testutil.NewUserBuilder().
				WithEmail("lea@example.com").
				WithPassword("azerty123").
				Build(t, ts.Repos)

			resp := ts.Request(t, http.MethodPost, "/auth/login", "", map[string]string{
				"email": tt.email, "password": tt.password,
			})
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAuthEndpoints_MeAndLogout(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.NewUserBuilder().
		WithEmail("lea@example.com").
		WithPassword("azerty123").
		WithName("Léa", "Martin").
		Build(t, ts.Repos)
	token := ts.Login(t, "lea@example.com", "azerty123")

	resp := ts.Request(t, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me domain.User
	testutil.DecodeJSON(t, resp, &me)
	assert.Equal(t, "Léa", me.FirstName)
	assert.Empty(t, me.Password)

	resp = ts.Request(t, http.MethodPost, "/auth/logout", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The token dies with the session.
	resp = ts.Request(t, http.MethodGet, "/auth/me", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthEndpoints_MeRequiresToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := ts.Request(t, http.MethodGet, "/auth/me", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ts.Request(t, http.MethodGet, "/auth/me", "not-a-token", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthEndpoints_UpdateProfile(t *testing.T) {
	ts := testutil.NewTestServer(t)
	u := testutil.NewUserBuilder().
		WithEmail("lea@example.com").
		WithPassword("azerty123").
		Build(t, ts.Repos)
	token := ts.Login(t, "lea@example.com", "azerty123")

	resp := ts.Request(t, http.MethodPut, "/auth/profile", token, map[string]any{
		"email":       "other@example.com",
		"password":    "pwned",
		"description": "Étudiante en informatique",
		"links":       []map[string]string{{"type": "github", "url": "https://github.com/lea"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated domain.User
	testutil.DecodeJSON(t, resp, &updated)
	assert.Equal(t, "Étudiante en informatique", updated.Description)
	assert.Equal(t, "lea@example.com", updated.Email)

	stored, err := ts.Repos.User.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "azerty123", stored.Password)
	require.Len(t, stored.Links, 1)
	assert.Equal(t, "github", stored.Links[0].Type)
}
