package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mael/portfolio-showcase/internal/api"
	"github.com/mael/portfolio-showcase/internal/config"
	"github.com/mael/portfolio-showcase/internal/repository"
	"github.com/mael/portfolio-showcase/internal/repository/localstore"
	"github.com/mael/portfolio-showcase/internal/service"
	"github.com/mael/portfolio-showcase/internal/store"
	"github.com/mael/portfolio-showcase/internal/websocket"
)

// TestConfig returns a config suitable for in-process tests.
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "0",
		Environment:        "test",
		StorageBackend:     config.BackendMemory,
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		AllowedOrigins:     []string{"*"},
	}
}

// TestServer runs the full router over an in-memory store.
type TestServer struct {
	Server   *httptest.Server
	Store    *store.Memory
	Repos    *repository.Repositories
	Services *service.Services
	Hub      *websocket.Hub
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := TestConfig()
	st := store.NewMemory()
	repos := localstore.NewRepositories(st)

	services, err := service.NewServices(repos, cfg, zap.NewNop())
	require.NoError(t, err)

	hub := websocket.NewHub(zap.NewNop())
	go hub.Run()

	srv := httptest.NewServer(api.NewRouter(services, hub, cfg, zap.NewNop()))
	t.Cleanup(func() {
		srv.Close()
		hub.Stop()
	})

	return &TestServer{
		Server:   srv,
		Store:    st,
		Repos:    repos,
		Services: services,
		Hub:      hub,
	}
}

// APIURL prefixes a path with the server's /api/v1 base.
func (ts *TestServer) APIURL(path string) string {
	return ts.Server.URL + "/api/v1" + path
}

// Login authenticates through the API and returns the bearer token.
func (ts *TestServer) Login(t *testing.T, email, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login failed")

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result.Token
}

// Request performs a JSON request, attaching the token when non-empty.
func (ts *TestServer) Request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, ts.APIURL(path), reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// DecodeJSON decodes and closes a response body.
func DecodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v), "unexpected body: %s", string(raw))
}
