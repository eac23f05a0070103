//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	favoriterepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/favorite"
	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/identity"
	presetrepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/preset"
	ragarepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/raga"
	recordingrepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/recording"
	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/testhelper"
	userrepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/user"
	versionrepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/version"
	"github.com/wahidrahimi/ragavani-backend/internal/config"
	"github.com/wahidrahimi/ragavani-backend/internal/service/account"
	"github.com/wahidrahimi/ragavani-backend/internal/service/catalog"
	"github.com/wahidrahimi/ragavani-backend/internal/service/favorites"
	"github.com/wahidrahimi/ragavani-backend/internal/service/preset"
	"github.com/wahidrahimi/ragavani-backend/internal/service/recording"
	"github.com/wahidrahimi/ragavani-backend/internal/service/release"
	"github.com/wahidrahimi/ragavani-backend/internal/service/report"
	"github.com/wahidrahimi/ragavani-backend/internal/transport/rest"
)

// newTestServer wires the full stack against a throwaway SurrealDB database
// and returns an in-process HTTP server.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := testhelper.SetupTestStore(t)
	logger := slog.Default()

	ragas := ragarepo.New(store)
	users := userrepo.New(store)
	recordings := recordingrepo.New(store)
	favs := favoriterepo.New(store)
	presets := presetrepo.New(store)
	versions := versionrepo.New(store)
	provider := identity.New(store)

	h := rest.Handlers{
		Raga:      rest.NewRagaHandler(logger, catalog.NewService(logger, ragas)),
		Account:   rest.NewAccountHandler(logger, account.NewService(logger, provider, users)),
		Recording: rest.NewRecordingHandler(logger, recording.NewService(logger, users, recordings)),
		Favorites: rest.NewFavoritesHandler(logger, favorites.NewService(logger, users, ragas, favs)),
		Preset:    rest.NewPresetHandler(logger, preset.NewService(logger, users, presets)),
		Version:   rest.NewVersionHandler(logger, release.NewService(logger, versions)),
		Report:    rest.NewReportHandler(logger, report.NewService(logger, users, recordings, favs)),
		Health:    rest.NewHealthHandler(store, "e2e"),
	}

	cfg := config.Config{CORS: config.CORSConfig{AllowedOrigins: "*"}}
	srv := httptest.NewServer(rest.NewRouter(logger, cfg, h, nil))
	t.Cleanup(srv.Close)

	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close() //nolint:errcheck

	return resp, raw
}

func decodeInto(t *testing.T, raw []byte, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v), "body: %s", raw)
}

// signUpUser registers a fresh user through the real signup endpoint and
// returns its id.
func signUpUser(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	email := fmt.Sprintf("e2e-%s@example.com", uuid.New().String()[:8])
	resp, raw := doJSON(t, srv, http.MethodPost, "/signup", map[string]string{
		"email":     email,
		"password":  "test-password",
		"firstName": "Test",
		"lastName":  "Singer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", raw)

	var out map[string]string
	decodeInto(t, raw, &out)
	require.NotEmpty(t, out["uid"])
	return out["uid"]
}

// createRaga adds a catalog raga and returns its id.
func createRaga(t *testing.T, srv *httptest.Server, name, category string) string {
	t.Helper()

	resp, raw := doJSON(t, srv, http.MethodPost, "/ragas", map[string]any{
		"name":     name,
		"category": category,
		"inputs":   []int{1, 3, 5},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", raw)

	var out struct {
		ID string `json:"id"`
	}
	decodeInto(t, raw, &out)
	require.NotEmpty(t, out.ID)
	return out.ID
}
