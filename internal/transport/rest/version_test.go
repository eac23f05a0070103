package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
	"github.com/wahidrahimi/ragavani-backend/internal/service/release"
)

type mockReleaseService struct {
	AddVersionFunc  func(ctx context.Context, input release.AddVersionInput) (*domain.VersionRecord, error)
	GetVersionsFunc func(ctx context.Context, name string) ([]domain.VersionRecord, error)
}

func (m *mockReleaseService) AddVersion(ctx context.Context, input release.AddVersionInput) (*domain.VersionRecord, error) {
	return m.AddVersionFunc(ctx, input)
}

func (m *mockReleaseService) GetVersions(ctx context.Context, name string) ([]domain.VersionRecord, error) {
	return m.GetVersionsFunc(ctx, name)
}

var _ releaseService = (*mockReleaseService)(nil)

func TestVersionHandler_Add(t *testing.T) {
	t.Parallel()

	svc := &mockReleaseService{
		AddVersionFunc: func(_ context.Context, input release.AddVersionInput) (*domain.VersionRecord, error) {
			return &domain.VersionRecord{ID: "v1", Name: input.Name, Version: input.Version}, nil
		},
	}
	h := NewVersionHandler(slog.Default(), svc)

	body := `{"name":"ragas","version":"2"}`
	req := httptest.NewRequest(http.MethodPost, "/versions", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.VersionRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "ragas", got.Name)
	assert.Equal(t, "2", got.Version)
}

func TestVersionHandler_Get_EmptyIs404(t *testing.T) {
	t.Parallel()

	svc := &mockReleaseService{
		GetVersionsFunc: func(_ context.Context, name string) ([]domain.VersionRecord, error) {
			assert.Equal(t, "unknown", name)
			return []domain.VersionRecord{}, nil
		},
	}
	h := NewVersionHandler(slog.Default(), svc)

	req := httptest.NewRequest(http.MethodGet, "/versions/unknown", nil)
	req.SetPathValue("collection_name", "unknown")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "No versions found for the specified collection", resp["message"])
}

func TestVersionHandler_Get(t *testing.T) {
	t.Parallel()

	svc := &mockReleaseService{
		GetVersionsFunc: func(_ context.Context, _ string) ([]domain.VersionRecord, error) {
			return []domain.VersionRecord{
				{ID: "v1", Name: "ragas", Version: "1"},
				{ID: "v2", Name: "ragas", Version: "2"},
			}, nil
		},
	}
	h := NewVersionHandler(slog.Default(), svc)

	req := httptest.NewRequest(http.MethodGet, "/versions/ragas", nil)
	req.SetPathValue("collection_name", "ragas")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.VersionRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 2)
}
