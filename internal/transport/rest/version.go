package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
	"github.com/wahidrahimi/ragavani-backend/internal/service/release"
)

type releaseService interface {
	AddVersion(ctx context.Context, input release.AddVersionInput) (*domain.VersionRecord, error)
	GetVersions(ctx context.Context, name string) ([]domain.VersionRecord, error)
}

// VersionHandler serves the collection version tag endpoints.
type VersionHandler struct {
	log      *slog.Logger
	releases releaseService
}

// NewVersionHandler creates a VersionHandler.
func NewVersionHandler(logger *slog.Logger, svc releaseService) *VersionHandler {
	return &VersionHandler{log: logger, releases: svc}
}

type versionRequest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Add handles POST /versions.
func (h *VersionHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req versionRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(r, w, err)
		return
	}

	rec, err := h.releases.AddVersion(r.Context(), release.AddVersionInput{
		Name:    req.Name,
		Version: req.Version,
	})
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Get handles GET /versions/{collection_name}.
func (h *VersionHandler) Get(w http.ResponseWriter, r *http.Request) {
	tags, err := h.releases.GetVersions(r.Context(), r.PathValue("collection_name"))
	if err != nil {
		h.respondError(r, w, err)
		return
	}
	if len(tags) == 0 {
		writeMessage(w, http.StatusNotFound, "No versions found for the specified collection")
		return
	}

	writeJSON(w, http.StatusOK, tags)
}

func (h *VersionHandler) respondError(r *http.Request, w http.ResponseWriter, err error) {
	status, msg := clientError(err, nil)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "version request failed", slog.Any("error", err))
	}
	writeMessage(w, status, msg)
}
