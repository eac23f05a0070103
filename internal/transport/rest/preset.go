package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
	"github.com/wahidrahimi/ragavani-backend/internal/service/preset"
)

type presetService interface {
	Create(ctx context.Context, userID string, input preset.CreateInput) (*domain.Preset, error)
	List(ctx context.Context, userID string) ([]domain.Preset, error)
	Delete(ctx context.Context, userID, presetID string) error
}

// PresetHandler serves the per-user preset endpoints.
type PresetHandler struct {
	log     *slog.Logger
	presets presetService
}

// NewPresetHandler creates a PresetHandler.
func NewPresetHandler(logger *slog.Logger, svc presetService) *PresetHandler {
	return &PresetHandler{log: logger, presets: svc}
}

var presetNotFound = map[string]string{
	"user":   "User not found",
	"preset": "Preset not found",
}

type presetRequest struct {
	Name   string  `json:"name"`
	Pitch  string  `json:"pitch"`
	Tempo  float64 `json:"tempo"`
	Volume float64 `json:"volume"`
}

// Create handles POST /user/{userId}/presets.
func (h *PresetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(r, w, err)
		return
	}

	p, err := h.presets.Create(r.Context(), r.PathValue("userId"), preset.CreateInput{
		Name:   req.Name,
		Pitch:  req.Pitch,
		Tempo:  req.Tempo,
		Volume: req.Volume,
	})
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// List handles GET /user/{userId}/presets. An empty list is a normal
// response.
func (h *PresetHandler) List(w http.ResponseWriter, r *http.Request) {
	presets, err := h.presets.List(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, presets)
}

// Delete handles DELETE /user/{userId}/presets/{presetId}.
func (h *PresetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.presets.Delete(r.Context(), r.PathValue("userId"), r.PathValue("presetId"))
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Preset deleted successfully")
}

func (h *PresetHandler) respondError(r *http.Request, w http.ResponseWriter, err error) {
	status, msg := clientError(err, presetNotFound)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "preset request failed", slog.Any("error", err))
	}
	writeMessage(w, status, msg)
}
