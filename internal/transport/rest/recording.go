package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
	"github.com/wahidrahimi/ragavani-backend/internal/service/recording"
)

type recordingService interface {
	Create(ctx context.Context, userID string, input recording.CreateInput) (*domain.Recording, error)
	List(ctx context.Context, userID string, vis domain.Visibility) ([]domain.Recording, error)
	Delete(ctx context.Context, userID, recordingID string) error
}

// RecordingHandler serves the per-user recording endpoints.
type RecordingHandler struct {
	log        *slog.Logger
	recordings recordingService
}

// NewRecordingHandler creates a RecordingHandler.
func NewRecordingHandler(logger *slog.Logger, svc recordingService) *RecordingHandler {
	return &RecordingHandler{log: logger, recordings: svc}
}

var recordingNotFound = map[string]string{
	"user":      "User not found",
	"recording": "Recording not found",
}

var recordingEmpty = map[domain.Visibility]string{
	domain.VisibilityAll:     "No recordings found",
	domain.VisibilityPublic:  "No public recordings found",
	domain.VisibilityPrivate: "No private recordings found",
}

type recordingRequest struct {
	Name        string     `json:"name"`
	IsPublic    *bool      `json:"is_public"`
	URL         string     `json:"URL"`
	Duration    *float64   `json:"duration"`
	DateCreated *time.Time `json:"date_created"`
}

// Create handles POST /user/{userId}/recording.
func (h *RecordingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recordingRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(r, w, err)
		return
	}

	rec, err := h.recordings.Create(r.Context(), r.PathValue("userId"), recording.CreateInput{
		Name:        req.Name,
		IsPublic:    req.IsPublic,
		URL:         req.URL,
		Duration:    req.Duration,
		DateCreated: req.DateCreated,
	})
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":     "Recording added successfully",
		"recordingId": rec.ID,
	})
}

// Delete handles DELETE /user/{userId}/recording/{recordingId}.
func (h *RecordingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.recordings.Delete(r.Context(), r.PathValue("userId"), r.PathValue("recordingId"))
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Recording deleted successfully")
}

// ListAll handles GET /getAllMyRecordings/{userId}.
func (h *RecordingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.VisibilityAll)
}

// ListPublic handles GET /getMyPublicRecordings/{userId}.
func (h *RecordingHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.VisibilityPublic)
}

// ListPrivate handles GET /getMyPrivateRecordings/{userId}.
func (h *RecordingHandler) ListPrivate(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.VisibilityPrivate)
}

func (h *RecordingHandler) list(w http.ResponseWriter, r *http.Request, vis domain.Visibility) {
	recs, err := h.recordings.List(r.Context(), r.PathValue("userId"), vis)
	if err != nil {
		h.respondError(r, w, err)
		return
	}
	if len(recs) == 0 {
		writeMessage(w, http.StatusNotFound, recordingEmpty[vis])
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

func (h *RecordingHandler) respondError(r *http.Request, w http.ResponseWriter, err error) {
	status, msg := clientError(err, recordingNotFound)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "recording request failed", slog.Any("error", err))
	}
	writeMessage(w, status, msg)
}
