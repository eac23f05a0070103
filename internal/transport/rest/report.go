package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

type reportService interface {
	AllUsersPublicRecordings(ctx context.Context) ([]domain.UserRecordings, error)
	AllUsersInfo(ctx context.Context) ([]domain.UserInfo, error)
}

// ReportHandler serves the cross-user aggregate views.
type ReportHandler struct {
	log     *slog.Logger
	reports reportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(logger *slog.Logger, svc reportService) *ReportHandler {
	return &ReportHandler{log: logger, reports: svc}
}

// AllUsersPublicRecordings handles GET /getAllUsersPublicRecordings.
func (h *ReportHandler) AllUsersPublicRecordings(w http.ResponseWriter, r *http.Request) {
	out, err := h.reports.AllUsersPublicRecordings(r.Context())
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// AllUsersInfo handles GET /getAllUsersInfo.
func (h *ReportHandler) AllUsersInfo(w http.ResponseWriter, r *http.Request) {
	out, err := h.reports.AllUsersInfo(r.Context())
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *ReportHandler) respondError(r *http.Request, w http.ResponseWriter, err error) {
	status, msg := clientError(err, nil)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "report request failed", slog.Any("error", err))
	}
	writeMessage(w, status, msg)
}
