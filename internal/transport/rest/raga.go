package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
	"github.com/wahidrahimi/ragavani-backend/internal/service/catalog"
)

type catalogService interface {
	Create(ctx context.Context, input catalog.CreateInput) (*domain.Raga, error)
	CreateBatch(ctx context.Context, input catalog.BatchInput) error
	Get(ctx context.Context, id string) (*domain.Raga, error)
	List(ctx context.Context) ([]domain.Raga, error)
	Update(ctx context.Context, id string, patch domain.RagaPatch) error
	Delete(ctx context.Context, id string) error
}

// RagaHandler serves the shared raga catalog endpoints.
type RagaHandler struct {
	log     *slog.Logger
	catalog catalogService
}

// NewRagaHandler creates a RagaHandler.
func NewRagaHandler(logger *slog.Logger, svc catalogService) *RagaHandler {
	return &RagaHandler{log: logger, catalog: svc}
}

var ragaNotFound = map[string]string{"raga": "Raga not found"}

type ragaRequest struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Inputs      []int  `json:"inputs"`
	Vadi        string `json:"vadi"`
	Samvadi     string `json:"samvadi"`
	Description string `json:"description"`
}

func (req ragaRequest) toInput() catalog.CreateInput {
	return catalog.CreateInput{
		Category:    req.Category,
		Name:        req.Name,
		Inputs:      req.Inputs,
		Vadi:        req.Vadi,
		Samvadi:     req.Samvadi,
		Description: req.Description,
	}
}

// Create handles POST /ragas.
func (h *RagaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ragaRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(r, w, err)
		return
	}

	raga, err := h.catalog.Create(r.Context(), req.toInput())
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, raga)
}

// CreateBatch handles POST /ragas/list.
func (h *RagaHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []ragaRequest
	if err := decodeBody(r, &reqs); err != nil {
		h.respondError(r, w, err)
		return
	}

	input := catalog.BatchInput{Ragas: make([]catalog.CreateInput, len(reqs))}
	for i, req := range reqs {
		input.Ragas[i] = req.toInput()
	}

	if err := h.catalog.CreateBatch(r.Context(), input); err != nil {
		h.respondError(r, w, err)
		return
	}

	writeText(w, http.StatusCreated, "Ragas added successfully")
}

// List handles GET /ragas.
func (h *RagaHandler) List(w http.ResponseWriter, r *http.Request) {
	ragas, err := h.catalog.List(r.Context())
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, ragas)
}

// Get handles GET /ragas/{id}.
func (h *RagaHandler) Get(w http.ResponseWriter, r *http.Request) {
	raga, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, raga)
}

// Update handles PATCH /ragas/{id}. The response echoes the id plus exactly
// the fields the client sent; there is no read after the write.
func (h *RagaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch domain.RagaPatch
	if err := decodeBody(r, &patch); err != nil {
		h.respondError(r, w, err)
		return
	}

	if err := h.catalog.Update(r.Context(), id, patch); err != nil {
		h.respondError(r, w, err)
		return
	}

	echo := map[string]any{"id": id}
	if patch.Category != nil {
		echo["category"] = *patch.Category
	}
	if patch.Name != nil {
		echo["name"] = *patch.Name
	}
	if patch.Inputs != nil {
		echo["inputs"] = patch.Inputs
	}
	if patch.Vadi != nil {
		echo["vadi"] = *patch.Vadi
	}
	if patch.Samvadi != nil {
		echo["samvadi"] = *patch.Samvadi
	}
	if patch.Description != nil {
		echo["description"] = *patch.Description
	}
	writeJSON(w, http.StatusOK, echo)
}

// Delete handles DELETE /ragas/{id}.
func (h *RagaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		h.respondError(r, w, err)
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf("Raga with ID: %s deleted successfully", id))
}

func (h *RagaHandler) respondError(r *http.Request, w http.ResponseWriter, err error) {
	status, msg := clientError(err, ragaNotFound)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "catalog request failed", slog.Any("error", err))
	}
	writeText(w, status, msg)
}
