package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
	"github.com/wahidrahimi/ragavani-backend/internal/service/favorites"
)

type favoritesService interface {
	AddCopy(ctx context.Context, userID string, input favorites.CopyInput) (*domain.FavoriteRaga, error)
	ListCopies(ctx context.Context, userID string) ([]domain.FavoriteRaga, error)
	DeleteCopy(ctx context.Context, userID, favoriteID string) error
	AddFromCatalog(ctx context.Context, userID, ragaID string) error
	AddReference(ctx context.Context, userID string, input favorites.ReferenceInput) (*domain.FavoriteRagaRef, error)
	ResolveReferences(ctx context.Context, userID string) (*domain.ResolvedFavorites, error)
	DeleteReference(ctx context.Context, userID, ragaID string) error
}

// FavoritesHandler serves the favorite copy and favorite reference endpoints.
type FavoritesHandler struct {
	log       *slog.Logger
	favorites favoritesService
}

// NewFavoritesHandler creates a FavoritesHandler.
func NewFavoritesHandler(logger *slog.Logger, svc favoritesService) *FavoritesHandler {
	return &FavoritesHandler{log: logger, favorites: svc}
}

var favoritesNotFound = map[string]string{
	"user":          "User not found",
	"raga":          "Raga not found",
	"favorite raga": "Favorite raga not found",
}

type copyRequest struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Inputs      []int  `json:"inputs"`
	Vadi        string `json:"vadi"`
	Samvadi     string `json:"samvadi"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

// AddCopy handles POST /user/{userId}/favorite_raga.
func (h *FavoritesHandler) AddCopy(w http.ResponseWriter, r *http.Request) {
	var req copyRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(r, w, err, favoritesNotFound)
		return
	}

	fav, err := h.favorites.AddCopy(r.Context(), r.PathValue("userId"), favorites.CopyInput{
		Category:    req.Category,
		Name:        req.Name,
		Inputs:      req.Inputs,
		Vadi:        req.Vadi,
		Samvadi:     req.Samvadi,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		h.respondError(r, w, err, favoritesNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, fav)
}

// ListCopies handles GET /user/{userId}/favorite_ragas.
func (h *FavoritesHandler) ListCopies(w http.ResponseWriter, r *http.Request) {
	favs, err := h.favorites.ListCopies(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.respondError(r, w, err, favoritesNotFound)
		return
	}
	if len(favs) == 0 {
		writeText(w, http.StatusNotFound, "No favorite ragas found for the specified user")
		return
	}

	writeJSON(w, http.StatusOK, favs)
}

// DeleteCopy handles DELETE /user/{userId}/favorite_ragas/{favoriteId}.
// A failed delete leaves the rest of the user's favorites untouched.
func (h *FavoritesHandler) DeleteCopy(w http.ResponseWriter, r *http.Request) {
	favoriteID := r.PathValue("favoriteId")

	if err := h.favorites.DeleteCopy(r.Context(), r.PathValue("userId"), favoriteID); err != nil {
		h.respondError(r, w, err, favoritesNotFound)
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf("Favorite raga with ID: %s deleted successfully", favoriteID))
}

type copyFromCatalogRequest struct {
	UserID string `json:"userId"`
	RagaID string `json:"ragaId"`
}

// AddFromCatalog handles POST /add_raga_from_ragas_to_user_favorite_raga.
func (h *FavoritesHandler) AddFromCatalog(w http.ResponseWriter, r *http.Request) {
	var req copyFromCatalogRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(r, w, err, favoritesNotFound)
		return
	}

	if err := h.favorites.AddFromCatalog(r.Context(), req.UserID, req.RagaID); err != nil {
		h.respondError(r, w, err, favoritesNotFound)
		return
	}

	writeText(w, http.StatusCreated,
		fmt.Sprintf("Raga %s added to %s's favorite ragas", req.RagaID, req.UserID))
}

type referenceRequest struct {
	Source string `json:"source"`
	RagaID string `json:"ragaId"`
}

// AddReference handles POST /user/{userId}/favorite_ragas_from_ragas.
func (h *FavoritesHandler) AddReference(w http.ResponseWriter, r *http.Request) {
	var req referenceRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(r, w, err, favoritesNotFound)
		return
	}

	ref, err := h.favorites.AddReference(r.Context(), r.PathValue("userId"), favorites.ReferenceInput{
		Source: req.Source,
		RagaID: req.RagaID,
	})
	if err != nil {
		h.respondError(r, w, err, favoritesNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, ref)
}

// ResolveReferences handles GET /user/{userId}/favorite_ragas_from_ragas.
// A user with no stored references gets an empty result, never an error;
// dangling references are surfaced in the unresolved count.
func (h *FavoritesHandler) ResolveReferences(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.favorites.ResolveReferences(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.respondError(r, w, err, favoritesNotFound)
		return
	}

	writeJSON(w, http.StatusOK, resolved)
}

// DeleteReference handles DELETE /user/{userId}/favorite_ragas_from_ragas/{ragaId}.
func (h *FavoritesHandler) DeleteReference(w http.ResponseWriter, r *http.Request) {
	ragaID := r.PathValue("ragaId")

	notFound := map[string]string{
		"user":               "User not found",
		"favorite reference": fmt.Sprintf("No favorite reference found for raga %s", ragaID),
	}
	if err := h.favorites.DeleteReference(r.Context(), r.PathValue("userId"), ragaID); err != nil {
		h.respondError(r, w, err, notFound)
		return
	}

	writeText(w, http.StatusOK,
		fmt.Sprintf("Favorite reference to raga %s deleted successfully", ragaID))
}

func (h *FavoritesHandler) respondError(r *http.Request, w http.ResponseWriter, err error, notFound map[string]string) {
	status, msg := clientError(err, notFound)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "favorites request failed", slog.Any("error", err))
	}
	writeText(w, status, msg)
}
