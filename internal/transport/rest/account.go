package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
	"github.com/wahidrahimi/ragavani-backend/internal/service/account"
)

type accountService interface {
	SignUp(ctx context.Context, input account.SignUpInput) (string, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// AccountHandler serves signup and user profile endpoints.
type AccountHandler struct {
	log      *slog.Logger
	accounts accountService
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(logger *slog.Logger, svc accountService) *AccountHandler {
	return &AccountHandler{log: logger, accounts: svc}
}

var userNotFound = map[string]string{"user": "User not found"}

type signUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SignUp handles POST /signup. A duplicate email fails at the identity
// provider; its message is relayed with status 400 and no profile is written.
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(r, w, err)
		return
	}

	uid, err := h.accounts.SignUp(r.Context(), account.SignUpInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"uid": uid})
}

// GetUser handles GET /user/{userId}.
func (h *AccountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.accounts.GetUser(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.respondError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AccountHandler) respondError(r *http.Request, w http.ResponseWriter, err error) {
	status, msg := clientError(err, userNotFound)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "account request failed", slog.Any("error", err))
	}
	writeMessage(w, status, msg)
}
