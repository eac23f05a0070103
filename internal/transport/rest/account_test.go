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
	"github.com/wahidrahimi/ragavani-backend/internal/service/account"
)

type mockAccountService struct {
	SignUpFunc  func(ctx context.Context, input account.SignUpInput) (string, error)
	GetUserFunc func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockAccountService) SignUp(ctx context.Context, input account.SignUpInput) (string, error) {
	return m.SignUpFunc(ctx, input)
}

func (m *mockAccountService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return m.GetUserFunc(ctx, id)
}

var _ accountService = (*mockAccountService)(nil)

func TestAccountHandler_SignUp(t *testing.T) {
	t.Parallel()

	svc := &mockAccountService{
		SignUpFunc: func(_ context.Context, input account.SignUpInput) (string, error) {
			assert.Equal(t, "mira@example.com", input.Email)
			return "uid-123", nil
		},
	}
	h := NewAccountHandler(slog.Default(), svc)

	body := `{"email":"mira@example.com","password":"secret","firstName":"Mira","lastName":"Nair"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SignUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "uid-123", resp["uid"])
}

func TestAccountHandler_SignUp_DuplicateEmailRelaysProviderMessage(t *testing.T) {
	t.Parallel()

	svc := &mockAccountService{
		SignUpFunc: func(_ context.Context, _ account.SignUpInput) (string, error) {
			return "", &domain.ProviderError{Message: "This record already exists"}
		},
	}
	h := NewAccountHandler(slog.Default(), svc)

	body := `{"email":"mira@example.com","password":"secret","firstName":"Mira","lastName":"Nair"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SignUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "This record already exists", resp["message"])
}

func TestAccountHandler_SignUp_MissingFields(t *testing.T) {
	t.Parallel()

	svc := &mockAccountService{
		SignUpFunc: func(_ context.Context, _ account.SignUpInput) (string, error) {
			return "", domain.NewValidationError("email", "is required")
		},
	}
	h := NewAccountHandler(slog.Default(), svc)

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.SignUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_GetUser(t *testing.T) {
	t.Parallel()

	svc := &mockAccountService{
		GetUserFunc: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{UserID: id, Email: "mira@example.com"}, nil
		},
	}
	h := NewAccountHandler(slog.Default(), svc)

	req := httptest.NewRequest(http.MethodGet, "/user/u1", nil)
	req.SetPathValue("userId", "u1")
	rec := httptest.NewRecorder()

	h.GetUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "u1", got.UserID)
}

func TestAccountHandler_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	svc := &mockAccountService{
		GetUserFunc: func(_ context.Context, id string) (*domain.User, error) {
			return nil, domain.NewNotFoundError("user", id)
		},
	}
	h := NewAccountHandler(slog.Default(), svc)

	req := httptest.NewRequest(http.MethodGet, "/user/missing", nil)
	req.SetPathValue("userId", "missing")
	rec := httptest.NewRecorder()

	h.GetUser(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "User not found", resp["message"])
}
