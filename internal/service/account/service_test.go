package account

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

type mockIdentityProvider struct {
	SignUpFunc func(ctx context.Context, email, password string) (string, error)
}

func (m *mockIdentityProvider) SignUp(ctx context.Context, email, password string) (string, error) {
	return m.SignUpFunc(ctx, email, password)
}

type mockUserRepo struct {
	SaveProfileFunc func(ctx context.Context, u *domain.User) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserRepo) SaveProfile(ctx context.Context, u *domain.User) error {
	return m.SaveProfileFunc(ctx, u)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

var (
	_ identityProvider = (*mockIdentityProvider)(nil)
	_ userRepo         = (*mockUserRepo)(nil)
)

func validInput() SignUpInput {
	return SignUpInput{
		Email:     "asha@example.com",
		Password:  "secret",
		FirstName: "Asha",
		LastName:  "Rao",
	}
}

func TestService_SignUp_AllFieldsRequired(t *testing.T) {
	t.Parallel()

	providerCalled := false
	provider := &mockIdentityProvider{
		SignUpFunc: func(_ context.Context, _, _ string) (string, error) {
			providerCalled = true
			return "", nil
		},
	}

	svc := NewService(slog.Default(), provider, &mockUserRepo{})

	input := validInput()
	input.LastName = ""
	_, err := svc.SignUp(context.Background(), input)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, providerCalled)
}

func TestService_SignUp_DuplicateEmailWritesNoProfile(t *testing.T) {
	t.Parallel()

	provider := &mockIdentityProvider{
		SignUpFunc: func(_ context.Context, _, _ string) (string, error) {
			return "", &domain.ProviderError{Message: "The email address is already in use"}
		},
	}
	saveCalled := false
	users := &mockUserRepo{
		SaveProfileFunc: func(_ context.Context, _ *domain.User) error {
			saveCalled = true
			return nil
		},
	}

	svc := NewService(slog.Default(), provider, users)
	_, err := svc.SignUp(context.Background(), validInput())

	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.False(t, saveCalled, "profile must not be written when the provider rejects")
}

func TestService_SignUp_MergesProfileUnderProviderUID(t *testing.T) {
	t.Parallel()

	provider := &mockIdentityProvider{
		SignUpFunc: func(_ context.Context, email, password string) (string, error) {
			assert.Equal(t, "asha@example.com", email)
			assert.Equal(t, "secret", password)
			return "uid123", nil
		},
	}
	users := &mockUserRepo{
		SaveProfileFunc: func(_ context.Context, u *domain.User) error {
			assert.Equal(t, "uid123", u.UserID)
			assert.Equal(t, "Asha", u.FirstName)
			assert.False(t, u.DateCreated.IsZero())
			return nil
		},
	}

	svc := NewService(slog.Default(), provider, users)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	uid, err := svc.SignUp(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "uid123", uid)
}

func TestService_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		GetByIDFunc: func(_ context.Context, id string) (*domain.User, error) {
			return nil, domain.NewNotFoundError("user", id)
		},
	}

	svc := NewService(slog.Default(), &mockIdentityProvider{}, users)
	_, err := svc.GetUser(context.Background(), "ghost")

	require.ErrorIs(t, err, domain.ErrNotFound)
}
