// Package identity adapts SurrealDB's record access to the account service's
// signup provider interface. The database is the authentication authority:
// it hashes the password, enforces email uniqueness, and mints the token the
// new user id is read from.
package identity

import (
	"context"
	"errors"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal"
	"github.com/wahidrahimi/ragavani-backend/internal/auth"
	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// Provider signs users up against the store's record-access method.
type Provider struct {
	store *surreal.Store
}

// New creates an identity provider.
func New(store *surreal.Store) *Provider {
	return &Provider{store: store}
}

// SignUp registers the credentials with the access method and returns the new
// user's id. A duplicate email surfaces as domain.ErrAlreadyExists wrapping
// the provider's own message.
func (p *Provider) SignUp(ctx context.Context, email, password string) (string, error) {
	token, err := p.store.DB().SignUp(ctx, map[string]any{
		"NS":    p.store.Namespace(),
		"DB":    p.store.Database(),
		"AC":    p.store.Access(),
		"email": email,
		"pass":  password,
	})
	if err != nil {
		var rpcErr *surrealdb.RPCError
		if errors.As(err, &rpcErr) {
			return "", &domain.ProviderError{Message: rpcErr.Message}
		}
		return "", fmt.Errorf("sign up: %w", err)
	}

	// The signup RPC switched the connection's session to the new record
	// user; restore the database-user session before anyone else uses the
	// store.
	if err := p.store.Reauth(ctx); err != nil {
		return "", fmt.Errorf("restore session: %w", err)
	}

	uid, err := auth.UserIDFromToken(token)
	if err != nil {
		return "", fmt.Errorf("extract user id: %w", err)
	}
	return uid, nil
}
