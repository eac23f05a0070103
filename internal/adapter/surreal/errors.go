package surreal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// MapError converts driver errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
//
// SurrealDB signals "no such record" with an empty result rather than an
// error, so ErrNotFound mapping happens in the repositories; this function
// only classifies errors the server actually returns.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	var rpcErr *surrealdb.RPCError
	if errors.As(err, &rpcErr) {
		msg := rpcErr.Message
		switch {
		case strings.Contains(msg, "already contains"),
			strings.Contains(msg, "already exists"):
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case strings.Contains(msg, "not found"),
			strings.Contains(msg, "does not exist"):
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
