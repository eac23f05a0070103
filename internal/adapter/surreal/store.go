// Package surreal implements the document store facade on top of SurrealDB.
// Each entity repository lives in its own sub-package; this package carries
// the shared connection, schema bootstrap, and driver-to-domain error mapping.
package surreal

import (
	"context"
	"fmt"
	"net/url"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/surrealcbor"

	"github.com/wahidrahimi/ragavani-backend/internal/config"
)

// Store wraps the SurrealDB connection shared by all repositories.
type Store struct {
	db  *surrealdb.DB
	cfg config.DatabaseConfig
}

// Connect dials SurrealDB over WebSocket, authenticates with the configured
// database user, selects the namespace/database, and applies the schema
// bootstrap. The surrealcbor codec is required for correct time.Time and
// RecordID round-tripping.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	conf := connection.NewConfig(u)
	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	db, err := surrealdb.FromConnection(ctx, gorillaws.New(conf))
	if err != nil {
		return nil, fmt.Errorf("connect to SurrealDB: %w", err)
	}

	if cfg.Username != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{
			Username: cfg.Username,
			Password: cfg.Password,
		}); err != nil {
			return nil, fmt.Errorf("sign in: %w", err)
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		return nil, fmt.Errorf("use %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.Bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}

	return s, nil
}

// DB exposes the underlying connection to the entity repositories.
func (s *Store) DB() *surrealdb.DB { return s.db }

// Access returns the record-access method name used for end-user signup.
func (s *Store) Access() string { return s.cfg.Access }

// Namespace returns the connected namespace.
func (s *Store) Namespace() string { return s.cfg.Namespace }

// Database returns the connected database name.
func (s *Store) Database() string { return s.cfg.Database }

// Reauth restores the connection's database-user session. A successful
// signup RPC leaves the server session authenticated as the new record user,
// which has no table permissions; callers that issue the signup RPC must
// restore the session before the next store operation.
func (s *Store) Reauth(ctx context.Context) error {
	if s.cfg.Username == "" {
		return nil
	}
	if _, err := s.db.SignIn(ctx, surrealdb.Auth{
		Username: s.cfg.Username,
		Password: s.cfg.Password,
	}); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if err := s.db.Use(ctx, s.cfg.Namespace, s.cfg.Database); err != nil {
		return fmt.Errorf("use %s/%s: %w", s.cfg.Namespace, s.cfg.Database, err)
	}
	return nil
}

// Ping verifies the connection is alive with a trivial round trip.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := surrealdb.Query[int](ctx, s.db, "RETURN 1", nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close terminates the connection.
func (s *Store) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}
