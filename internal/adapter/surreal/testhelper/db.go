// Package testhelper starts a shared SurrealDB container for repository
// integration tests.
package testhelper

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal"
	"github.com/wahidrahimi/ragavani-backend/internal/config"
)

var (
	once      sync.Once
	sharedURL string
	initErr   error
)

// SetupTestStore starts a shared SurrealDB container (once for the entire
// test run) and returns a Store connected to a fresh database inside it, so
// tests never see each other's documents. The store is closed via t.Cleanup;
// the container lives until the process exits. Tests calling this are skipped
// unless TEST_SURREALDB=1, so the rest of the suite stays docker-free.
func SetupTestStore(t *testing.T) *surreal.Store {
	t.Helper()

	if os.Getenv("TEST_SURREALDB") != "1" {
		t.Skip("set TEST_SURREALDB=1 to run SurrealDB integration tests")
	}

	once.Do(func() {
		sharedURL, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup SurrealDB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := "test_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	store, err := surreal.Connect(ctx, config.DatabaseConfig{
		URL:       sharedURL,
		Namespace: "test",
		Database:  dbName,
		Username:  "root",
		Password:  "root",
		Access:    "account",
	})
	if err != nil {
		t.Fatalf("testhelper: failed to connect: %v", err)
	}

	t.Cleanup(func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		store.Close(closeCtx) //nolint:errcheck
	})

	return store
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "surrealdb/surrealdb:v2.1",
		ExposedPorts: []string{"8000/tcp"},
		Cmd:          []string{"start", "--user", "root", "--pass", "root", "memory"},
		WaitingFor: wait.ForListeningPort("8000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "8000")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("ws://%s:%s/rpc", host, port.Port()), nil
}
