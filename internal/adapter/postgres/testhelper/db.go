// Package testhelper provides database fixtures for repository tests: a
// migrated PostgreSQL shared by the whole test binary, row seeders, and a
// pgxmock pool for unit tests.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/boards-backend/migrations"
)

// EnvDSN points the tests at an existing database instead of a container.
// The database must be disposable: migrations are applied to it.
const EnvDSN = "TEST_DATABASE_DSN"

const postgresImage = "postgres:17-alpine"

var shared struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool on the shared test database, provisioning and
// migrating it on first use. Tests run against one schema, so they must
// create their own rows and never assume an empty table.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	shared.once.Do(func() { shared.dsn, shared.err = provision() })
	if shared.err != nil {
		t.Fatalf("testhelper: provision database: %v", shared.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, shared.dsn)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func provision() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		var err error
		if dsn, err = startPostgres(ctx); err != nil {
			return "", err
		}
	}
	if err := migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

// startPostgres runs a throwaway container. It is reaped by the
// testcontainers sidecar when the test binary exits.
func startPostgres(ctx context.Context) (string, error) {
	const user, password, db = "boards", "boards", "boards_test"

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       db,
			},
			// The entrypoint restarts the server once after init.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", postgresImage, err)
	}

	endpoint, err := c.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("resolve endpoint: %w", err)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     endpoint,
		Path:     db,
		RawQuery: "sslmode=disable",
	}
	return u.String(), nil
}

func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open for migrations: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
