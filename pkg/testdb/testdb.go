// Package testdb provides Postgres and Redis instances for integration tests.
//
// TEST_POSTGRES_DSN and TEST_REDIS_URL take precedence. Otherwise one container per
// test binary is started with testcontainers and reaped when the process exits.
// Tests are skipped when neither is available.
package testdb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	pgOnce sync.Once
	pgDSN  string
	pgErr  error

	redisOnce sync.Once
	redisURL  string
	redisErr  error
)

// PostgresDSN returns the DSN of a pgvector-enabled Postgres.
func PostgresDSN(t testing.TB) string {
	t.Helper()

	pgOnce.Do(func() {
		if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
			pgDSN = dsn
			return
		}

		pgDSN, pgErr = startPostgres(context.Background())
	})

	if pgErr != nil {
		t.Skipf("postgres is not available, skipping integration test: %v", pgErr)
	}

	return pgDSN
}

// RedisURL returns the URL of a Redis server.
func RedisURL(t testing.TB) string {
	t.Helper()

	redisOnce.Do(func() {
		if url := os.Getenv("TEST_REDIS_URL"); url != "" {
			redisURL = url
			return
		}

		redisURL, redisErr = startRedis(context.Background())
	})

	if redisErr != nil {
		t.Skipf("redis is not available, skipping integration test: %v", redisErr)
	}

	return redisURL
}

func startPostgres(ctx context.Context) (dsn string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docker: %v", r)
		}
	}()

	req := testcontainers.ContainerRequest{
		Image:        "pgvector/pgvector:pg16",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "cafeteria",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", err
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("postgres://test:test@%s:%s/cafeteria?sslmode=disable", host, port.Port()), nil
}

func startRedis(ctx context.Context) (url string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docker: %v", r)
		}
	}()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", err
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port()), nil
}
