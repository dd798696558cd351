package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxvec "github.com/pgvector/pgvector-go/pgx"
	goose "github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib" //nolint:blank-imports

	"github.com/Nik0lakt/cafeteria-project/migrations"
)

// Connect opens a pool with the vector type registered on every connection.
// Migrations must have created the vector extension before Connect is called.
func Connect(ctx context.Context, dsn string, maxConn int32) (*pgxpool.Pool, error) {
	dbCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if maxConn > 0 {
		dbCfg.MaxConns = maxConn
	}

	dbCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	const timeout = 500 * time.Millisecond

	for range 10 {
		err = pool.Ping(ctx)
		if err == nil {
			return pool, nil
		}

		time.Sleep(timeout)
	}

	pool.Close()

	return nil, fmt.Errorf("ping: %w", err)
}

func UpMigrations(dsn string) error {
	err := Migrate(context.Background(), dsn, "up")
	if err != nil && !errors.Is(err, goose.ErrNoNextVersion) {
		return err
	}

	return nil
}

// Migrate runs a goose command (up, down, status, version, redo, reset)
// against the embedded migrations.
func Migrate(ctx context.Context, dsn, command string, args ...string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)

	err = goose.SetDialect("postgres")
	if err != nil {
		return err
	}

	if command == "up" {
		goose.SetLogger(goose.NopLogger())
	} else {
		goose.SetLogger(log.Default())
	}

	return goose.RunContext(ctx, command, db, ".", args...)
}
