package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
)

// SessionRepository stores liveness sessions. Expired rows are invisible to every
// read and update before they are swept.
type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: pool,
	}
}

// Create stores s. Its lifetime is ExpiresAt minus CreatedAt counted from the
// database clock, which every expiry check uses.
func (r *SessionRepository) Create(ctx context.Context, s entity.LivenessSession) error {
	const q = `INSERT INTO liveness_sessions (` + sessionColumns + `)
	VALUES ($1, $2, $3, $4, $5, NOW(), NOW() + $6::bigint * INTERVAL '1 microsecond')`

	_, err := conn(ctx, r.db).Exec(
		ctx,
		q,
		s.ID,
		s.CardUID,
		s.EmployeeID,
		s.Passed,
		s.FramesProcessed,
		s.ExpiresAt.Sub(s.CreatedAt).Microseconds(),
	)

	return err
}

func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (entity.LivenessSession, error) {
	q := selectSession + " WHERE id = $1 AND expires_at > NOW()"
	return scanSession(conn(ctx, r.db).QueryRow(ctx, q, id))
}

func (r *SessionRepository) MarkPassed(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE liveness_sessions SET passed = TRUE WHERE id = $1 AND expires_at > NOW()`

	result, err := conn(ctx, r.db).Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrSessionNotFound
	}

	return nil
}

// IncrementFrames counts one more processed frame and returns the new total.
func (r *SessionRepository) IncrementFrames(ctx context.Context, id uuid.UUID) (int, error) {
	const q = `UPDATE liveness_sessions SET frames_processed = frames_processed + 1
		WHERE id = $1 AND expires_at > NOW()
		RETURNING frames_processed`

	var frames int

	err := conn(ctx, r.db).QueryRow(ctx, q, id).Scan(&frames)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entity.ErrSessionNotFound
		}

		return 0, err
	}

	return frames, nil
}

// Consume deletes the session and returns it. Of concurrent callers exactly one succeeds.
func (r *SessionRepository) Consume(ctx context.Context, id uuid.UUID) (entity.LivenessSession, error) {
	return consumeSession(ctx, conn(ctx, r.db), id)
}

// DeleteExpired removes sessions whose TTL has ended.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	const q = `DELETE FROM liveness_sessions WHERE expires_at <= NOW()`

	result, err := conn(ctx, r.db).Exec(ctx, q)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

// LockSession reads a live session and holds its row until the transaction ends.
func (r *Repository) LockSession(ctx context.Context, id uuid.UUID) (entity.LivenessSession, error) {
	q := selectSession + " WHERE id = $1 AND expires_at > NOW() FOR UPDATE"
	return scanSession(conn(ctx, r.db).QueryRow(ctx, q, id))
}

func (r *Repository) ConsumeSession(ctx context.Context, id uuid.UUID) (entity.LivenessSession, error) {
	return consumeSession(ctx, conn(ctx, r.db), id)
}

func consumeSession(ctx context.Context, q querier, id uuid.UUID) (entity.LivenessSession, error) {
	sql := `DELETE FROM liveness_sessions WHERE id = $1 AND expires_at > NOW() RETURNING ` + sessionColumns
	return scanSession(q.QueryRow(ctx, sql, id))
}

func scanSession(row pgx.Row) (s entity.LivenessSession, err error) {
	err = row.Scan(
		&s.ID,
		&s.CardUID,
		&s.EmployeeID,
		&s.Passed,
		&s.FramesProcessed,
		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.LivenessSession{}, entity.ErrSessionNotFound
		}

		return entity.LivenessSession{}, err
	}

	return s, nil
}
