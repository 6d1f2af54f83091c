// Package audit persists an append-only trail of terminal unlock attempts.
// The trail is observability data: writes are best-effort from the
// coordinator's point of view, and rows are never updated or deleted.
package audit

import (
	"context"
	"log/slog"
	"time"

	"smartbox-gateway/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"

	"smartbox-gateway/internal/pkg/errs"
)

const Schema = `
CREATE TABLE IF NOT EXISTS unlock_attempts (
    id             UUID PRIMARY KEY,
    box_id         BIGINT      NOT NULL,
    principal_id   BIGINT      NOT NULL,
    principal_role TEXT        NOT NULL,
    action         TEXT        NOT NULL,
    outcome        TEXT        NOT NULL,
    failure_kind   TEXT        NOT NULL DEFAULT '',
    started_at     TIMESTAMPTZ NOT NULL,
    ended_at       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_unlock_attempts_box ON unlock_attempts (box_id, ended_at DESC);
`

// Migrate applies the audit schema. Idempotent; called once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return errs.Wrap(err, "apply audit schema")
	}
	return nil
}

type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStore(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{
		pool:   pool,
		logger: logger,
	}
}

func (s *Store) Record(ctx context.Context, rec usecase.AuditRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO unlock_attempts
		   (id, box_id, principal_id, principal_role, action, outcome, failure_kind, started_at, ended_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.AttemptID, rec.BoxID, rec.PrincipalID, rec.PrincipalRole,
		rec.Action, rec.Outcome, rec.FailureKind, rec.StartedAt, rec.EndedAt,
	)
	if err != nil {
		return errs.Wrap(err, "insert unlock attempt audit row")
	}
	return nil
}

// RecentForBox returns the newest terminal attempts for one box, newest
// first. Serves the host-facing attempt history endpoint.
func (s *Store) RecentForBox(ctx context.Context, boxID int64, limit int) ([]usecase.AuditRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, box_id, principal_id, principal_role, action, outcome, failure_kind, started_at, ended_at
		   FROM unlock_attempts
		  WHERE box_id = $1
		  ORDER BY ended_at DESC
		  LIMIT $2`,
		boxID, limit,
	)
	if err != nil {
		return nil, errs.Wrap(err, "query unlock attempt audit rows")
	}
	defer rows.Close()

	var records []usecase.AuditRecord
	for rows.Next() {
		var rec usecase.AuditRecord
		var startedAt, endedAt time.Time
		if err := rows.Scan(
			&rec.AttemptID, &rec.BoxID, &rec.PrincipalID, &rec.PrincipalRole,
			&rec.Action, &rec.Outcome, &rec.FailureKind, &startedAt, &endedAt,
		); err != nil {
			return nil, errs.Wrap(err, "scan unlock attempt audit row")
		}
		rec.StartedAt = startedAt
		rec.EndedAt = endedAt
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "iterate unlock attempt audit rows")
	}
	return records, nil
}
