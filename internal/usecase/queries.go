package usecase

import (
	"context"

	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/domain/principal"
	"smartbox-gateway/internal/pkg/errs"
)

var ErrHistoryForbidden = errs.New("attempt history is only visible to the owning host")

// AttemptAuditReader reads back the audit trail.
type AttemptAuditReader interface {
	RecentForBox(ctx context.Context, boxID int64, limit int) ([]AuditRecord, error)
}

// AttemptQueries serves the host-facing attempt history.
type AttemptQueries interface {
	RecentAttempts(ctx context.Context, pr principal.Principal, boxID box.ID, limit int) ([]AuditRecord, error)
}

type attemptQueriesImpl struct {
	audit     AttemptAuditReader
	directory BoxDirectory
}

func NewAttemptQueries(audit AttemptAuditReader, directory BoxDirectory) AttemptQueries {
	return &attemptQueriesImpl{
		audit:     audit,
		directory: directory,
	}
}

func (q *attemptQueriesImpl) RecentAttempts(ctx context.Context, pr principal.Principal, boxID box.ID, limit int) ([]AuditRecord, error) {
	if pr.Role != principal.RoleHost {
		return nil, ErrHistoryForbidden
	}

	owned, err := q.directory.HostBoxes(ctx, box.HostID(pr.ID))
	if err != nil {
		return nil, errs.Mark(err, ErrOwnershipLookupFailed)
	}
	isOwner := false
	for _, id := range owned {
		if id == boxID {
			isOwner = true
			break
		}
	}
	if !isOwner {
		return nil, ErrHistoryForbidden
	}

	return q.audit.RecentForBox(ctx, boxID.Int64(), limit)
}
