package usecase

import (
	"context"
	"time"

	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/domain/order"
	"smartbox-gateway/internal/domain/reservation"
	"smartbox-gateway/internal/domain/signal"

	"github.com/google/uuid"
)

// SignalClient requests a one-time open signal from the lock-controller
// backend. Each returned payload is bound to a single attempt; callers must
// never replay a payload across attempts.
type SignalClient interface {
	RequestSignal(ctx context.Context, boxID box.ID, hostID box.HostID) (*signal.Signal, error)
}

// SignalEmitter plays a decoded signal on an unbounded loop until Stop.
//
// Start takes ownership of the signal in every case: on success the signal is
// released when playback stops, on error it is released before Start returns.
// onErr is invoked at most once, asynchronously, if playback fails after Start
// returned. Stop is idempotent and returns only after the loop has exited.
type SignalEmitter interface {
	Start(sig *signal.Signal, onErr func(error)) error
	Stop()
}

// BoxDirectory answers which boxes a host owns. Used for cleaner-fulfillment
// ownership checks.
type BoxDirectory interface {
	HostBoxes(ctx context.Context, hostID box.HostID) ([]box.ID, error)
}

// ReservationLedger is the system of record for reservations; this gateway
// only reads snapshots and requests status transitions.
type ReservationLedger interface {
	GetReservation(ctx context.Context, reservationID int64) (*reservation.Reservation, error)
	CheckIn(ctx context.Context, reservationID int64) error
	CheckOut(ctx context.Context, reservationID int64) error
	SetCheckoutAt(ctx context.Context, reservationID int64, at time.Time) error
}

// OrderLedger is the system of record for extra-item orders.
type OrderLedger interface {
	GetOrder(ctx context.Context, orderID int64) (*order.Order, error)
	Fulfill(ctx context.Context, orderID int64, notes *string) error
}

// AuditRecord is the terminal snapshot of one attempt, appended to the audit
// trail. Ownership failures are recorded too: they are audit-worthy.
type AuditRecord struct {
	AttemptID     uuid.UUID
	BoxID         int64
	PrincipalID   int64
	PrincipalRole string
	Action        string
	Outcome       string
	FailureKind   string
	StartedAt     time.Time
	EndedAt       time.Time
}

type AttemptAudit interface {
	Record(ctx context.Context, rec AuditRecord) error
}

// OutcomeEvent is published on every terminal attempt state so downstream
// reconcilers can distinguish "box opened but record not updated" from a
// failed unlock.
type OutcomeEvent struct {
	AttemptID     string    `json:"attempt_id"`
	BoxID         int64     `json:"box_id"`
	PrincipalID   int64     `json:"principal_id"`
	PrincipalRole string    `json:"principal_role"`
	Action        string    `json:"action"`
	Outcome       string    `json:"outcome"`
	FailureKind   string    `json:"failure_kind,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type OutcomePublisher interface {
	PublishOutcome(ctx context.Context, ev OutcomeEvent) error
}
