package usecase

import (
	"context"

	"smartbox-gateway/internal/domain/attempt"
	"smartbox-gateway/internal/domain/principal"
	"smartbox-gateway/internal/pkg/clock"
	"smartbox-gateway/internal/pkg/errs"
)

var (
	ErrCheckInFailed           = errs.New("check-in could not be recorded")
	ErrCheckOutFailed          = errs.New("check-out could not be recorded")
	ErrCheckOutTimestampFailed = errs.New("checkout timestamp could not be recorded")
	ErrFulfillFailed           = errs.New("order fulfillment could not be recorded")
	ErrActionNotConfigured     = errs.New("no strategy configured for action")
)

type ActionOutcome struct {
	Message string
}

// ActionStrategy applies the downstream business transaction after the box is
// confirmed open. Strategies never retry; a failure is surfaced as-is.
type ActionStrategy interface {
	Apply(ctx context.Context, pr principal.Principal, action attempt.PendingAction) (ActionOutcome, error)
}

type ActionStrategies struct {
	byKind map[attempt.ActionKind]ActionStrategy
}

func NewActionStrategies(reservations ReservationLedger, orders OrderLedger, clk clock.Clock) *ActionStrategies {
	return &ActionStrategies{
		byKind: map[attempt.ActionKind]ActionStrategy{
			attempt.ActionCheckIn:  &checkInStrategy{reservations: reservations},
			attempt.ActionCheckOut: &checkOutStrategy{reservations: reservations, clock: clk},
			attempt.ActionFulfill:  &fulfillStrategy{orders: orders},
			attempt.ActionNone:     &noOpStrategy{},
		},
	}
}

func (s *ActionStrategies) ForKind(kind attempt.ActionKind) (ActionStrategy, bool) {
	strategy, ok := s.byKind[kind]
	return strategy, ok
}

type checkInStrategy struct {
	reservations ReservationLedger
}

func (s *checkInStrategy) Apply(ctx context.Context, _ principal.Principal, action attempt.PendingAction) (ActionOutcome, error) {
	// The ledger tolerates re-check-in of an already checked-in reservation.
	if err := s.reservations.CheckIn(ctx, action.Reservation.ID); err != nil {
		return ActionOutcome{}, errs.Mark(err, ErrCheckInFailed)
	}
	return ActionOutcome{Message: "Checked in. Enjoy your stay!"}, nil
}

type checkOutStrategy struct {
	reservations ReservationLedger
	clock        clock.Clock
}

func (s *checkOutStrategy) Apply(ctx context.Context, _ principal.Principal, action attempt.PendingAction) (ActionOutcome, error) {
	// Timestamp first, transition second. A checkout timestamp without a
	// status change is safe to retry; a status change without the timestamp
	// is not, so the transition is never attempted after a timestamp failure.
	if err := s.reservations.SetCheckoutAt(ctx, action.Reservation.ID, s.clock.Now()); err != nil {
		return ActionOutcome{}, errs.Mark(err, ErrCheckOutTimestampFailed)
	}
	if err := s.reservations.CheckOut(ctx, action.Reservation.ID); err != nil {
		return ActionOutcome{}, errs.Mark(err, ErrCheckOutFailed)
	}
	return ActionOutcome{Message: "Checked out. Safe travels!"}, nil
}

type fulfillStrategy struct {
	orders OrderLedger
}

func (s *fulfillStrategy) Apply(ctx context.Context, _ principal.Principal, action attempt.PendingAction) (ActionOutcome, error) {
	if err := s.orders.Fulfill(ctx, action.Order.ID, action.Notes); err != nil {
		return ActionOutcome{}, errs.Mark(err, ErrFulfillFailed)
	}
	return ActionOutcome{Message: "Order fulfilled."}, nil
}

// noOpStrategy covers a host opening their own box: the unlock itself is the
// whole transaction.
type noOpStrategy struct{}

func (s *noOpStrategy) Apply(_ context.Context, _ principal.Principal, _ attempt.PendingAction) (ActionOutcome, error) {
	return ActionOutcome{Message: "Box opened."}, nil
}
