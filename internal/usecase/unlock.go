package usecase

import (
	"context"
	"log/slog"

	"smartbox-gateway/internal/domain/attempt"
	"smartbox-gateway/internal/domain/principal"
	"smartbox-gateway/internal/infra"
	"smartbox-gateway/internal/pkg/errs"
	"smartbox-gateway/internal/pkg/qr"
)

var (
	ErrInvalidQRCode       = errs.New("invalid QR code")
	ErrInvalidAction       = errs.New("invalid action")
	ErrReservationRequired = errs.New("reservation id required for this action")
	ErrOrderRequired       = errs.New("order id required for this action")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrOrderNotFound       = errs.New("order not found")
	ErrLedgerLookupFailed  = errs.New("ledger lookup failed")
)

type StartAttemptParams struct {
	QRPayload     string
	Action        attempt.ActionKind
	ReservationID *int64
	OrderID       *int64
}

// UnlockCommands is the caller-facing surface of the unlock protocol: it
// resolves request parameters into a pending action and delegates to the
// principal's coordinator.
type UnlockCommands interface {
	Start(ctx context.Context, pr principal.Principal, params StartAttemptParams) (AttemptView, error)
	Confirm(ctx context.Context, pr principal.Principal, successful bool) (AttemptView, error)
	SubmitNotes(ctx context.Context, pr principal.Principal, notes string) (AttemptView, error)
	Cancel(ctx context.Context, pr principal.Principal) (AttemptView, error)
	Reset(ctx context.Context, pr principal.Principal) (AttemptView, error)
	Current(ctx context.Context, pr principal.Principal) (AttemptView, error)
}

type unlockCommandsImpl struct {
	hub          *Hub
	reservations ReservationLedger
	orders       OrderLedger
	logger       *slog.Logger
}

func NewUnlockCommands(hub *Hub, reservations ReservationLedger, orders OrderLedger, logger *slog.Logger) UnlockCommands {
	return &unlockCommandsImpl{
		hub:          hub,
		reservations: reservations,
		orders:       orders,
		logger:       logger,
	}
}

func (u *unlockCommandsImpl) Start(ctx context.Context, pr principal.Principal, params StartAttemptParams) (AttemptView, error) {
	boxID, err := qr.ParseBoxID(params.QRPayload)
	if err != nil {
		// Caller error; never reaches ownership verification.
		return AttemptView{State: attempt.StateIdle}, ErrInvalidQRCode
	}

	action, err := u.resolveAction(ctx, params)
	if err != nil {
		return AttemptView{State: attempt.StateIdle}, err
	}

	return u.hub.Coordinator(pr).StartAttempt(ctx, boxID, pr, action)
}

func (u *unlockCommandsImpl) Confirm(ctx context.Context, pr principal.Principal, successful bool) (AttemptView, error) {
	return u.hub.Coordinator(pr).Confirm(ctx, successful)
}

func (u *unlockCommandsImpl) SubmitNotes(ctx context.Context, pr principal.Principal, notes string) (AttemptView, error) {
	return u.hub.Coordinator(pr).SubmitNotes(ctx, notes)
}

func (u *unlockCommandsImpl) Cancel(_ context.Context, pr principal.Principal) (AttemptView, error) {
	return u.hub.Coordinator(pr).Cancel(), nil
}

func (u *unlockCommandsImpl) Reset(_ context.Context, pr principal.Principal) (AttemptView, error) {
	return u.hub.Coordinator(pr).Reset(), nil
}

func (u *unlockCommandsImpl) Current(_ context.Context, pr principal.Principal) (AttemptView, error) {
	return u.hub.Coordinator(pr).CurrentView(), nil
}

func (u *unlockCommandsImpl) resolveAction(ctx context.Context, params StartAttemptParams) (attempt.PendingAction, error) {
	switch params.Action {
	case attempt.ActionNone:
		return attempt.PendingAction{Kind: attempt.ActionNone}, nil

	case attempt.ActionCheckIn, attempt.ActionCheckOut:
		if params.ReservationID == nil {
			return attempt.PendingAction{}, ErrReservationRequired
		}
		res, err := u.reservations.GetReservation(ctx, *params.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return attempt.PendingAction{}, ErrReservationNotFound
			}
			return attempt.PendingAction{}, errs.Mark(err, ErrLedgerLookupFailed)
		}
		return attempt.PendingAction{Kind: params.Action, Reservation: res}, nil

	case attempt.ActionFulfill:
		if params.OrderID == nil {
			return attempt.PendingAction{}, ErrOrderRequired
		}
		ord, err := u.orders.GetOrder(ctx, *params.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return attempt.PendingAction{}, ErrOrderNotFound
			}
			return attempt.PendingAction{}, errs.Mark(err, ErrLedgerLookupFailed)
		}
		return attempt.PendingAction{Kind: attempt.ActionFulfill, Order: ord}, nil

	default:
		return attempt.PendingAction{}, ErrInvalidAction
	}
}
