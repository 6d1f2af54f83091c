package usecase

import (
	"context"
	"log/slog"

	"smartbox-gateway/internal/domain/attempt"
	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/domain/principal"
	"smartbox-gateway/internal/pkg/errs"
)

var (
	// ErrBoxMismatch is a caller error: the scanned box is not the one on the
	// reservation. It must stay distinguishable from lookup faults.
	ErrBoxMismatch              = errs.New("scanned box does not match reservation")
	ErrReservationMissingBox    = errs.New("reservation has no box assigned")
	ErrHostMissingOnReservation = errs.New("reservation has no host")
	ErrBoxNotOwned              = errs.New("box is not owned by the host")
	ErrOwnershipLookupFailed    = errs.New("ownership lookup failed")
	ErrOrderMissing             = errs.New("order required for fulfillment")
)

// OwnershipVerifier confirms that the acting principal is entitled to open the
// scanned box before any signal is requested or emitted. All failures are
// terminal for the attempt; none are retried automatically.
type OwnershipVerifier interface {
	Verify(ctx context.Context, boxID box.ID, pr principal.Principal, action attempt.PendingAction) (box.HostID, error)
}

type ownershipVerifierImpl struct {
	directory BoxDirectory
	logger    *slog.Logger
}

func NewOwnershipVerifier(directory BoxDirectory, logger *slog.Logger) OwnershipVerifier {
	return &ownershipVerifierImpl{
		directory: directory,
		logger:    logger,
	}
}

func (v *ownershipVerifierImpl) Verify(
	ctx context.Context,
	boxID box.ID,
	pr principal.Principal,
	action attempt.PendingAction,
) (box.HostID, error) {
	switch pr.Role {
	case principal.RoleHost:
		// A host scanning in their own flow is the owner by construction.
		return box.HostID(pr.ID), nil
	case principal.RoleGuest:
		return v.verifyGuest(boxID, action)
	case principal.RoleCleaner:
		return v.verifyCleaner(ctx, boxID, action)
	default:
		return 0, ErrOwnershipLookupFailed
	}
}

func (v *ownershipVerifierImpl) verifyGuest(boxID box.ID, action attempt.PendingAction) (box.HostID, error) {
	res := action.Reservation
	if res == nil || res.Box == nil || res.Box.ID == 0 {
		return 0, ErrReservationMissingBox
	}
	if res.HostID == 0 {
		return 0, ErrHostMissingOnReservation
	}
	if res.Box.ID != boxID {
		return 0, ErrBoxMismatch
	}
	return box.HostID(res.HostID), nil
}

func (v *ownershipVerifierImpl) verifyCleaner(ctx context.Context, boxID box.ID, action attempt.PendingAction) (box.HostID, error) {
	ord := action.Order
	if ord == nil {
		return 0, ErrOrderMissing
	}
	if ord.HostID == 0 {
		return 0, ErrHostMissingOnReservation
	}

	hostID := box.HostID(ord.HostID)
	owned, err := v.directory.HostBoxes(ctx, hostID)
	if err != nil {
		return 0, errs.Mark(err, ErrOwnershipLookupFailed)
	}

	for _, id := range owned {
		if id == boxID {
			return hostID, nil
		}
	}

	v.logger.Warn("cleaner scanned a box the order's host does not own",
		slog.Int64("box_id", boxID.Int64()),
		slog.Int64("host_id", hostID.Int64()),
		slog.Int64("order_id", ord.ID),
	)
	return 0, ErrBoxNotOwned
}
