//go:build unit || e2e

package builder

import (
	"smartbox-gateway/internal/domain/attempt"
	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/domain/order"
	"smartbox-gateway/internal/domain/principal"
	"smartbox-gateway/internal/domain/reservation"
)

type AttemptBuilder struct {
	BoxID             box.ID
	HostID            int64
	GuestID           int64
	CleanerID         int64
	ReservationID     int64
	OrderID           int64
	ReservationStatus reservation.Status
	OrderStatus       order.Status
}

func NewAttemptBuilder() *AttemptBuilder {
	return &AttemptBuilder{
		BoxID:             42,
		HostID:            7,
		GuestID:           100,
		CleanerID:         200,
		ReservationID:     5001,
		OrderID:           9001,
		ReservationStatus: reservation.StatusPending,
		OrderStatus:       order.StatusConfirmed,
	}
}

func (b *AttemptBuilder) With(mutate func(*AttemptBuilder)) *AttemptBuilder {
	mutate(b)
	return b
}

func (b *AttemptBuilder) BuildGuest() principal.Principal {
	return principal.Principal{ID: b.GuestID, Role: principal.RoleGuest}
}

func (b *AttemptBuilder) BuildHost() principal.Principal {
	return principal.Principal{ID: b.HostID, Role: principal.RoleHost}
}

func (b *AttemptBuilder) BuildCleaner() principal.Principal {
	return principal.Principal{ID: b.CleanerID, Role: principal.RoleCleaner}
}

func (b *AttemptBuilder) BuildReservation() *reservation.Reservation {
	return &reservation.Reservation{
		ID:      b.ReservationID,
		Box:     &box.Box{ID: b.BoxID, HostID: box.HostID(b.HostID)},
		HostID:  b.HostID,
		GuestID: b.GuestID,
		Status:  b.ReservationStatus,
	}
}

func (b *AttemptBuilder) BuildOrder() *order.Order {
	return &order.Order{
		ID:            b.OrderID,
		ReservationID: b.ReservationID,
		HostID:        b.HostID,
		Status:        b.OrderStatus,
	}
}

func (b *AttemptBuilder) BuildCheckInAction() attempt.PendingAction {
	return attempt.PendingAction{Kind: attempt.ActionCheckIn, Reservation: b.BuildReservation()}
}

func (b *AttemptBuilder) BuildCheckOutAction() attempt.PendingAction {
	return attempt.PendingAction{Kind: attempt.ActionCheckOut, Reservation: b.BuildReservation()}
}

func (b *AttemptBuilder) BuildFulfillAction() attempt.PendingAction {
	return attempt.PendingAction{Kind: attempt.ActionFulfill, Order: b.BuildOrder()}
}

func (b *AttemptBuilder) BuildNoneAction() attempt.PendingAction {
	return attempt.PendingAction{Kind: attempt.ActionNone}
}

// BuildStartRequestBody returns the POST /attempts body as a mutable map so
// validation cases can drop or overwrite fields.
func (b *AttemptBuilder) BuildStartRequestBody(action attempt.ActionKind) map[string]any {
	body := map[string]any{
		"qr":     "42",
		"action": action.String(),
	}
	switch action {
	case attempt.ActionCheckIn, attempt.ActionCheckOut:
		body["reservationId"] = b.ReservationID
	case attempt.ActionFulfill:
		body["orderId"] = b.OrderID
	}
	return body
}
