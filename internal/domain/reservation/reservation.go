// Package reservation models the ledger-owned reservation as this gateway
// sees it: a read-only snapshot plus the status vocabulary needed to request
// transitions. The ReservationLedger remains the system of record.
package reservation

import (
	"time"

	"smartbox-gateway/internal/domain/box"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCheckedIn, StatusCheckedOut, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanCheckIn reports whether a check-in transition is acceptable from this
// status. Re-check-in of an already checked-in reservation is tolerated.
func (s Status) CanCheckIn() bool {
	return s == StatusPending || s == StatusCheckedIn
}

func (s Status) CanCheckOut() bool {
	return s == StatusCheckedIn
}

type Reservation struct {
	ID         int64
	Box        *box.Box
	HostID     int64
	GuestID    int64
	Status     Status
	CheckinAt  *time.Time
	CheckoutAt *time.Time
}
