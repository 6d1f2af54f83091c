// Package order models extra-item orders owned by the OrderLedger.
package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) CanFulfill() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Order struct {
	ID            int64
	ReservationID int64
	HostID        int64
	Status        Status
	Notes         *string
	FulfilledAt   *time.Time
	FulfilledBy   *int64
}
