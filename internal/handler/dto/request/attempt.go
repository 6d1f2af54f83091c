package request

import (
	"smartbox-gateway/internal/domain/attempt"
	"smartbox-gateway/internal/usecase"
)

type StartAttemptRequest struct {
	QR            string `json:"qr" binding:"required"`
	Action        string `json:"action" binding:"required,oneof=none check_in check_out fulfill"`
	ReservationID *int64 `json:"reservationId,omitempty"`
	OrderID       *int64 `json:"orderId,omitempty"`
}

func (r StartAttemptRequest) ToParams() usecase.StartAttemptParams {
	return usecase.StartAttemptParams{
		QRPayload:     r.QR,
		Action:        attempt.ActionKind(r.Action),
		ReservationID: r.ReservationID,
		OrderID:       r.OrderID,
	}
}

type ConfirmAttemptRequest struct {
	Successful *bool `json:"successful" binding:"required"`
}

type SubmitNotesRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}
