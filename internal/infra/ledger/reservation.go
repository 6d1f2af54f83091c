package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/domain/reservation"
	"smartbox-gateway/internal/pkg/config"
)

type ReservationClient struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

func NewReservationClient(cfg config.LedgerConfig, logger *slog.Logger) *ReservationClient {
	return &ReservationClient{
		baseURL: strings.TrimRight(cfg.ReservationBaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type reservationDTO struct {
	ID  int64 `json:"id"`
	Box *struct {
		ID     int64 `json:"id"`
		HostID int64 `json:"host_id"`
	} `json:"box"`
	HostID     int64      `json:"host_id"`
	GuestID    int64      `json:"guest_id"`
	Status     string     `json:"status"`
	CheckinAt  *time.Time `json:"checkin_at"`
	CheckoutAt *time.Time `json:"checkout_at"`
}

func (c *ReservationClient) GetReservation(ctx context.Context, reservationID int64) (*reservation.Reservation, error) {
	var dto reservationDTO
	url := fmt.Sprintf("%s/v1/reservations/%d", c.baseURL, reservationID)
	if err := doGet(ctx, c.httpc, c.logger, url, &dto); err != nil {
		return nil, err
	}

	res := &reservation.Reservation{
		ID:         dto.ID,
		HostID:     dto.HostID,
		GuestID:    dto.GuestID,
		Status:     reservation.Status(dto.Status),
		CheckinAt:  dto.CheckinAt,
		CheckoutAt: dto.CheckoutAt,
	}
	if dto.Box != nil {
		res.Box = &box.Box{ID: box.ID(dto.Box.ID), HostID: box.HostID(dto.Box.HostID)}
	}
	return res, nil
}

func (c *ReservationClient) CheckIn(ctx context.Context, reservationID int64) error {
	url := fmt.Sprintf("%s/v1/reservations/%d/check-in", c.baseURL, reservationID)
	return doTransition(ctx, c.httpc, c.logger, url, nil)
}

func (c *ReservationClient) CheckOut(ctx context.Context, reservationID int64) error {
	url := fmt.Sprintf("%s/v1/reservations/%d/check-out", c.baseURL, reservationID)
	return doTransition(ctx, c.httpc, c.logger, url, nil)
}

type timestampRequest struct {
	Field string    `json:"field"`
	Value time.Time `json:"value"`
}

// SetCheckoutAt records the checkout timestamp ahead of the status
// transition; the checkout strategy depends on this ordering.
func (c *ReservationClient) SetCheckoutAt(ctx context.Context, reservationID int64, at time.Time) error {
	url := fmt.Sprintf("%s/v1/reservations/%d/timestamp", c.baseURL, reservationID)
	return doTransition(ctx, c.httpc, c.logger, url, timestampRequest{Field: "checkout_at", Value: at})
}
