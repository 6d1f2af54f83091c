package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"smartbox-gateway/internal/domain/order"
	"smartbox-gateway/internal/pkg/config"
)

type OrderClient struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

func NewOrderClient(cfg config.LedgerConfig, logger *slog.Logger) *OrderClient {
	return &OrderClient{
		baseURL: strings.TrimRight(cfg.OrderBaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type orderDTO struct {
	ID            int64      `json:"id"`
	ReservationID int64      `json:"reservation_id"`
	HostID        int64      `json:"host_id"`
	Status        string     `json:"status"`
	Notes         *string    `json:"notes"`
	FulfilledAt   *time.Time `json:"fulfilled_at"`
	FulfilledBy   *int64     `json:"fulfilled_by"`
}

func (c *OrderClient) GetOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	var dto orderDTO
	url := fmt.Sprintf("%s/v1/orders/%d", c.baseURL, orderID)
	if err := doGet(ctx, c.httpc, c.logger, url, &dto); err != nil {
		return nil, err
	}

	return &order.Order{
		ID:            dto.ID,
		ReservationID: dto.ReservationID,
		HostID:        dto.HostID,
		Status:        order.Status(dto.Status),
		Notes:         dto.Notes,
		FulfilledAt:   dto.FulfilledAt,
		FulfilledBy:   dto.FulfilledBy,
	}, nil
}

type fulfillRequest struct {
	Notes *string `json:"notes,omitempty"`
}

func (c *OrderClient) Fulfill(ctx context.Context, orderID int64, notes *string) error {
	url := fmt.Sprintf("%s/v1/orders/%d/fulfill", c.baseURL, orderID)
	return doTransition(ctx, c.httpc, c.logger, url, fulfillRequest{Notes: notes})
}
