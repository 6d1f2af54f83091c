package bootstrap

import (
	"context"
	"log/slog"

	"smartbox-gateway/internal/infra/events"
	"smartbox-gateway/internal/pkg/config"
	"smartbox-gateway/internal/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewOutcomePublisher,
	),
)

// NewOutcomePublisher connects the outcome-event broker. Like the ownership
// cache, it degrades: with no broker the protocol keeps working and events
// are dropped.
func NewOutcomePublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) usecase.OutcomePublisher {
	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		logger.Warn("rabbitmq unreachable; outcome events disabled", "error", err)
		return events.NewNopPublisher(logger)
	}

	publisher, err := events.NewPublisher(conn, cfg.AMQP.OutcomeQueue, logger)
	if err != nil {
		logger.Warn("rabbitmq queue declare failed; outcome events disabled", "error", err)
		_ = conn.Close()
		return events.NewNopPublisher(logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})
	return publisher
}
