// Package events publishes terminal attempt outcomes to RabbitMQ so
// downstream reconcilers can react, in particular to "box opened but record
// not updated" failures.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"smartbox-gateway/internal/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	conn   *amqp.Connection
	queue  string
	logger *slog.Logger
}

// NewPublisher declares the durable outcome queue once and returns a
// publisher bound to it. Messages survive broker restarts.
func NewPublisher(conn *amqp.Connection, queue string, logger *slog.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return nil, err
	}

	return &Publisher{
		conn:   conn,
		queue:  queue,
		logger: logger,
	}, nil
}

func (p *Publisher) PublishOutcome(ctx context.Context, ev usecase.OutcomeEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		p.logger.Error("rabbitmq: channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	body, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("rabbitmq: marshal outcome event failed", "error", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.logger.Error("rabbitmq: publish outcome event failed", "error", err)
		return err
	}
	return nil
}

// NopPublisher drops events. Used when the broker is unreachable at startup
// so the unlock protocol keeps working without it.
type NopPublisher struct {
	logger *slog.Logger
}

func NewNopPublisher(logger *slog.Logger) *NopPublisher {
	return &NopPublisher{logger: logger}
}

func (p *NopPublisher) PublishOutcome(_ context.Context, ev usecase.OutcomeEvent) error {
	p.logger.Debug("outcome event dropped: no broker configured", "attempt_id", ev.AttemptID)
	return nil
}
