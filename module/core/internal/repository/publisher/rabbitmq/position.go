package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/KATANA0x00/unicon-mongodb-api/module/core/domain"
	"github.com/KATANA0x00/unicon-mongodb-api/module/core/internal/repository/publisher"
)

var _ publisher.PositionPublisher = (*PositionPublisher)(nil)

const (
	exchangeName = "unicon.events"
	queueName    = "position_updates"
)

type PositionPublisher struct {
	ch *amqp.Channel
}

func NewPositionPublisher(conn *amqp.Connection) (*PositionPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &PositionPublisher{ch: ch}, nil
}

func (p *PositionPublisher) PublishUpdate(ctx context.Context, event *domain.PositionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
