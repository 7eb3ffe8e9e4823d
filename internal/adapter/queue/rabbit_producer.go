package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tdngo/gomarket-api/internal/usecase"
)

const (
	ExchangeName = "market.events"

	RKOrderCreated        = "order.created"
	RKConversationUpdated = "conversation.updated"

	// Consumed by the relay for last-message fanout.
	QueueRelayLastMessage = "relay.lastmessage.q"
)

// RabbitProducer implements usecase.EventPublisher.
type RabbitProducer struct {
	ch *amqp.Channel
}

// NewRabbitProducer sets up the exchange, the relay queue, and its binding
// once at startup.
func NewRabbitProducer(ch *amqp.Channel) (*RabbitProducer, error) {
	if err := ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		QueueRelayLastMessage,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, RKConversationUpdated, ExchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("queue bind: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}

	return &RabbitProducer{ch: ch}, nil
}

func (p *RabbitProducer) PublishOrderCreated(ctx context.Context, msg usecase.OrderCreatedMsg) error {
	return p.publish(ctx, RKOrderCreated, msg)
}

func (p *RabbitProducer) PublishConversationUpdated(ctx context.Context, msg usecase.ConversationUpdatedMsg) error {
	return p.publish(ctx, RKConversationUpdated, msg)
}

func (p *RabbitProducer) publish(ctx context.Context, routingKey string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // survive broker restarts
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, ExchangeName, routingKey, false, false, pub); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

var _ usecase.EventPublisher = (*RabbitProducer)(nil)
