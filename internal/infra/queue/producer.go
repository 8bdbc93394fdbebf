package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventTypeLead     = "lead"
	EventTypePayment  = "payment"
	EventTypeFollowup = "followup"
)

// BotEventPayload is the wire format shared with the bot process. One
// flat struct; Type decides which fields matter.
type BotEventPayload struct {
	Type string `json:"type"` // lead, payment, followup

	TelegramID string `json:"telegram_id"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`

	Plan   string  `json:"plan,omitempty"`
	Amount float64 `json:"amount,omitempty"`
	Method string  `json:"payment_method,omitempty"`
	Reason string  `json:"reason,omitempty"`
}

type QueueProducerInterface interface {
	PublishBotEvent(ctx context.Context, payload BotEventPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishBotEvent(ctx context.Context, payload BotEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal bot event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish bot event: %w", err)
	}

	return nil
}
