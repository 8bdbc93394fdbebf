package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/growthx-admin/internal/usecase"
)

// EventRecorder is what the worker needs from the application: persist
// one bot event of each kind.
type EventRecorder interface {
	RecordLead(ctx context.Context, input usecase.RecordLeadInput) error
	RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) error
	RecordFollowup(ctx context.Context, input usecase.RecordFollowupInput) error
}

type Worker struct {
	Channel  *amqp.Channel
	Recorder EventRecorder
}

func NewWorker(ch *amqp.Channel, recorder EventRecorder) *Worker {
	return &Worker{Channel: ch, Recorder: recorder}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("❌ [Worker] Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload BotEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [Worker] Invalid JSON, sending to DLQ: %s", err)
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [Worker] Bot event received: type=%s telegram_id=%s", payload.Type, payload.TelegramID)

			if err := w.processEvent(context.Background(), payload); err != nil {
				log.Printf("❌ [Worker] Failed to process event: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker consuming queue '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(ctx context.Context, payload BotEventPayload) error {
	switch payload.Type {
	case EventTypeLead:
		return w.Recorder.RecordLead(ctx, usecase.RecordLeadInput{
			TelegramID: payload.TelegramID,
			FirstName:  payload.FirstName,
			LastName:   payload.LastName,
			Username:   payload.Username,
			Email:      payload.Email,
		})

	case EventTypePayment:
		return w.Recorder.RecordPayment(ctx, usecase.RecordPaymentInput{
			TelegramID: payload.TelegramID,
			Plan:       payload.Plan,
			Amount:     payload.Amount,
			Method:     payload.Method,
		})

	case EventTypeFollowup:
		return w.Recorder.RecordFollowup(ctx, usecase.RecordFollowupInput{
			TelegramID: payload.TelegramID,
			Plan:       payload.Plan,
			Reason:     payload.Reason,
		})

	default:
		// Unknown type: ack and drop, there is nothing to retry.
		log.Printf("⚠️ [Worker] Unknown event type %q, dropping", payload.Type)
		return nil
	}
}

// UseCaseRecorder wires the worker to the same use cases the HTTP
// ingestion endpoints run through.
type UseCaseRecorder struct {
	Leads     *usecase.RecordLeadUseCase
	Payments  *usecase.RecordPaymentUseCase
	Followups *usecase.RecordFollowupUseCase
}

func (r *UseCaseRecorder) RecordLead(ctx context.Context, input usecase.RecordLeadInput) error {
	if r.Leads == nil {
		return fmt.Errorf("lead recorder not wired")
	}
	return r.Leads.Execute(ctx, input)
}

func (r *UseCaseRecorder) RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) error {
	if r.Payments == nil {
		return fmt.Errorf("payment recorder not wired")
	}
	return r.Payments.Execute(ctx, input)
}

func (r *UseCaseRecorder) RecordFollowup(ctx context.Context, input usecase.RecordFollowupInput) error {
	if r.Followups == nil {
		return fmt.Errorf("followup recorder not wired")
	}
	return r.Followups.Execute(ctx, input)
}
