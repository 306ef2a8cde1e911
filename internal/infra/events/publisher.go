package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"wayfare/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	BookingCreated   = "booking.created"
	BookingConfirmed = "booking.confirmed"
	BookingCancelled = "booking.cancelled"
	BookingCompleted = "booking.completed"
)

type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"bookingId"`
	CustomerID uuid.UUID `json:"customerId"`
	ListingID  uuid.UUID `json:"listingId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher emits booking lifecycle events. Publishing is best effort: a
// broker outage must not fail the transaction that produced the event.
type Publisher interface {
	Publish(ctx context.Context, event BookingEvent)
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.BookingEvents,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event BookingEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal booking event", "type", event.Type, "error", err.Error())
		return
	}

	msg := kafka.Message{
		// Keyed by booking so consumers see one booking's events in order.
		Key:   []byte(event.BookingID.String()),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.Error("failed to publish booking event",
			"type", event.Type,
			"booking_id", event.BookingID,
			"error", err.Error())
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. Used in tests and when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, BookingEvent) {}
