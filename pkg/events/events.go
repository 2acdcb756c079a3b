// Package events publishes booking lifecycle events. Delivery is best effort:
// a failed publish is logged and never surfaces to the caller.
package events

import (
	"context"
	"staybook/pkg/kafka"
	"staybook/pkg/logger"
	"time"
)

const (
	BookingCreated       = "booking.created"
	BookingStatusChanged = "booking.status_changed"
	BookingRated         = "booking.rated"

	schemaVersion  = "1"
	publishTimeout = 5 * time.Second
)

// BookingEvent is the payload of every booking event.
type BookingEvent struct {
	BookingID      string    `json:"bookingId"`
	HotelID        string    `json:"hotelId"`
	UserID         string    `json:"userId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	ChangedBy      string    `json:"changedBy,omitempty"`
	TotalPrice     float64   `json:"totalPrice,omitempty"`
	Rating         int       `json:"rating,omitempty"`
	AverageRating  float64   `json:"averageRating,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type Publisher interface {
	PublishBooking(ctx context.Context, eventType string, event BookingEvent)
}

type Producer interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type kafkaPublisher struct {
	producer Producer
	source   string
	log      *logger.Logger
}

func NewKafkaPublisher(producer Producer, source string, log *logger.Logger) Publisher {
	return &kafkaPublisher{producer: producer, source: source, log: log}
}

func (p *kafkaPublisher) PublishBooking(ctx context.Context, eventType string, event BookingEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	msg := kafka.NewMessage().
		WithKey(event.BookingID).
		WithValue(event).
		WithEventType(eventType).
		WithSchemaVersion(schemaVersion).
		WithSource(p.source).
		WithCorrelationID(logger.RequestID(ctx)).
		Build()

	// The request may finish before the broker acknowledges.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.producer.Publish(pubCtx, msg); err != nil {
		p.log.Ctx(ctx).Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}

type nopPublisher struct{}

// Nop returns a Publisher that drops every event.
func Nop() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishBooking(context.Context, string, BookingEvent) {}
