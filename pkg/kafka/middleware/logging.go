package kafka_middleware

import (
	"context"
	"staybook/pkg/kafka"
	"staybook/pkg/logger"
	"time"
)

// LoggingProducerMiddleware logs every publish attempt with its outcome.
func LoggingProducerMiddleware(log *logger.Logger) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)

		attrs := []any{
			"topic", msg.Topic,
			"key", msg.Key,
			"event_id", msg.GetEventID(),
			"event_type", msg.GetEventType(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			log.Ctx(ctx).Error("Failed to publish message", append(attrs, "error", err)...)
		} else {
			log.Ctx(ctx).Debug("Published message", attrs...)
		}
		return err
	}
}
