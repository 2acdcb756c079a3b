package kafka_middleware

import (
	"context"
	"staybook/pkg/kafka"
	"staybook/pkg/metrics"
)

// MetricsProducerMiddleware counts publish results per topic.
func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		err := next(ctx, msg)
		metrics.IncEvent(msg.Topic, err)
		return err
	}
}
