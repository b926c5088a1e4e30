// Package kafkanotifier publishes order lifecycle notifications to a Kafka
// topic. Delivery is at-least-once; consumers dedupe on order id and kind.
package kafkanotifier

import (
	"context"
	"encoding/json"
	"time"

	"printmarket/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// DefaultTopic is the topic notifications are published to unless configured
// otherwise.
const DefaultTopic = "printmarket.notifications"

// message is the wire representation of one notification.
type message struct {
	Kind        string    `json:"kind"`
	OrderID     string    `json:"order_id"`
	RecipientID string    `json:"recipient_id"`
	Status      string    `json:"status"`
	Message     string    `json:"message,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// KafkaNotifier implements ports.Notifier over a kafka-go writer.
type KafkaNotifier struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// NewKafkaNotifier creates a notifier publishing to the given brokers and
// topic. The writer allows auto topic creation so a fresh environment works
// without manual setup.
func NewKafkaNotifier(brokers []string, topic string, logger zerolog.Logger) *KafkaNotifier {
	if topic == "" {
		topic = DefaultTopic
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	return &KafkaNotifier{
		writer: writer,
		logger: logger.With().Str("component", "kafka_notifier").Logger(),
	}
}

// Publish sends one notification keyed by order id, so all events of one
// order land on the same partition in order.
func (n *KafkaNotifier) Publish(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(message{
		Kind:        string(notification.Kind),
		OrderID:     notification.OrderID.String(),
		RecipientID: notification.RecipientID.String(),
		Status:      notification.Status.String(),
		Message:     notification.Message,
		PublishedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.OrderID.String()),
		Value: payload,
	})
	if err != nil {
		n.logger.Warn().
			Err(err).
			Str("kind", string(notification.Kind)).
			Str("order_id", notification.OrderID.String()).
			Msg("failed to publish notification")
		return err
	}

	n.logger.Debug().
		Str("kind", string(notification.Kind)).
		Str("order_id", notification.OrderID.String()).
		Msg("notification published")
	return nil
}

// Close releases the underlying Kafka writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
