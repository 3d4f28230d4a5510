package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/stylehub/order-service/internal/config"
	"github.com/stylehub/order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// statusEvent is the wire shape consumed by the notification pipeline
// (email/SMS workers).
type statusEvent struct {
	OrderID        string    `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	CustomerID     string    `json:"customer_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	ChangedBy      string    `json:"changed_by"`
	ChangedAt      time.Time `json:"changed_at"`
}

type KafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *KafkaNotifier {
	return &KafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// StatusChanged publishes one status-change event, keyed by order id so
// events for the same order stay ordered within a partition.
func (n *KafkaNotifier) StatusChanged(ctx context.Context, event entities.StatusEvent) error {
	data, err := json.Marshal(statusEvent{
		OrderID:        event.OrderID,
		OrderNumber:    event.OrderNumber,
		CustomerID:     event.CustomerID,
		PreviousStatus: string(event.PreviousStatus),
		NewStatus:      string(event.NewStatus),
		TrackingNumber: event.TrackingNumber,
		ChangedBy:      event.ChangedBy,
		ChangedAt:      event.ChangedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	})
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
