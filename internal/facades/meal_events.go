package facades

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/daily-diet/internal/logger"
	"github.com/sbilibin2017/daily-diet/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=meal_events.go -destination=meal_events_mock.go -package=facades

// KafkaWriter defines the interface for publishing messages to Kafka.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MealEventKafkaFacade publishes meal change events to Kafka.
type MealEventKafkaFacade struct {
	writer KafkaWriter
}

// NewMealEventKafkaFacade creates a new facade over a Kafka writer.
func NewMealEventKafkaFacade(writer KafkaWriter) *MealEventKafkaFacade {
	return &MealEventKafkaFacade{writer: writer}
}

// Publish writes a single meal event. Messages are keyed by owner so that
// the events of one user stay ordered within a partition.
func (f *MealEventKafkaFacade) Publish(ctx context.Context, event models.MealEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal meal event", "event_id", event.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to write meal event to kafka", "event_id", event.EventID, "error", err)
		return err
	}

	return nil
}

// Close closes the underlying writer.
func (f *MealEventKafkaFacade) Close() error {
	return f.writer.Close()
}
