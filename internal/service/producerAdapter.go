package service

import (
	"context"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/pkg/kafka"
)

// ProducerAdapter adapts the kafka producer to the EventPublisher
// interface.
type ProducerAdapter struct {
	producer kafka.Producer
	topic    string
}

func NewProducerAdapter(producer kafka.Producer, topic string) *ProducerAdapter {
	return &ProducerAdapter{producer: producer, topic: topic}
}

func (a *ProducerAdapter) Publish(ctx context.Context, event *BookingEvent) error {
	if a.producer == nil {
		return nil
	}
	return a.producer.SendMessage(a.topic, event)
}
