package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"turbo-api/internal/domain/model"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is satisfied by *kafkago.Writer
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type kafkaAssessmentPublisher struct {
	writer MessageWriter
	topic  string
}

// NewKafkaWriter creates the producer used by the kafka publisher.
func NewKafkaWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}
}

func NewKafkaAssessmentPublisher(writer MessageWriter, topic string) AssessmentPublisher {
	return &kafkaAssessmentPublisher{writer: writer, topic: topic}
}

func (p *kafkaAssessmentPublisher) Publish(ctx context.Context, event model.AssessmentEvent) error {
	msg, err := toKafkaMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish assessment %s: %w", event.EventID, err)
	}
	return nil
}

func (p *kafkaAssessmentPublisher) Name() string {
	return "kafka:" + p.topic
}

func (p *kafkaAssessmentPublisher) Close() error {
	return p.writer.Close()
}

// toKafkaMessage keys messages by coordinate so one location stays on one partition
func toKafkaMessage(event model.AssessmentEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize assessment event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.CacheKey),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte("wind.assessment")},
			{Key: "grade", Value: []byte(event.Data.Grade)},
			{Key: "occurred_at", Value: []byte(event.OccurredAt)},
		},
	}, nil
}
