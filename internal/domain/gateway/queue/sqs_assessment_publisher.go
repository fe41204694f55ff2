package queue

import (
	"context"
	"fmt"

	"turbo-api/internal/domain/model"
)

// MessageSender is satisfied by pkg/sqs.Sender
type MessageSender interface {
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) (string, error)
}

type sqsAssessmentPublisher struct {
	sender    MessageSender
	queueName string
}

func NewSQSAssessmentPublisher(sender MessageSender, queueName string) AssessmentPublisher {
	return &sqsAssessmentPublisher{sender: sender, queueName: queueName}
}

func (p *sqsAssessmentPublisher) Publish(ctx context.Context, event model.AssessmentEvent) error {
	_, err := p.sender.SendMessage(ctx, p.queueName, event, map[string]string{
		"grade":     event.Data.Grade,
		"eventType": "wind.assessment",
	})
	if err != nil {
		return fmt.Errorf("publish assessment %s: %w", event.EventID, err)
	}
	return nil
}

func (p *sqsAssessmentPublisher) Name() string {
	return "sqs:" + p.queueName
}

func (p *sqsAssessmentPublisher) Close() error {
	return nil
}
