package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSClient defines the SQS operations used by Sender
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Sender serializes bodies to JSON and sends them to SQS queues, queue URLs are resolved once per name
type Sender struct {
	sqsClient SQSClient
	mu        sync.RWMutex
	queueURLs map[string]string
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
		queueURLs: make(map[string]string),
	}
}

// SendMessage sends body as JSON to queueName and returns the SQS message id.
// attributes are attached as String message attributes.
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) (string, error) {
	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(jsonBody)),
	}
	if len(attributes) > 0 {
		input.MessageAttributes = make(map[string]types.MessageAttributeValue, len(attributes))
		for name, value := range attributes {
			input.MessageAttributes[name] = types.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(value),
			}
		}
	}

	output, err := s.sqsClient.SendMessage(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}
	return aws.ToString(output.MessageId), nil
}

func (s *Sender) getQueueURL(ctx context.Context, queueName string) (string, error) {
	s.mu.RLock()
	queueURL, ok := s.queueURLs[queueName]
	s.mu.RUnlock()
	if ok {
		return queueURL, nil
	}

	result, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queueName),
	})
	if err != nil {
		return "", err
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}

	s.mu.Lock()
	s.queueURLs[queueName] = *result.QueueUrl
	s.mu.Unlock()
	return *result.QueueUrl, nil
}
