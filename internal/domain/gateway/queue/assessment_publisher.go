package queue

import (
	"context"

	"turbo-api/internal/domain/model"
)

// AssessmentPublisher announces freshly computed wind assessments to other systems.
type AssessmentPublisher interface {
	Publish(ctx context.Context, event model.AssessmentEvent) error
	Name() string
	Close() error
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher() AssessmentPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, model.AssessmentEvent) error { return nil }

func (noopPublisher) Name() string { return "none" }

func (noopPublisher) Close() error { return nil }
