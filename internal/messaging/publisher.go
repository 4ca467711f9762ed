package messaging

import (
	"context"

	"github.com/feral-file/wt-exchange/internal/domain"
)

// Publisher defines the interface for publishing economy events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes an economy event
	PublishEvent(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event.
// It is used when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishEvent(context.Context, *domain.Event) error {
	return nil
}

func (noopPublisher) Close() {}
