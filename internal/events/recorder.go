package events

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/messaging"
	"github.com/feral-file/wt-exchange/internal/store"
)

const (
	DEFAULT_PAGE_LIMIT = 20
	MAX_PAGE_LIMIT     = 100
)

// Config holds configuration for the events recorder
type Config struct {
	WorkerPoolSize       int
	QueueSize            int
	RetryInitialInterval time.Duration
	RetryMaxElapsed      time.Duration
}

// Recorder keeps the economy events feed and forwards every recorded event to the broker
//
//go:generate mockgen -source=recorder.go -destination=../mocks/recorder.go -package=mocks -mock_names=Recorder=MockRecorder
type Recorder interface {
	// Record appends the event to the feed and schedules its publication.
	// Missing id, title and timestamp are filled in.
	Record(ctx context.Context, event domain.Event) (domain.Event, error)
	// List returns feed events newest first with the total feed size
	List(ctx context.Context, offset, limit int) ([]domain.Event, int, error)
	// Close waits for pending publications and closes the publisher
	Close()
}

type recorder struct {
	config    Config
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.Pool
}

// NewRecorder creates a new events recorder
func NewRecorder(cfg Config, s store.Store, publisher messaging.Publisher, clock adapter.Clock) Recorder {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.RetryInitialInterval <= 0 {
		cfg.RetryInitialInterval = 500 * time.Millisecond
	}
	if cfg.RetryMaxElapsed <= 0 {
		cfg.RetryMaxElapsed = 30 * time.Second
	}

	return &recorder{
		config:    cfg,
		store:     s,
		publisher: publisher,
		clock:     clock,
		pool:      pond.NewPool(cfg.WorkerPoolSize, pond.WithQueueSize(cfg.QueueSize)),
	}
}

func (r *recorder) Record(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.At.IsZero() {
		event.At = r.clock.Now()
	}
	if event.ID == "" {
		event.ID = ulid.MustNewDefault(event.At).String()
	}
	if event.Title == "" {
		event.Title = event.Type.Title()
	}

	if err := r.store.AppendEvent(ctx, event, domain.MAX_FEED_EVENTS); err != nil {
		return event, fmt.Errorf("failed to append event: %w", err)
	}

	logger.DebugCtx(ctx, "Event recorded",
		zap.String("id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("entity_id", event.EntityID),
	)

	published := event
	pubCtx := context.WithoutCancel(ctx)
	r.pool.Submit(func() {
		if err := r.publishWithRetry(pubCtx, &published); err != nil {
			logger.ErrorCtx(pubCtx, err, zap.String("event_id", published.ID))
		}
	})

	return event, nil
}

// publishWithRetry publishes with exponential backoff
func (r *recorder) publishWithRetry(ctx context.Context, event *domain.Event) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.config.RetryInitialInterval
	b.MaxInterval = 10 * r.config.RetryInitialInterval
	b.MaxElapsedTime = r.config.RetryMaxElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Event publish failed, retrying",
			zap.Error(err),
			zap.String("event_id", event.ID),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	operation := func() error {
		return r.publisher.PublishEvent(ctx, event)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return fmt.Errorf("failed to publish event after %d attempts: %w", attemptCount+1, err)
	}

	return nil
}

func (r *recorder) List(ctx context.Context, offset, limit int) ([]domain.Event, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DEFAULT_PAGE_LIMIT
	}
	limit = min(limit, MAX_PAGE_LIMIT)

	events, total, err := r.store.ListEvents(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return events, total, nil
}

func (r *recorder) Close() {
	r.pool.StopAndWait()
	r.publisher.Close()
}
