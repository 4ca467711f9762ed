package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/logger"
)

// Sweeper defines the interface for sweeper implementations
// Sweepers are long-running background tasks that perform periodic maintenance
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start begins the sweeper's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper
	// This should wait for any in-progress work to complete
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}

// intervalSweeper runs a cycle every interval until stopped
type intervalSweeper struct {
	name      string
	interval  time.Duration
	cycle     func(ctx context.Context) error
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

func newIntervalSweeper(name string, interval time.Duration, cycle func(ctx context.Context) error) *intervalSweeper {
	return &intervalSweeper{
		name:      name,
		interval:  interval,
		cycle:     cycle,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *intervalSweeper) Name() string {
	return s.name
}

// Start runs a cycle immediately and then once per interval
func (s *intervalSweeper) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("%s: interval must be positive", s.name)
	}
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting sweeper",
		zap.String("sweeper", s.name),
		zap.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.cycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err, zap.String("sweeper", s.name))
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Sweeper stopping due to context cancellation", zap.String("sweeper", s.name))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Sweeper stop requested", zap.String("sweeper", s.name))
			return nil
		case <-ticker.C:
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *intervalSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping sweeper", zap.String("sweeper", s.name))

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Sweeper stopped gracefully", zap.String("sweeper", s.name))
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Sweeper stop interrupted by context timeout", zap.String("sweeper", s.name))
		return ctx.Err()
	}
}
