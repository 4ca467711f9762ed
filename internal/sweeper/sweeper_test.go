package sweeper_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/mocks"
	"github.com/feral-file/wt-exchange/internal/sweeper"
)

func runAsync(s sweeper.Sweeper, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()
	return done
}

func TestAutoTickSweeper(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	var calls atomic.Int32
	gw.EXPECT().TickIfDue(gomock.Any()).DoAndReturn(func(ctx context.Context) (domain.TickSummary, bool, error) {
		n := calls.Add(1)
		switch n {
		case 1:
			return domain.TickSummary{TickedAt: time.Now(), Income: map[string]int64{"alice": 10}}, true, nil
		case 2:
			return domain.TickSummary{}, false, errors.New("failed to commit")
		default:
			return domain.TickSummary{}, false, nil
		}
	}).MinTimes(3)

	s := sweeper.NewAutoTickSweeper(sweeper.AutoTickSweeperConfig{CheckInterval: 5 * time.Millisecond}, gw)
	assert.Equal(t, "auto-tick-sweeper", s.Name())

	done := runAsync(s, context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, <-done)
}

func TestOfferGCSweeper(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	var calls atomic.Int32
	gw.EXPECT().ExpireDue(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Offer, error) {
		if calls.Add(1) == 1 {
			return []domain.Offer{{ID: "o1", Status: domain.OfferStatusExpired}}, nil
		}
		return nil, nil
	}).MinTimes(2)

	s := sweeper.NewOfferGCSweeper(sweeper.OfferGCSweeperConfig{Interval: 5 * time.Millisecond}, gw)
	assert.Equal(t, "offer-gc-sweeper", s.Name())

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(s, ctx)
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancellation")
	}
}

func TestSweeperRejectsSecondStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	var calls atomic.Int32
	gw.EXPECT().ExpireDue(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Offer, error) {
		calls.Add(1)
		return nil, nil
	}).AnyTimes()

	s := sweeper.NewOfferGCSweeper(sweeper.OfferGCSweeperConfig{Interval: time.Hour}, gw)
	done := runAsync(s, context.Background())
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	err := s.Start(context.Background())
	assert.ErrorContains(t, err, "already running")

	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, <-done)

	// stopping twice is a no-op
	assert.NoError(t, s.Stop(context.Background()))
}

func TestSweeperRequiresInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	s := sweeper.NewAutoTickSweeper(sweeper.AutoTickSweeperConfig{}, gw)
	assert.Error(t, s.Start(context.Background()))
}

func TestStopBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	s := sweeper.NewOfferGCSweeper(sweeper.OfferGCSweeperConfig{Interval: time.Minute}, gw)
	assert.NoError(t, s.Stop(context.Background()))
}
