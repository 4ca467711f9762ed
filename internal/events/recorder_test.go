package events_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/events"
	"github.com/feral-file/wt-exchange/internal/mocks"
	"github.com/feral-file/wt-exchange/internal/store"
)

var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func testConfig() events.Config {
	return events.Config{
		WorkerPoolSize:       2,
		QueueSize:            10,
		RetryInitialInterval: time.Millisecond,
		RetryMaxElapsed:      200 * time.Millisecond,
	}
}

func TestRecorder_Record(t *testing.T) {
	t.Run("fills defaults, stores and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().Now().Return(testNow)
		publisher := mocks.NewMockPublisher(ctrl)

		st := store.NewMemoryStore()
		rec := events.NewRecorder(testConfig(), st, publisher, clock)

		published := make(chan string, 1)
		publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.Event) error {
			published <- e.ID
			return nil
		})
		publisher.EXPECT().Close()

		event, err := rec.Record(context.Background(), domain.Event{
			Type:     domain.EventTypeParcelBought,
			Actor:    "alice",
			EntityID: "p1",
			Amount:   100,
		})
		require.NoError(t, err)
		rec.Close()

		assert.NotEmpty(t, event.ID)
		assert.Equal(t, "Parcel Bought", event.Title)
		assert.Equal(t, testNow, event.At)
		assert.Equal(t, event.ID, <-published)

		feed, total, err := rec.List(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, feed, 1)
		assert.Equal(t, event.ID, feed[0].ID)
	})

	t.Run("publish is retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		publisher := mocks.NewMockPublisher(ctrl)
		rec := events.NewRecorder(testConfig(), store.NewMemoryStore(), publisher, mocks.NewMockClock(ctrl))

		gomock.InOrder(
			publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("no responders")),
			publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil),
		)
		publisher.EXPECT().Close()

		_, err := rec.Record(context.Background(), domain.Event{ID: "e1", Type: domain.EventTypeTick, At: testNow})
		require.NoError(t, err)
		rec.Close()
	})

	t.Run("publish failure does not fail the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		publisher := mocks.NewMockPublisher(ctrl)
		rec := events.NewRecorder(testConfig(), store.NewMemoryStore(), publisher, mocks.NewMockClock(ctrl))

		publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("down")).MinTimes(1)
		publisher.EXPECT().Close()

		event, err := rec.Record(context.Background(), domain.Event{ID: "e1", Type: domain.EventTypeTick, At: testNow})
		require.NoError(t, err)
		assert.Equal(t, "e1", event.ID)
		rec.Close()
	})

	t.Run("store failure is returned and nothing is published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		st.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), domain.MAX_FEED_EVENTS).Return(errors.New("disk full"))
		publisher := mocks.NewMockPublisher(ctrl)
		publisher.EXPECT().Close()

		rec := events.NewRecorder(testConfig(), st, publisher, mocks.NewMockClock(ctrl))
		_, err := rec.Record(context.Background(), domain.Event{ID: "e1", Type: domain.EventTypeTick, At: testNow})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to append event")
		rec.Close()
	})
}

func TestRecorder_FeedIsBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockPublisher(ctrl)
	publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	publisher.EXPECT().Close()

	rec := events.NewRecorder(testConfig(), store.NewMemoryStore(), publisher, mocks.NewMockClock(ctrl))

	for i := range domain.MAX_FEED_EVENTS + 20 {
		_, err := rec.Record(context.Background(), domain.Event{
			ID:   fmt.Sprintf("e%03d", i),
			Type: domain.EventTypeTick,
			At:   testNow.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
	rec.Close()

	feed, total, err := rec.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.MAX_FEED_EVENTS, total)
	require.Len(t, feed, events.DEFAULT_PAGE_LIMIT)
	assert.Equal(t, "e119", feed[0].ID)

	feed, _, err = rec.List(context.Background(), 90, 500)
	require.NoError(t, err)
	require.Len(t, feed, 10)
	assert.Equal(t, "e020", feed[9].ID)
}
