package street_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/ledger"
	"github.com/feral-file/wt-exchange/internal/mocks"
	"github.com/feral-file/wt-exchange/internal/store"
	"github.com/feral-file/wt-exchange/internal/street"
)

func newRegistry(t *testing.T) (street.Registry, ledger.Ledger, store.Store, time.Time) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	now := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	s := store.NewMemoryStore()
	l := ledger.New(ledger.Config{StartingBalance: 0}, s)
	return street.NewRegistry(street.Config{}, s, l, clock), l, s, now
}

func TestRegistry_Create(t *testing.T) {
	ctx := context.Background()
	r, _, _, _ := newRegistry(t)

	s, err := r.Create(ctx, domain.Street{ID: "high-st", Path: []domain.LatLng{{Lat: 1, Lng: 1}}})
	require.NoError(t, err)
	assert.Equal(t, "high-st", s.Name)
	assert.Equal(t, domain.DEFAULT_STREET_PRICE, s.Price)
	assert.Equal(t, domain.DEFAULT_STREET_SLOTS, s.Slots)
	assert.False(t, s.IsClaimed())

	_, err = r.Create(ctx, domain.Street{ID: "high-st"})
	assert.ErrorIs(t, err, domain.ErrStreetExists)

	_, err = r.Create(ctx, domain.Street{ID: "bad", Path: []domain.LatLng{{Lat: 200}}})
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)

	_, err = r.Create(ctx, domain.Street{ID: "neg", Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	generated, err := r.Create(ctx, domain.Street{Name: "Nameless"})
	require.NoError(t, err)
	assert.NotEmpty(t, generated.ID)

	list := r.List()
	require.Len(t, list, 2)
	assert.True(t, list[0].ID < list[1].ID)
}

func TestRegistry_Claim(t *testing.T) {
	ctx := context.Background()

	t.Run("claims and commits slots with the debit", func(t *testing.T) {
		r, l, s, now := newRegistry(t)
		_, err := l.Credit(ctx, "alice", 1500)
		require.NoError(t, err)
		_, err = r.Create(ctx, domain.Street{ID: "s1", Price: 1000, Slots: 2})
		require.NoError(t, err)

		planned := []domain.Parcel{{ID: "slot-1", Level: 1}, {ID: "slot-2", Level: 1}}
		claimed, slots, err := r.Claim(ctx, "s1", "alice", func(st domain.Street, at time.Time) []domain.Parcel {
			assert.Equal(t, "alice", *st.Owner)
			assert.Equal(t, now, at)
			return planned
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", *claimed.Owner)
		require.NotNil(t, claimed.ClaimedAt)
		assert.Equal(t, now, *claimed.ClaimedAt)
		assert.Equal(t, planned, slots)
		assert.Equal(t, int64(500), l.BalanceOf("alice"))

		assert.True(t, r.IsLocked("s1", "bob"))
		assert.False(t, r.IsLocked("s1", "alice"))
		assert.False(t, r.IsLocked("unknown", "bob"))

		snap, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, snap.Parcels, 2)
		require.Len(t, snap.Streets, 1)
		assert.Equal(t, "alice", *snap.Streets[0].Owner)
	})

	t.Run("claimed street is immutable", func(t *testing.T) {
		r, l, _, _ := newRegistry(t)
		_, err := l.Credit(ctx, "alice", 5000)
		require.NoError(t, err)
		_, err = l.Credit(ctx, "bob", 5000)
		require.NoError(t, err)
		_, err = r.Create(ctx, domain.Street{ID: "s1"})
		require.NoError(t, err)

		_, _, err = r.Claim(ctx, "s1", "alice", nil)
		require.NoError(t, err)

		_, _, err = r.Claim(ctx, "s1", "bob", nil)
		assert.ErrorIs(t, err, domain.ErrStreetClaimed)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, int64(5000), l.BalanceOf("bob"))

		got, err := r.Get("s1")
		require.NoError(t, err)
		assert.Equal(t, "alice", *got.Owner)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		r, l, s, _ := newRegistry(t)
		_, err := l.Credit(ctx, "alice", 999)
		require.NoError(t, err)
		_, err = r.Create(ctx, domain.Street{ID: "s1", Price: 1000})
		require.NoError(t, err)

		_, _, err = r.Claim(ctx, "s1", "alice", func(domain.Street, time.Time) []domain.Parcel {
			return []domain.Parcel{{ID: "slot-1", Level: 1}}
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		got, err := r.Get("s1")
		require.NoError(t, err)
		assert.False(t, got.IsClaimed())

		snap, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap.Parcels)
	})

	t.Run("not found and missing buyer", func(t *testing.T) {
		r, _, _, _ := newRegistry(t)

		_, _, err := r.Claim(ctx, "nope", "alice", nil)
		assert.ErrorIs(t, err, domain.ErrStreetNotFound)

		_, _, err = r.Claim(ctx, "nope", "", nil)
		assert.ErrorIs(t, err, domain.ErrMissingIdentity)
	})
}

func TestRegistry_ClaimCommitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		Commit(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	l := ledger.New(ledger.Config{StartingBalance: 5000}, mockStore)
	r := street.NewRegistry(street.Config{}, mockStore, l, clock)
	r.Restore([]domain.Street{{ID: "s1", Price: 100, Slots: 1}})

	_, _, err := r.Claim(context.Background(), "s1", "alice", nil)
	require.Error(t, err)

	got, err := r.Get("s1")
	require.NoError(t, err)
	assert.False(t, got.IsClaimed())
	assert.Equal(t, int64(5000), l.BalanceOf("alice"))
}
