package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/wt-exchange/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func testNow() time.Time {
	// Postgres keeps microseconds
	return time.Now().UTC().Truncate(time.Microsecond)
}

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func buildTestStreet(id string) domain.Street {
	return domain.Street{
		ID:    id,
		Name:  "Street " + id,
		Path:  []domain.LatLng{{Lat: 40.0, Lng: -73.0}, {Lat: 40.01, Lng: -73.01}},
		Price: domain.DEFAULT_STREET_PRICE,
		Slots: 3,
	}
}

func buildTestParcel(id string, createdAt time.Time) domain.Parcel {
	return domain.Parcel{
		ID:        id,
		Location:  domain.LatLng{Lat: 40.7128, Lng: -74.006},
		Level:     domain.MIN_PARCEL_LEVEL,
		Color:     domain.DEFAULT_PARCEL_COLOR,
		CreatedAt: createdAt,
	}
}

func buildTestOffer(id, parcelID string, createdAt time.Time) domain.Offer {
	return domain.Offer{
		ID:        id,
		ParcelID:  parcelID,
		FromID:    "bob",
		ToID:      "alice",
		Amount:    500,
		Status:    domain.OfferStatusPending,
		Note:      "nice corner",
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(domain.DEFAULT_OFFER_TTL),
		History: []domain.OfferHistoryEntry{
			{At: createdAt, Action: domain.OfferStatusPending},
		},
	}
}

func buildTestEvent(id string, at time.Time) domain.Event {
	return domain.Event{
		ID:       id,
		Type:     domain.EventTypeParcelBought,
		Note:     "bought " + id,
		Actor:    "alice",
		EntityID: "p-" + id,
		Amount:   100,
		At:       at,
	}
}

func assertSameTime(t *testing.T, expected, actual time.Time) {
	t.Helper()
	assert.True(t, expected.Equal(actual), "expected %s, got %s", expected, actual)
}

func findParcel(snap *Snapshot, id string) (domain.Parcel, bool) {
	for _, p := range snap.Parcels {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Parcel{}, false
}

func findOffer(snap *Snapshot, id string) (domain.Offer, bool) {
	for _, o := range snap.Offers {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Offer{}, false
}

// =============================================================================
// Test: Load
// =============================================================================

func testLoadEmpty(t *testing.T, store Store) {
	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Parcels)
	assert.Empty(t, snap.Streets)
	assert.Empty(t, snap.Offers)
	assert.Empty(t, snap.Balances)
	assert.Nil(t, snap.LastTick)
	assert.Empty(t, snap.Settings)
}

// =============================================================================
// Test: Commit
// =============================================================================

func testCommitParcels(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()

	t.Run("insert and load", func(t *testing.T) {
		p := buildTestParcel("parcel-1", now)
		require.NoError(t, store.Commit(ctx, ChangeSet{Parcels: []domain.Parcel{p}}))

		snap, err := store.Load(ctx)
		require.NoError(t, err)
		got, ok := findParcel(snap, "parcel-1")
		require.True(t, ok)
		assert.Equal(t, p.Location, got.Location)
		assert.Equal(t, p.Level, got.Level)
		assert.Equal(t, p.Color, got.Color)
		assert.Nil(t, got.Owner)
		assert.Nil(t, got.BuildingType)
		assert.Nil(t, got.LastTradeAt)
		assertSameTime(t, now, got.CreatedAt)
	})

	t.Run("update ownership", func(t *testing.T) {
		p := buildTestParcel("parcel-1", now)
		p.Owner = stringPtr("alice")
		p.BuildingType = stringPtr("house")
		p.Level = 3
		p.LastTradeAt = timePtr(now.Add(time.Minute))
		require.NoError(t, store.Commit(ctx, ChangeSet{Parcels: []domain.Parcel{p}}))

		snap, err := store.Load(ctx)
		require.NoError(t, err)
		got, ok := findParcel(snap, "parcel-1")
		require.True(t, ok)
		require.NotNil(t, got.Owner)
		assert.Equal(t, "alice", *got.Owner)
		require.NotNil(t, got.BuildingType)
		assert.Equal(t, "house", *got.BuildingType)
		assert.Equal(t, 3, got.Level)
		require.NotNil(t, got.LastTradeAt)
		assertSameTime(t, now.Add(time.Minute), *got.LastTradeAt)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Commit(ctx, ChangeSet{DeletedParcels: []string{"parcel-1"}}))

		snap, err := store.Load(ctx)
		require.NoError(t, err)
		_, ok := findParcel(snap, "parcel-1")
		assert.False(t, ok)
	})

	t.Run("parcels load in creation order", func(t *testing.T) {
		require.NoError(t, store.Commit(ctx, ChangeSet{Parcels: []domain.Parcel{
			buildTestParcel("parcel-b", now.Add(2*time.Second)),
			buildTestParcel("parcel-a", now.Add(time.Second)),
		}}))

		snap, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, snap.Parcels, 2)
		assert.Equal(t, "parcel-a", snap.Parcels[0].ID)
		assert.Equal(t, "parcel-b", snap.Parcels[1].ID)
	})
}

func testCommitStreets(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()

	s := buildTestStreet("street-1")
	require.NoError(t, store.Commit(ctx, ChangeSet{Streets: []domain.Street{s}}))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Streets, 1)
	assert.Equal(t, s.Path, snap.Streets[0].Path)
	assert.Equal(t, s.Name, snap.Streets[0].Name)
	assert.False(t, snap.Streets[0].IsClaimed())

	s.Owner = stringPtr("alice")
	s.ClaimedAt = timePtr(now)
	require.NoError(t, store.Commit(ctx, ChangeSet{Streets: []domain.Street{s}}))

	snap, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Streets, 1)
	require.True(t, snap.Streets[0].IsClaimed())
	assert.Equal(t, "alice", *snap.Streets[0].Owner)
	require.NotNil(t, snap.Streets[0].ClaimedAt)
	assertSameTime(t, now, *snap.Streets[0].ClaimedAt)
}

func testCommitOffers(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()

	o := buildTestOffer("offer-1", "parcel-1", now)
	require.NoError(t, store.Commit(ctx, ChangeSet{Offers: []domain.Offer{o}}))

	resolved := o.Resolve(domain.OfferStatusRejected, domain.OfferReasonDeclined, now.Add(time.Minute), 0)
	require.NoError(t, store.Commit(ctx, ChangeSet{Offers: []domain.Offer{resolved}}))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	got, ok := findOffer(snap, "offer-1")
	require.True(t, ok)
	assert.Equal(t, domain.OfferStatusRejected, got.Status)
	assert.Equal(t, domain.OfferReasonDeclined, got.Reason)
	assert.Equal(t, o.Amount, got.Amount)
	assert.Equal(t, o.Note, got.Note)
	assertSameTime(t, o.ExpiresAt, got.ExpiresAt)
	require.NotNil(t, got.ResolvedAt)
	assertSameTime(t, now.Add(time.Minute), *got.ResolvedAt)
	require.Len(t, got.History, 2)
	assert.Equal(t, domain.OfferStatusPending, got.History[0].Action)
	assert.Equal(t, domain.OfferStatusRejected, got.History[1].Action)
	assert.Equal(t, domain.OfferReasonDeclined, got.History[1].Reason)
}

func testCommitBalancesAndTick(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()

	require.NoError(t, store.Commit(ctx, ChangeSet{Balances: map[string]int64{"alice": 100, "bob": 50}}))

	tick := &domain.TickSummary{
		TickedAt:    now,
		Income:      map[string]int64{"alice": 10},
		Balances:    map[string]int64{"alice": 110, "bob": 50},
		IntervalSec: 300,
	}
	require.NoError(t, store.Commit(ctx, ChangeSet{Balances: map[string]int64{"alice": 110}, Tick: tick}))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"alice": 110, "bob": 50}, snap.Balances)
	require.NotNil(t, snap.LastTick)
	assertSameTime(t, now, snap.LastTick.TickedAt)
	assert.Equal(t, tick.Income, snap.LastTick.Income)
	assert.Equal(t, tick.Balances, snap.LastTick.Balances)
	assert.Equal(t, int64(300), snap.LastTick.IntervalSec)
}

func testCommitEmpty(t *testing.T, store Store) {
	require.NoError(t, store.Commit(context.Background(), ChangeSet{}))
}

// =============================================================================
// Test: Event feed
// =============================================================================

func testEventFeed(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()

	t.Run("newest first with paging", func(t *testing.T) {
		for i := range 5 {
			require.NoError(t, store.AppendEvent(ctx, buildTestEvent(fmt.Sprintf("evt-%d", i), now.Add(time.Duration(i)*time.Second)), 100))
		}

		events, total, err := store.ListEvents(ctx, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, events, 2)
		assert.Equal(t, "evt-4", events[0].ID)
		assert.Equal(t, "evt-3", events[1].ID)
		assert.Equal(t, "Parcel Bought", events[0].Title)

		events, total, err = store.ListEvents(ctx, 4, 10)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, events, 1)
		assert.Equal(t, "evt-0", events[0].ID)
	})

	t.Run("duplicate ids are ignored", func(t *testing.T) {
		require.NoError(t, store.AppendEvent(ctx, buildTestEvent("evt-4", now), 100))

		_, total, err := store.ListEvents(ctx, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
	})

	t.Run("feed is trimmed to keep", func(t *testing.T) {
		require.NoError(t, store.AppendEvent(ctx, buildTestEvent("evt-5", now.Add(10*time.Second)), 3))

		events, total, err := store.ListEvents(ctx, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, events, 3)
		assert.Equal(t, "evt-5", events[0].ID)
		assert.Equal(t, "evt-4", events[1].ID)
		assert.Equal(t, "evt-3", events[2].ID)
	})

	t.Run("offset past end", func(t *testing.T) {
		events, total, err := store.ListEvents(ctx, 50, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, events)
	})
}

func testCommitSettings(t *testing.T, store Store) {
	ctx := context.Background()
	now := testNow()

	version := func(n int) *domain.SettingsVersion {
		return &domain.SettingsVersion{
			Version: n,
			Settings: domain.Settings{
				SeasonStart: now,
				SeasonEnd:   now.Add(domain.DEFAULT_SEASON_LENGTH),
				AutoTickMin: n,
			},
			CreatedAt: now,
			Signature: fmt.Sprintf("sha256=%d", n),
		}
	}

	// written out of order to check that versions load sorted
	for _, n := range []int{2, 10, 1} {
		require.NoError(t, store.Commit(ctx, ChangeSet{Settings: version(n)}))
	}
	restored := version(3)
	restored.RestoredFrom = func(v int) *int { return &v }(1)
	require.NoError(t, store.Commit(ctx, ChangeSet{
		Settings: restored,
		Tick:     &domain.TickSummary{TickedAt: now, IntervalSec: 180},
	}))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Settings, 4)
	for i, n := range []int{1, 2, 3, 10} {
		assert.Equal(t, n, snap.Settings[i].Version)
		assert.Equal(t, n, snap.Settings[i].Settings.AutoTickMin)
	}
	assertSameTime(t, now, snap.Settings[0].Settings.SeasonStart)
	assert.Equal(t, "sha256=10", snap.Settings[3].Signature)
	require.NotNil(t, snap.Settings[2].RestoredFrom)
	assert.Equal(t, 1, *snap.Settings[2].RestoredFrom)

	// the tick shares key_value_store with the settings and stays separate
	require.NotNil(t, snap.LastTick)
	assert.Equal(t, int64(180), snap.LastTick.IntervalSec)
}

// =============================================================================
// Test Runner
// =============================================================================

// RunStoreTests runs every store test against the implementation returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"LoadEmpty", testLoadEmpty},
		{"CommitParcels", testCommitParcels},
		{"CommitStreets", testCommitStreets},
		{"CommitOffers", testCommitOffers},
		{"CommitBalancesAndTick", testCommitBalancesAndTick},
		{"CommitEmpty", testCommitEmpty},
		{"CommitSettings", testCommitSettings},
		{"EventFeed", testEventFeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

func TestChangeSet_Merge(t *testing.T) {
	tick := &domain.TickSummary{IntervalSec: 60}
	a := ChangeSet{
		Parcels:  []domain.Parcel{{ID: "p1"}},
		Balances: map[string]int64{"alice": 1, "bob": 2},
	}
	b := ChangeSet{
		Offers:   []domain.Offer{{ID: "o1"}},
		Balances: map[string]int64{"bob": 5},
		Tick:     tick,
	}

	merged := a.Merge(b)
	assert.Len(t, merged.Parcels, 1)
	assert.Len(t, merged.Offers, 1)
	assert.Equal(t, map[string]int64{"alice": 1, "bob": 5}, merged.Balances)
	assert.Same(t, tick, merged.Tick)
	assert.False(t, merged.Empty())

	// inputs are left untouched
	assert.Equal(t, map[string]int64{"alice": 1, "bob": 2}, a.Balances)
	assert.True(t, ChangeSet{}.Merge(ChangeSet{}).Empty())

	settings := &domain.SettingsVersion{Version: 1}
	assert.Same(t, settings, ChangeSet{}.Merge(ChangeSet{Settings: settings}).Settings)
	assert.False(t, ChangeSet{Settings: settings}.Empty())
}

func TestSettingsKey(t *testing.T) {
	assert.Equal(t, "settings:version:0000000007", SettingsKey(7))
	assert.Less(t, SettingsKey(9), SettingsKey(10))
}
