package offer_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/wt-exchange/internal/catalog"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/ledger"
	"github.com/feral-file/wt-exchange/internal/mocks"
	"github.com/feral-file/wt-exchange/internal/offer"
	"github.com/feral-file/wt-exchange/internal/parcel"
	"github.com/feral-file/wt-exchange/internal/store"
	"github.com/feral-file/wt-exchange/internal/street"
)

type fixture struct {
	store   store.Store
	ledger  ledger.Ledger
	parcels parcel.Store
	offers  offer.Engine
	now     time.Time
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newFixture(t *testing.T, cfg offer.Config) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().DoAndReturn(func() time.Time { return f.now }).AnyTimes()

	cat, err := catalog.New([]domain.BuildingType{{Key: "shop", Name: "Shop", BaseIncome: 5}})
	require.NoError(t, err)

	f.store = store.NewMemoryStore()
	f.ledger = ledger.New(ledger.Config{StartingBalance: 0}, f.store)
	streets := street.NewRegistry(street.Config{}, f.store, f.ledger, clock)
	f.parcels = parcel.NewStore(f.store, cat, streets, f.ledger, clock)
	f.offers = offer.NewEngine(cfg, f.store, f.parcels, f.ledger, clock)

	// alice owns p1 and bob has money to spend
	ctx := context.Background()
	_, err = f.ledger.Credit(ctx, "alice", 100)
	require.NoError(t, err)
	_, err = f.ledger.Credit(ctx, "bob", 1000)
	require.NoError(t, err)
	_, err = f.parcels.Create(ctx, parcel.CreateInput{ID: "p1", Location: domain.LatLng{Lat: 1, Lng: 1}})
	require.NoError(t, err)
	_, err = f.parcels.Buy(ctx, "p1", "alice", "shop")
	require.NoError(t, err)

	return f
}

func defaultConfig() offer.Config {
	return offer.Config{TTL: time.Hour, MinAmount: 10, LockParcelOnPending: true}
}

func TestEngine_Propose(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(t *testing.T, f *fixture)
		parcelID    string
		from        string
		amount      int64
		expectedErr error
	}{
		{name: "missing proposer", parcelID: "p1", from: "", amount: 100, expectedErr: domain.ErrMissingIdentity},
		{name: "zero amount", parcelID: "p1", from: "bob", amount: 0, expectedErr: domain.ErrInvalidAmount},
		{name: "below minimum", parcelID: "p1", from: "bob", amount: 9, expectedErr: domain.ErrAmountBelowMinimum},
		{name: "parcel not found", parcelID: "nope", from: "bob", amount: 100, expectedErr: domain.ErrParcelNotFound},
		{name: "self offer", parcelID: "p1", from: "alice", amount: 100, expectedErr: domain.ErrSelfOffer},
		{
			name: "unowned parcel",
			setup: func(t *testing.T, f *fixture) {
				_, err := f.parcels.Create(ctx, parcel.CreateInput{ID: "p2", Location: domain.LatLng{}})
				require.NoError(t, err)
			},
			parcelID:    "p2",
			from:        "bob",
			amount:      100,
			expectedErr: domain.ErrParcelUnowned,
		},
		{
			name: "parcel has a pending offer",
			setup: func(t *testing.T, f *fixture) {
				_, err := f.offers.Propose(ctx, "p1", "carol", 50, "")
				require.NoError(t, err)
			},
			parcelID:    "p1",
			from:        "bob",
			amount:      100,
			expectedErr: domain.ErrPendingOffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, defaultConfig())
			if tt.setup != nil {
				tt.setup(t, f)
			}

			_, err := f.offers.Propose(ctx, tt.parcelID, tt.from, tt.amount, "")
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}

	t.Run("creates a pending offer to the current owner", func(t *testing.T) {
		f := newFixture(t, defaultConfig())

		o, err := f.offers.Propose(ctx, "p1", " bob ", 500, "  corner lot ")
		require.NoError(t, err)
		assert.NotEmpty(t, o.ID)
		assert.Equal(t, "bob", o.FromID)
		assert.Equal(t, "alice", o.ToID)
		assert.Equal(t, int64(500), o.Amount)
		assert.Equal(t, "corner lot", o.Note)
		assert.Equal(t, domain.OfferStatusPending, o.Status)
		assert.Equal(t, f.now, o.CreatedAt)
		assert.Equal(t, f.now.Add(time.Hour), o.ExpiresAt)
		require.Len(t, o.History, 1)

		// no escrow is taken
		assert.Equal(t, int64(1000), f.ledger.BalanceOf("bob"))

		snap, err := f.store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, snap.Offers, 1)
		assert.Equal(t, o.ID, snap.Offers[0].ID)
	})

	t.Run("pending lock can be disabled", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.LockParcelOnPending = false
		f := newFixture(t, cfg)

		_, err := f.offers.Propose(ctx, "p1", "bob", 100, "")
		require.NoError(t, err)
		_, err = f.offers.Propose(ctx, "p1", "carol", 100, "")
		require.NoError(t, err)
	})

	t.Run("a past-due pending offer does not lock the parcel", func(t *testing.T) {
		f := newFixture(t, defaultConfig())

		first, err := f.offers.Propose(ctx, "p1", "carol", 50, "")
		require.NoError(t, err)
		f.advance(2 * time.Hour)

		_, err = f.offers.Propose(ctx, "p1", "bob", 100, "")
		require.NoError(t, err)

		got, err := f.offers.Peek(first.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusExpired, got.Status)
	})
}

func TestEngine_AcceptSettlesTrade(t *testing.T) {
	ctx := context.Background()
	cfg := defaultConfig()
	cfg.FeePct = 2
	f := newFixture(t, cfg)

	o, err := f.offers.Propose(ctx, "p1", "bob", 500, "")
	require.NoError(t, err)
	f.advance(time.Minute)

	accepted, err := f.offers.Accept(ctx, o.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusAccepted, accepted.Status)
	require.NotNil(t, accepted.ResolvedAt)
	assert.Equal(t, f.now, *accepted.ResolvedAt)
	require.Len(t, accepted.History, 2)
	assert.Equal(t, int64(490), accepted.History[1].Net)

	assert.Equal(t, int64(500), f.ledger.BalanceOf("bob"))
	assert.Equal(t, int64(490), f.ledger.BalanceOf("alice"))

	p, err := f.parcels.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "bob", p.OwnerID())
	require.NotNil(t, p.LastTradeAt)

	snap, err := f.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusAccepted, snap.Offers[0].Status)
	assert.Equal(t, "bob", snap.Parcels[0].OwnerID())
	assert.Equal(t, int64(500), snap.Balances["bob"])

	// terminal states are final
	_, err = f.offers.Accept(ctx, o.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrOfferNotPending)
	_, err = f.offers.Cancel(ctx, o.ID, "bob")
	assert.ErrorIs(t, err, domain.ErrOfferNotPending)
}

func TestEngine_AcceptFailsClosed(t *testing.T) {
	ctx := context.Background()

	t.Run("only the counterparty can accept", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		o, err := f.offers.Propose(ctx, "p1", "bob", 500, "")
		require.NoError(t, err)

		_, err = f.offers.Accept(ctx, o.ID, "bob")
		assert.ErrorIs(t, err, domain.ErrNotCounterparty)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		got, err := f.offers.Peek(o.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusPending, got.Status)
	})

	t.Run("ownership changed after proposal", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		o, err := f.offers.Propose(ctx, "p1", "bob", 500, "")
		require.NoError(t, err)

		_, err = f.parcels.TransferOwnership(ctx, "p1", "alice", "carol", nil)
		require.NoError(t, err)

		rejected, err := f.offers.Accept(ctx, o.ID, "alice")
		assert.ErrorIs(t, err, domain.ErrOwnershipChanged)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, domain.OfferStatusRejected, rejected.Status)
		assert.Equal(t, domain.OfferReasonOwnershipChanged, rejected.Reason)

		assert.Equal(t, int64(1000), f.ledger.BalanceOf("bob"))
		assert.Equal(t, int64(0), f.ledger.BalanceOf("alice"))
		p, err := f.parcels.Get("p1")
		require.NoError(t, err)
		assert.Equal(t, "carol", p.OwnerID())
	})

	t.Run("proposer cannot pay", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		o, err := f.offers.Propose(ctx, "p1", "bob", 500, "")
		require.NoError(t, err)
		_, err = f.ledger.Debit(ctx, "bob", 600)
		require.NoError(t, err)

		rejected, err := f.offers.Accept(ctx, o.ID, "alice")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, domain.OfferStatusRejected, rejected.Status)
		assert.Equal(t, domain.OfferReasonInsufficientFunds, rejected.Reason)

		assert.Equal(t, int64(400), f.ledger.BalanceOf("bob"))
		assert.Equal(t, int64(0), f.ledger.BalanceOf("alice"))
		p, err := f.parcels.Get("p1")
		require.NoError(t, err)
		assert.Equal(t, "alice", p.OwnerID())
	})

	t.Run("parcel deleted", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		o, err := f.offers.Propose(ctx, "p1", "bob", 500, "")
		require.NoError(t, err)
		require.NoError(t, f.parcels.Delete(ctx, "p1"))

		rejected, err := f.offers.Accept(ctx, o.ID, "alice")
		assert.ErrorIs(t, err, domain.ErrParcelNotFound)
		assert.Equal(t, domain.OfferStatusRejected, rejected.Status)
		assert.Equal(t, domain.OfferReasonParcelMissing, rejected.Reason)
	})

	t.Run("unknown offer", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		_, err := f.offers.Accept(ctx, "nope", "alice")
		assert.ErrorIs(t, err, domain.ErrOfferNotFound)
	})
}

func TestEngine_LazyExpiry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultConfig())

	o, err := f.offers.Propose(ctx, "p1", "bob", 500, "")
	require.NoError(t, err)

	// exactly at the expiry the offer is still pending
	f.advance(time.Hour)
	got, err := f.offers.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusPending, got.Status)

	f.advance(time.Minute)
	assert.Len(t, f.offers.PastDue(), 1)

	got, err = f.offers.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusExpired, got.Status)
	assert.Equal(t, domain.OfferReasonTTLElapsed, got.Reason)
	assert.Empty(t, f.offers.PastDue())

	_, err = f.offers.Accept(ctx, o.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrOfferExpired)
	assert.ErrorIs(t, err, domain.ErrExpired)

	assert.Equal(t, int64(1000), f.ledger.BalanceOf("bob"))
	assert.Equal(t, int64(0), f.ledger.BalanceOf("alice"))
}

func TestEngine_ActionExpiresFirst(t *testing.T) {
	ctx := context.Background()

	actions := map[string]func(f *fixture, id string) (domain.Offer, error){
		"accept": func(f *fixture, id string) (domain.Offer, error) { return f.offers.Accept(ctx, id, "alice") },
		"reject": func(f *fixture, id string) (domain.Offer, error) { return f.offers.Reject(ctx, id, "alice") },
		"cancel": func(f *fixture, id string) (domain.Offer, error) { return f.offers.Cancel(ctx, id, "bob") },
		"wrong actor": func(f *fixture, id string) (domain.Offer, error) {
			return f.offers.Accept(ctx, id, "mallory")
		},
	}

	for name, action := range actions {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, defaultConfig())
			o, err := f.offers.Propose(ctx, "p1", "bob", 500, "")
			require.NoError(t, err)
			f.advance(61 * time.Minute)

			expired, err := action(f, o.ID)
			assert.ErrorIs(t, err, domain.ErrOfferExpired)
			assert.Equal(t, domain.OfferStatusExpired, expired.Status)

			snap, err := f.store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.OfferStatusExpired, snap.Offers[0].Status)
		})
	}
}

func TestEngine_RejectAndCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("reject", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		o, err := f.offers.Propose(ctx, "p1", "bob", 500, "")
		require.NoError(t, err)

		_, err = f.offers.Reject(ctx, o.ID, "bob")
		assert.ErrorIs(t, err, domain.ErrNotCounterparty)

		rejected, err := f.offers.Reject(ctx, o.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusRejected, rejected.Status)
		assert.Equal(t, domain.OfferReasonDeclined, rejected.Reason)
	})

	t.Run("cancel round trip leaves balances unchanged", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		before := f.ledger.Balances()

		o, err := f.offers.Propose(ctx, "p1", "bob", 500, "")
		require.NoError(t, err)

		_, err = f.offers.Cancel(ctx, o.ID, "alice")
		assert.ErrorIs(t, err, domain.ErrNotProposer)

		canceled, err := f.offers.Cancel(ctx, o.ID, "bob")
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusCanceled, canceled.Status)
		assert.Equal(t, before, f.ledger.Balances())

		_, err = f.offers.Accept(ctx, o.ID, "alice")
		assert.ErrorIs(t, err, domain.ErrOfferNotPending)

		f.advance(2 * time.Hour)
		got, err := f.offers.Get(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusCanceled, got.Status)
	})
}

func TestEngine_ExpireAndList(t *testing.T) {
	ctx := context.Background()
	cfg := defaultConfig()
	cfg.LockParcelOnPending = false
	f := newFixture(t, cfg)

	first, err := f.offers.Propose(ctx, "p1", "bob", 100, "")
	require.NoError(t, err)
	f.advance(30 * time.Minute)
	second, err := f.offers.Propose(ctx, "p1", "carol", 200, "")
	require.NoError(t, err)

	_, expired, err := f.offers.Expire(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, expired)

	list, err := f.offers.List(ctx, offer.Filter{Owner: "alice"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	list, err = f.offers.List(ctx, offer.Filter{Owner: "carol"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	// the first offer is now past due and listing expires it
	f.advance(31 * time.Minute)
	list, err = f.offers.List(ctx, offer.Filter{Status: domain.OfferStatusPending})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	list, err = f.offers.List(ctx, offer.Filter{Status: domain.OfferStatusExpired, ParcelID: "p1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)

	f.advance(time.Hour)
	got, expired, err := f.offers.Expire(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, expired)
	assert.Equal(t, domain.OfferStatusExpired, got.Status)

	_, _, err = f.offers.Expire(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
}
