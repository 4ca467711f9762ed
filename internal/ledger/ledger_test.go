package ledger_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/ledger"
	"github.com/feral-file/wt-exchange/internal/mocks"
	"github.com/feral-file/wt-exchange/internal/store"
	"github.com/feral-file/wt-exchange/internal/types"
)

func newTestLedger(t *testing.T, starting int64) (ledger.Ledger, store.Store) {
	t.Helper()
	s := store.NewMemoryStore()
	return ledger.New(ledger.Config{StartingBalance: starting}, s), s
}

func TestLedger_BalanceOf(t *testing.T) {
	l, _ := newTestLedger(t, 5000)

	assert.Equal(t, int64(5000), l.BalanceOf("unknown"))
	assert.Empty(t, l.Balances())
}

func TestLedger_CreditDebit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		run         func(l ledger.Ledger) (int64, error)
		expected    int64
		expectedErr error
		balance     int64
	}{
		{
			name:     "credit",
			run:      func(l ledger.Ledger) (int64, error) { return l.Credit(ctx, "alice", 250) },
			expected: 1250,
			balance:  1250,
		},
		{
			name:     "debit within balance",
			run:      func(l ledger.Ledger) (int64, error) { return l.Debit(ctx, "alice", 400) },
			expected: 600,
			balance:  600,
		},
		{
			name:     "debit of the whole balance",
			run:      func(l ledger.Ledger) (int64, error) { return l.Debit(ctx, "alice", 1000) },
			expected: 0,
			balance:  0,
		},
		{
			name:        "debit beyond balance fails closed",
			run:         func(l ledger.Ledger) (int64, error) { return l.Debit(ctx, "alice", 1001) },
			expectedErr: domain.ErrInsufficientFunds,
			balance:     1000,
		},
		{
			name:        "zero credit",
			run:         func(l ledger.Ledger) (int64, error) { return l.Credit(ctx, "alice", 0) },
			expectedErr: domain.ErrInvalidAmount,
			balance:     1000,
		},
		{
			name:        "negative debit",
			run:         func(l ledger.Ledger) (int64, error) { return l.Debit(ctx, "alice", -5) },
			expectedErr: domain.ErrInvalidAmount,
			balance:     1000,
		},
		{
			name:        "missing owner",
			run:         func(l ledger.Ledger) (int64, error) { return l.Credit(ctx, "", 10) },
			expectedErr: domain.ErrMissingIdentity,
			balance:     1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLedger(t, 1000)

			got, err := tt.run(l)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.Equal(t, tt.balance, l.BalanceOf("alice"))
		})
	}
}

func TestLedger_Adjust(t *testing.T) {
	ctx := context.Background()
	l, s := newTestLedger(t, 100)

	balance, err := l.Adjust(ctx, "alice", -250)
	require.NoError(t, err)
	assert.Equal(t, int64(-150), balance)
	assert.Equal(t, int64(-150), l.BalanceOf("alice"))

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(-150), snap.Balances["alice"])

	// a negative balance still blocks debits
	_, err = l.Debit(ctx, "alice", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestLedger_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("moves funds and commits extra writes together", func(t *testing.T) {
		l, s := newTestLedger(t, 1000)
		parcel := domain.Parcel{ID: "p1", Level: 1, Owner: types.StringPtr("bob")}

		next, err := l.Post(ctx,
			[]ledger.Entry{ledger.Debit("bob", 300), ledger.Credit("alice", 300)},
			store.ChangeSet{Parcels: []domain.Parcel{parcel}},
		)
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"bob": 700, "alice": 1300}, next)

		snap, err := s.Load(ctx)
		require.NoError(t, err)
		require.Len(t, snap.Parcels, 1)
		assert.Equal(t, int64(700), snap.Balances["bob"])
		assert.Equal(t, int64(1300), snap.Balances["alice"])
	})

	t.Run("insufficient funds writes nothing", func(t *testing.T) {
		l, s := newTestLedger(t, 100)

		_, err := l.Post(ctx,
			[]ledger.Entry{ledger.Credit("alice", 50), ledger.Debit("bob", 200)},
			store.ChangeSet{Parcels: []domain.Parcel{{ID: "p1", Level: 1}}},
		)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, int64(100), l.BalanceOf("alice"))
		assert.Equal(t, int64(100), l.BalanceOf("bob"))

		snap, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap.Parcels)
		assert.Empty(t, snap.Balances)
	})

	t.Run("entries on one owner accumulate", func(t *testing.T) {
		l, _ := newTestLedger(t, 100)

		_, err := l.Post(ctx, []ledger.Entry{ledger.Debit("bob", 60), ledger.Debit("bob", 60)}, store.ChangeSet{})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		next, err := l.Post(ctx, []ledger.Entry{ledger.Credit("bob", 30), ledger.Debit("bob", 120)}, store.ChangeSet{})
		require.NoError(t, err)
		assert.Equal(t, int64(10), next["bob"])
	})
}

func TestLedger_CommitFailureLeavesBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		Commit(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	l := ledger.New(ledger.Config{StartingBalance: 500}, mockStore)

	_, err := l.Debit(context.Background(), "alice", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit posting")
	assert.Equal(t, int64(500), l.BalanceOf("alice"))
}

func TestLedger_ApplyTick(t *testing.T) {
	ctx := context.Background()
	l, s := newTestLedger(t, 0)

	_, err := l.Credit(ctx, "bob", 40)
	require.NoError(t, err)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	summary, err := l.ApplyTick(ctx, map[string]int64{"alice": 10, "carol": 0}, at, 5*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, at, summary.TickedAt)
	assert.Equal(t, int64(300), summary.IntervalSec)
	assert.Equal(t, map[string]int64{"alice": 10}, summary.Income)
	assert.Equal(t, map[string]int64{"alice": 10, "bob": 40}, summary.Balances)
	assert.Equal(t, int64(10), l.BalanceOf("alice"))

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap.LastTick)
	assert.Equal(t, summary.Balances, snap.LastTick.Balances)

	// running again accrues again
	summary, err = l.ApplyTick(ctx, map[string]int64{"alice": 10}, at.Add(time.Minute), 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(20), summary.Balances["alice"])
}

func TestLedger_RejectsOverflow(t *testing.T) {
	ctx := context.Background()
	l, s := newTestLedger(t, 0)
	l.Restore(map[string]int64{"rich": math.MaxInt64 - 5, "poor": math.MinInt64 + 5})

	_, err := l.Credit(ctx, "rich", 6)
	assert.ErrorIs(t, err, domain.ErrBalanceOverflow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = l.Post(ctx, []ledger.Entry{ledger.Debit("alice", 0), ledger.Credit("rich", 3), ledger.Credit("rich", 3)}, store.ChangeSet{})
	assert.ErrorIs(t, err, domain.ErrBalanceOverflow)

	_, err = l.Adjust(ctx, "rich", math.MaxInt64)
	assert.ErrorIs(t, err, domain.ErrBalanceOverflow)
	_, err = l.Adjust(ctx, "poor", -6)
	assert.ErrorIs(t, err, domain.ErrBalanceOverflow)

	_, err = l.ApplyTick(ctx, map[string]int64{"rich": 10}, time.Now(), time.Minute)
	assert.ErrorIs(t, err, domain.ErrBalanceOverflow)

	assert.Equal(t, int64(math.MaxInt64-5), l.BalanceOf("rich"))
	assert.Equal(t, int64(math.MinInt64+5), l.BalanceOf("poor"))
	snap, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Balances)
	assert.Nil(t, snap.LastTick)

	balance, err := l.Credit(ctx, "rich", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), balance)
}

func TestLedger_Restore(t *testing.T) {
	l, _ := newTestLedger(t, 5000)
	l.Restore(map[string]int64{"alice": 42})

	assert.Equal(t, int64(42), l.BalanceOf("alice"))
	assert.Equal(t, int64(5000), l.BalanceOf("bob"))
}

func TestLedger_ConcurrentDebits(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t, 1000)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Debit(ctx, "alice", 100); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, int64(0), l.BalanceOf("alice"))
}

func TestLedger_PropertyConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		starting := rapid.Int64Range(0, 1000).Draw(t, "starting")
		l := ledger.New(ledger.Config{StartingBalance: starting}, store.NewMemoryStore())
		owners := []string{"alice", "bob", "carol"}

		total := starting * int64(len(owners))
		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			from := rapid.SampledFrom(owners).Draw(t, "from")
			to := rapid.SampledFrom(owners).Draw(t, "to")
			amount := rapid.Int64Range(1, 800).Draw(t, "amount")

			before := l.BalanceOf(from)
			_, err := l.Post(ctx, []ledger.Entry{ledger.Debit(from, amount), ledger.Credit(to, amount)}, store.ChangeSet{})
			if before < amount {
				if !errors.Is(err, domain.ErrInsufficientFunds) {
					t.Fatalf("expected insufficient funds, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var sum int64
			for _, o := range owners {
				b := l.BalanceOf(o)
				if b < 0 {
					t.Fatalf("balance of %s went negative: %d", o, b)
				}
				sum += b
			}
			if sum != total {
				t.Fatalf("transfers changed the money supply: %d != %d", sum, total)
			}
		}
	})
}
