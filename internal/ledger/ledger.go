package ledger

import (
	"context"
	"fmt"
	"maps"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/store"
)

// Config holds ledger policy
type Config struct {
	// StartingBalance is the balance of an owner the ledger has never seen
	StartingBalance int64
}

// Entry is one balance movement of a posting. Negative amounts are debits.
type Entry struct {
	Owner  string
	Amount int64
}

// Debit returns an entry taking amount from owner
func Debit(owner string, amount int64) Entry {
	return Entry{Owner: owner, Amount: -amount}
}

// Credit returns an entry giving amount to owner
func Credit(owner string, amount int64) Entry {
	return Entry{Owner: owner, Amount: amount}
}

// Ledger maps owners to balances. Every change is committed to the store
// before it becomes visible to readers.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// BalanceOf returns the balance of owner
	BalanceOf(owner string) int64

	// Balances returns a copy of every known balance
	Balances() map[string]int64

	// Credit adds a positive amount to owner
	Credit(ctx context.Context, owner string, amount int64) (int64, error)

	// Debit removes a positive amount from owner and fails closed when the balance is short
	Debit(ctx context.Context, owner string, amount int64) (int64, error)

	// Adjust applies an administrative delta that may drive the balance negative
	Adjust(ctx context.Context, owner string, delta int64) (int64, error)

	// Post applies entries atomically together with the writes of cs.
	// A debit that would drive a balance negative fails the whole posting with
	// domain.ErrInsufficientFunds and nothing is written.
	Post(ctx context.Context, entries []Entry, cs store.ChangeSet) (map[string]int64, error)

	// ApplyTick credits income per owner and records the tick summary
	ApplyTick(ctx context.Context, income map[string]int64, at time.Time, interval time.Duration) (domain.TickSummary, error)

	// Restore replaces every balance with the loaded state
	Restore(balances map[string]int64)
}

type ledger struct {
	cfg   Config
	store store.Store

	// writeMu serializes postings across the store commit
	writeMu sync.Mutex
	// mu guards balances
	mu       sync.RWMutex
	balances map[string]int64
}

// New creates a ledger writing through s
func New(cfg Config, s store.Store) Ledger {
	return &ledger{
		cfg:      cfg,
		store:    s,
		balances: make(map[string]int64),
	}
}

func (l *ledger) BalanceOf(owner string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balanceLocked(owner)
}

func (l *ledger) balanceLocked(owner string) int64 {
	if b, ok := l.balances[owner]; ok {
		return b
	}
	return l.cfg.StartingBalance
}

func (l *ledger) Balances() map[string]int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return maps.Clone(l.balances)
}

func (l *ledger) Credit(ctx context.Context, owner string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	next, err := l.Post(ctx, []Entry{Credit(owner, amount)}, store.ChangeSet{})
	if err != nil {
		return 0, err
	}
	return next[owner], nil
}

func (l *ledger) Debit(ctx context.Context, owner string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	next, err := l.Post(ctx, []Entry{Debit(owner, amount)}, store.ChangeSet{})
	if err != nil {
		return 0, err
	}
	return next[owner], nil
}

func (l *ledger) Adjust(ctx context.Context, owner string, delta int64) (int64, error) {
	if owner == "" {
		return 0, domain.ErrMissingIdentity
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	l.mu.RLock()
	balance, err := add(l.balanceLocked(owner), delta)
	l.mu.RUnlock()
	if err != nil {
		return 0, err
	}

	next := map[string]int64{owner: balance}
	if err := l.store.Commit(ctx, store.ChangeSet{Balances: next}); err != nil {
		return 0, fmt.Errorf("failed to commit balance adjustment: %w", err)
	}
	l.apply(next)

	logger.InfoCtx(ctx, "Adjusted balance",
		zap.String("owner", owner),
		zap.Int64("delta", delta),
		zap.Int64("balance", balance),
	)

	return balance, nil
}

func (l *ledger) Post(ctx context.Context, entries []Entry, cs store.ChangeSet) (map[string]int64, error) {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	next, err := l.plan(entries)
	if err != nil {
		return nil, err
	}

	if err := l.store.Commit(ctx, cs.Merge(store.ChangeSet{Balances: next})); err != nil {
		return nil, fmt.Errorf("failed to commit posting: %w", err)
	}
	l.apply(next)

	return maps.Clone(next), nil
}

// plan computes the balances after entries without touching state.
// Callers hold writeMu so the balances read here cannot change underneath.
func (l *ledger) plan(entries []Entry) (map[string]int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	next := make(map[string]int64, len(entries))
	for _, e := range entries {
		if e.Owner == "" {
			return nil, domain.ErrMissingIdentity
		}
		if e.Amount == 0 {
			continue
		}
		current, ok := next[e.Owner]
		if !ok {
			current = l.balanceLocked(e.Owner)
		}
		updated, err := add(current, e.Amount)
		if err != nil {
			return nil, err
		}
		if e.Amount < 0 && updated < 0 {
			return nil, domain.ErrInsufficientFunds
		}
		next[e.Owner] = updated
	}

	return next, nil
}

// add returns balance+delta or domain.ErrBalanceOverflow when the sum leaves int64
func add(balance, delta int64) (int64, error) {
	if (delta > 0 && balance > math.MaxInt64-delta) || (delta < 0 && balance < math.MinInt64-delta) {
		return 0, domain.ErrBalanceOverflow
	}
	return balance + delta, nil
}

func (l *ledger) apply(next map[string]int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	maps.Copy(l.balances, next)
}

func (l *ledger) ApplyTick(ctx context.Context, income map[string]int64, at time.Time, interval time.Duration) (domain.TickSummary, error) {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	l.mu.RLock()
	next := make(map[string]int64, len(income))
	for owner, amount := range income {
		if owner == "" || amount <= 0 {
			continue
		}
		balance, err := add(l.balanceLocked(owner), amount)
		if err != nil {
			l.mu.RUnlock()
			return domain.TickSummary{}, fmt.Errorf("failed to credit %s: %w", owner, err)
		}
		next[owner] = balance
	}
	totals := maps.Clone(l.balances)
	l.mu.RUnlock()

	if totals == nil {
		totals = make(map[string]int64, len(next))
	}
	maps.Copy(totals, next)

	credited := make(map[string]int64, len(next))
	for owner := range next {
		credited[owner] = income[owner]
	}

	summary := domain.TickSummary{
		TickedAt:    at,
		Income:      credited,
		Balances:    totals,
		IntervalSec: int64(interval / time.Second),
	}

	tick := summary
	tick.Income = maps.Clone(credited)
	tick.Balances = maps.Clone(totals)
	if err := l.store.Commit(ctx, store.ChangeSet{Balances: next, Tick: &tick}); err != nil {
		return domain.TickSummary{}, fmt.Errorf("failed to commit tick: %w", err)
	}
	l.apply(next)

	return summary, nil
}

func (l *ledger) Restore(balances map[string]int64) {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances = maps.Clone(balances)
	if l.balances == nil {
		l.balances = make(map[string]int64)
	}
}
