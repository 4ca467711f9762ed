package tick

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/catalog"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/ledger"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/parcel"
)

// OwnerTotal is the balance of one owner in the economy summary
type OwnerTotal struct {
	Owner   string `json:"owner"`
	Balance int64  `json:"balance"`
	Parcels int    `json:"parcels"`
}

// Summary is the economy overview
type Summary struct {
	LastTick    *domain.TickSummary `json:"lastTick"`
	IntervalSec int64               `json:"intervalSec"`
	Totals      []OwnerTotal        `json:"totals"`
}

// Health reports the tick cadence
type Health struct {
	LastTickAt  *time.Time `json:"lastTickAt"`
	NextTickAt  *time.Time `json:"nextTickAt"`
	IntervalSec int64      `json:"intervalSec"`
}

// Scheduler accrues parcel income into the ledger
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/tick_scheduler.go -package=mocks -mock_names=Scheduler=MockTickScheduler
type Scheduler interface {
	// RunTick credits every owner baseIncome × level for each owned, typed parcel.
	// Running it again accrues again.
	RunTick(ctx context.Context) (domain.TickSummary, error)

	// LastTick returns the most recent tick
	LastTick() (domain.TickSummary, bool)

	// Summary returns balances sorted by balance descending together with the last tick
	Summary() Summary

	// Health returns the last and next tick times
	Health() Health

	// Due reports whether a full interval has passed since the last tick
	Due(now time.Time) bool

	// Interval returns the tick cadence
	Interval() time.Duration

	// SetInterval changes the tick cadence. Non-positive durations are ignored.
	SetInterval(d time.Duration)

	// Restore sets the last tick from the loaded state
	Restore(last *domain.TickSummary)
}

type scheduler struct {
	catalog  catalog.Catalog
	parcels  parcel.Store
	ledger   ledger.Ledger
	clock    adapter.Clock

	runMu    sync.Mutex
	mu       sync.RWMutex
	interval time.Duration
	last     *domain.TickSummary
}

// NewScheduler creates a tick scheduler
func NewScheduler(interval time.Duration, c catalog.Catalog, parcels parcel.Store, l ledger.Ledger, clock adapter.Clock) Scheduler {
	if interval <= 0 {
		interval = domain.DEFAULT_TICK_INTERVAL
	}
	return &scheduler{
		interval: interval,
		catalog:  c,
		parcels:  parcels,
		ledger:   l,
		clock:    clock,
	}
}

// Income computes the per-owner income of one tick
func Income(c catalog.Catalog, parcels []domain.Parcel) map[string]int64 {
	income := make(map[string]int64)
	for _, p := range parcels {
		if !p.IsOwned() || !p.HasBuilding() {
			continue
		}
		level := min(max(p.Level, domain.MIN_PARCEL_LEVEL), domain.MAX_PARCEL_LEVEL)
		amount, err := c.Income(*p.BuildingType, level)
		if err != nil {
			// a type removed from the catalog earns nothing
			continue
		}
		if amount > 0 {
			income[p.OwnerID()] += amount
		}
	}
	return income
}

func (s *scheduler) RunTick(ctx context.Context) (domain.TickSummary, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	income := Income(s.catalog, s.parcels.List(parcel.Filter{}))
	summary, err := s.ledger.ApplyTick(ctx, income, s.clock.Now().UTC(), s.Interval())
	if err != nil {
		return domain.TickSummary{}, err
	}

	s.mu.Lock()
	last := summary
	s.last = &last
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Ran tick",
		zap.Int("owners", len(summary.Income)),
		zap.Int64("total_income", summary.TotalIncome()),
	)

	return summary, nil
}

func (s *scheduler) LastTick() (domain.TickSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return domain.TickSummary{}, false
	}
	return *s.last, true
}

func (s *scheduler) Summary() Summary {
	counts := make(map[string]int)
	for _, p := range s.parcels.List(parcel.Filter{}) {
		if p.IsOwned() {
			counts[p.OwnerID()]++
		}
	}

	balances := s.ledger.Balances()
	for owner := range counts {
		if _, ok := balances[owner]; !ok {
			balances[owner] = s.ledger.BalanceOf(owner)
		}
	}

	totals := make([]OwnerTotal, 0, len(balances))
	for owner, balance := range balances {
		totals = append(totals, OwnerTotal{Owner: owner, Balance: balance, Parcels: counts[owner]})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Balance == totals[j].Balance {
			return totals[i].Owner < totals[j].Owner
		}
		return totals[i].Balance > totals[j].Balance
	})

	out := Summary{IntervalSec: int64(s.Interval() / time.Second), Totals: totals}
	if last, ok := s.LastTick(); ok {
		out.LastTick = &last
	}
	return out
}

func (s *scheduler) Health() Health {
	interval := s.Interval()
	h := Health{IntervalSec: int64(interval / time.Second)}
	if last, ok := s.LastTick(); ok {
		lastAt := last.TickedAt
		nextAt := lastAt.Add(interval)
		h.LastTickAt = &lastAt
		h.NextTickAt = &nextAt
	}
	return h
}

func (s *scheduler) Due(now time.Time) bool {
	last, ok := s.LastTick()
	if !ok {
		return true
	}
	return !now.Before(last.TickedAt.Add(s.Interval()))
}

func (s *scheduler) Interval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interval
}

func (s *scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = d
}

func (s *scheduler) Restore(last *domain.TickSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last == nil {
		s.last = nil
		return
	}
	t := *last
	s.last = &t
}
