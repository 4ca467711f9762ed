package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/catalog"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/events"
	"github.com/feral-file/wt-exchange/internal/gateway"
	"github.com/feral-file/wt-exchange/internal/ledger"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/messaging"
	"github.com/feral-file/wt-exchange/internal/offer"
	"github.com/feral-file/wt-exchange/internal/parcel"
	"github.com/feral-file/wt-exchange/internal/settings"
	"github.com/feral-file/wt-exchange/internal/store"
	"github.com/feral-file/wt-exchange/internal/street"
	"github.com/feral-file/wt-exchange/internal/tick"
)

const (
	opBuy      = "buy"
	opUpgrade  = "upgrade"
	opPropose  = "propose"
	opAccept   = "accept"
	opReject   = "reject"
	opCancel   = "cancel"
	opTransfer = "transfer"
)

var operations = []string{opBuy, opUpgrade, opPropose, opAccept, opReject, opCancel, opTransfer}

var buildingTypes = []domain.BuildingType{
	{Key: "house", Name: "House", BaseIncome: 5},
	{Key: "shop", Name: "Shop", BaseIncome: 12},
	{Key: "cafe", Name: "Cafe", BaseIncome: 20, BasePrice: 250},
}

// OpStats aggregates the outcome of one operation kind
type OpStats struct {
	Attempts     int
	Successes    int
	Errors       map[string]int
	TotalLatency time.Duration
	MaxLatency   time.Duration
}

// Stats is the outcome of a benchmark run
type Stats struct {
	Config     Config
	Duration   time.Duration
	Ops        map[string]*OpStats
	Spent      int64
	Expected   int64
	Actual     int64
	Invalid    []string
	OwnedCount int
	Pending    int
}

// MoneyConserved reports whether player balances account for every purchase
func (s *Stats) MoneyConserved() bool {
	return s.Expected == s.Actual
}

// ParcelsValid reports whether every parcel passed validation after the run
func (s *Stats) ParcelsValid() bool {
	return len(s.Invalid) == 0
}

type recorder struct {
	mu    sync.Mutex
	ops   map[string]*OpStats
	spent int64
}

func newRecorder() *recorder {
	r := &recorder{ops: make(map[string]*OpStats, len(operations))}
	for _, op := range operations {
		r.ops[op] = &OpStats{Errors: make(map[string]int)}
	}
	return r
}

func (r *recorder) observe(op string, latency time.Duration, spent int64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.ops[op]
	s.Attempts++
	s.TotalLatency += latency
	s.MaxLatency = max(s.MaxLatency, latency)
	if err != nil {
		s.Errors[errorKind(err)]++
		return
	}
	s.Successes++
	r.spent += spent
}

func errorKind(err error) string {
	kind := domain.Kind(err)
	if kind == nil {
		return "unknown"
	}
	return kind.Error()
}

type engine struct {
	gateway  gateway.Gateway
	catalog  catalog.Catalog
	recorder events.Recorder
	store    store.Store
}

func (e *engine) Close() {
	e.gateway.Close()
	e.recorder.Close()
	if err := e.store.Close(); err != nil {
		logger.Warn("Failed to close store", zap.Error(err))
	}
}

func newEngine(ctx context.Context, cfg *Config) (*engine, error) {
	var s store.Store
	if cfg.SQLitePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
		sqlite, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s = sqlite
	} else {
		s = store.NewMemoryStore()
	}

	clock := adapter.NewClock()
	cat, err := catalog.New(buildingTypes)
	if err != nil {
		return nil, err
	}

	l := ledger.New(ledger.Config{StartingBalance: cfg.StartingBalance}, s)
	streets := street.NewRegistry(street.Config{}, s, l, clock)
	parcels := parcel.NewStore(s, cat, streets, l, clock)
	offers := offer.NewEngine(offer.Config{TTL: cfg.OfferTTL, MinAmount: 1, LockParcelOnPending: true}, s, parcels, l, clock)
	ticks := tick.NewScheduler(time.Hour, cat, parcels, l, clock)
	rec := events.NewRecorder(events.Config{}, s, messaging.NewNoopPublisher(), clock)
	config := settings.NewStore(settings.Config{DefaultAutoTickMin: 60}, s, adapter.NewJSON(), adapter.NewJCS(), clock)

	gw, err := gateway.New(ctx, gateway.Config{GCWorkers: cfg.Workers}, s, gateway.Components{
		Catalog:  cat,
		Ledger:   l,
		Parcels:  parcels,
		Streets:  streets,
		Offers:   offers,
		Ticks:    ticks,
		Settings: config,
		Recorder: rec,
	}, clock)
	if err != nil {
		rec.Close()
		return nil, err
	}

	for i := range cfg.Parcels {
		if _, err := gw.CreateParcel(ctx, parcel.CreateInput{
			ID:       parcelID(i),
			Location: domain.LatLng{Lat: float64(i) / 1000, Lng: float64(i) / 1000},
		}); err != nil {
			gw.Close()
			rec.Close()
			return nil, fmt.Errorf("failed to create parcel: %w", err)
		}
	}

	return &engine{gateway: gw, catalog: cat, recorder: rec, store: s}, nil
}

func parcelID(i int) string {
	return fmt.Sprintf("parcel-%04d", i)
}

func playerID(i int) string {
	return fmt.Sprintf("player-%03d", i)
}

// runOp performs one random operation and returns the amount it spent on purchases
func runOp(ctx context.Context, e *engine, cfg *Config, rng *rand.Rand, op string) (int64, error) {
	player := playerID(rng.IntN(cfg.Players))
	pid := parcelID(rng.IntN(cfg.Parcels))

	switch op {
	case opBuy:
		bt := buildingTypes[rng.IntN(len(buildingTypes))]
		if _, err := e.gateway.BuyParcel(ctx, pid, player, bt.Key); err != nil {
			return 0, err
		}
		return e.catalog.Price(bt.Key)
	case opUpgrade:
		p, err := e.gateway.GetParcel(pid)
		if err != nil {
			return 0, err
		}
		if p.IsOwned() {
			player = p.OwnerID()
		}
		upgraded, err := e.gateway.UpgradeParcel(ctx, pid, player)
		if err != nil {
			return 0, err
		}
		return e.catalog.UpgradePrice(*upgraded.BuildingType, upgraded.Level-1)
	case opPropose:
		_, err := e.gateway.ProposeOffer(ctx, pid, player, 10+rng.Int64N(500), "")
		return 0, err
	case opTransfer:
		_, _, err := e.gateway.TransferBalance(ctx, player, playerID(rng.IntN(cfg.Players)), 1+rng.Int64N(200))
		return 0, err
	default:
		pending, err := e.gateway.ListOffers(ctx, offer.Filter{Status: domain.OfferStatusPending})
		if err != nil {
			return 0, err
		}
		if len(pending) == 0 {
			return 0, domain.ErrOfferNotFound
		}
		o := pending[rng.IntN(len(pending))]
		switch op {
		case opAccept:
			_, err = e.gateway.AcceptOffer(ctx, o.ID, o.ToID)
		case opReject:
			_, err = e.gateway.RejectOffer(ctx, o.ID, o.ToID)
		default:
			_, err = e.gateway.CancelOffer(ctx, o.ID, o.FromID)
		}
		return 0, err
	}
}

func pickOp(rng *rand.Rand) string {
	switch n := rng.IntN(100); {
	case n < 30:
		return opBuy
	case n < 45:
		return opUpgrade
	case n < 75:
		return opPropose
	case n < 87:
		return opAccept
	case n < 92:
		return opReject
	case n < 97:
		return opCancel
	default:
		return opTransfer
	}
}

// runBenchmark drives the engine with concurrent players and checks its invariants afterwards
func runBenchmark(ctx context.Context, cfg *Config) (*Stats, error) {
	e, err := newEngine(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}
	defer e.Close()

	rec := newRecorder()
	pool := pond.NewPool(cfg.Workers, pond.WithContext(ctx))

	start := time.Now()
	for i := range cfg.Ops {
		rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
		pool.Submit(func() {
			op := pickOp(rng)
			began := time.Now()
			spent, err := runOp(ctx, e, cfg, rng, op)
			rec.observe(op, time.Since(began), spent, err)
		})
	}
	pool.StopAndWait()

	stats := &Stats{
		Config:   *cfg,
		Duration: time.Since(start),
		Ops:      rec.ops,
		Spent:    rec.spent,
		Expected: int64(cfg.Players)*cfg.StartingBalance - rec.spent,
	}

	for i := range cfg.Players {
		stats.Actual += e.gateway.Balance(playerID(i))
	}

	for _, p := range e.gateway.ListParcels(parcel.Filter{}) {
		if err := p.Validate(); err != nil {
			stats.Invalid = append(stats.Invalid, fmt.Sprintf("%s: %v", p.ID, err))
		}
		if p.IsOwned() {
			stats.OwnedCount++
		}
	}

	pending, err := e.gateway.ListOffers(ctx, offer.Filter{Status: domain.OfferStatusPending})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending offers: %w", err)
	}
	stats.Pending = len(pending)

	return stats, nil
}

func displayStats(stats *Stats) {
	total := 0
	for _, s := range stats.Ops {
		total += s.Attempts
	}

	fmt.Println("\n========================================")
	fmt.Println("  Exchange Contention Benchmark")
	fmt.Println("========================================")
	fmt.Printf("Players:      %d\n", stats.Config.Players)
	fmt.Printf("Parcels:      %d\n", stats.Config.Parcels)
	fmt.Printf("Workers:      %d\n", stats.Config.Workers)
	fmt.Printf("Duration:     %s\n", formatDuration(stats.Duration))
	fmt.Printf("Throughput:   %s\n", formatRate(total, stats.Duration))
	fmt.Println()

	fmt.Printf("%-10s %10s %10s %10s %10s %10s\n", "op", "attempts", "ok", "ok %", "avg", "max")
	for _, op := range operations {
		s := stats.Ops[op]
		avg := time.Duration(0)
		if s.Attempts > 0 {
			avg = s.TotalLatency / time.Duration(s.Attempts)
		}
		fmt.Printf("%-10s %10d %10d %10s %10s %10s\n",
			op, s.Attempts, s.Successes, percentageString(s.Successes, s.Attempts),
			formatDuration(avg), formatDuration(s.MaxLatency))
		if len(s.Errors) > 0 {
			fmt.Printf("           errors: %s\n", formatErrors(s.Errors))
		}
	}

	fmt.Println()
	fmt.Printf("%s Money conserved (expected %d, actual %d)\n", statusEmoji(stats.MoneyConserved()), stats.Expected, stats.Actual)
	fmt.Printf("%s Parcels valid (%d owned)\n", statusEmoji(stats.ParcelsValid()), stats.OwnedCount)
	for _, msg := range stats.Invalid {
		fmt.Printf("   %s\n", msg)
	}
	fmt.Printf("Pending offers left: %d\n", stats.Pending)
}

func formatErrors(errs map[string]int) string {
	kinds := make([]string, 0, len(errs))
	for k := range errs {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if errs[kinds[i]] != errs[kinds[j]] {
			return errs[kinds[i]] > errs[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s=%d", k, errs[k])
	}
	return strings.Join(parts, ", ")
}

func generateMarkdownReport(stats *Stats, path string) error {
	var b strings.Builder

	b.WriteString("# Exchange Contention Benchmark\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", time.Now().Format(time.RFC3339))
	b.WriteString("## Configuration\n\n")
	b.WriteString("| Setting | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Players | %d |\n", stats.Config.Players)
	fmt.Fprintf(&b, "| Parcels | %d |\n", stats.Config.Parcels)
	fmt.Fprintf(&b, "| Workers | %d |\n", stats.Config.Workers)
	fmt.Fprintf(&b, "| Operations | %d |\n", stats.Config.Ops)
	backend := "memory"
	if stats.Config.SQLitePath != "" {
		backend = "sqlite"
	}
	fmt.Fprintf(&b, "| Store | %s |\n\n", backend)

	b.WriteString("## Operations\n\n")
	b.WriteString("| Operation | Attempts | Succeeded | Success Rate | Max Latency | Errors |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, op := range operations {
		s := stats.Ops[op]
		fmt.Fprintf(&b, "| %s | %d | %d | %s | %s | %s |\n",
			op, s.Attempts, s.Successes, percentageString(s.Successes, s.Attempts),
			formatDuration(s.MaxLatency), formatErrors(s.Errors))
	}

	b.WriteString("\n## Invariants\n\n")
	fmt.Fprintf(&b, "- %s Money conserved: expected %d, actual %d\n", statusEmoji(stats.MoneyConserved()), stats.Expected, stats.Actual)
	fmt.Fprintf(&b, "- %s Parcels valid: %d owned of %d\n", statusEmoji(stats.ParcelsValid()), stats.OwnedCount, stats.Config.Parcels)
	for _, msg := range slices.Sorted(slices.Values(stats.Invalid)) {
		fmt.Fprintf(&b, "  - %s\n", msg)
	}

	return os.WriteFile(path, []byte(b.String()), 0o600)
}

func main() {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	stats, err := runBenchmark(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	displayStats(stats)

	if cfg.OutputFile != "" {
		if err := generateMarkdownReport(stats, cfg.OutputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nReport written to %s\n", cfg.OutputFile)
	}

	if !stats.MoneyConserved() || !stats.ParcelsValid() {
		os.Exit(2)
	}
}
