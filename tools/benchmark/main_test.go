package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/wt-exchange/internal/domain"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"microseconds", 250 * time.Microsecond, "250µs"},
		{"milliseconds", 42 * time.Millisecond, "42ms"},
		{"seconds", 1500 * time.Millisecond, "1.50s"},
		{"minutes", 3*time.Minute + 7*time.Second, "3m 7s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}

func TestPercentageString(t *testing.T) {
	assert.Equal(t, "0.00%", percentageString(5, 0))
	assert.Equal(t, "50.00%", percentageString(1, 2))
	assert.Equal(t, "N/A", formatRate(10, 0))
	assert.Equal(t, "10.00/s", formatRate(20, 2*time.Second))
}

func TestFormatErrors(t *testing.T) {
	got := formatErrors(map[string]int{"conflict": 2, "not found": 5, "forbidden": 2})
	assert.Equal(t, "not found=5, conflict=2, forbidden=2", got)
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "conflict", errorKind(domain.ErrAlreadyOwned))
	assert.Equal(t, "unknown", errorKind(context.Canceled))
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Players: 2, Parcels: 1, Workers: 1, Ops: 1, OfferTTL: time.Minute}
	require.NoError(t, cfg.Validate())

	cfg.Players = 1
	assert.EqualError(t, cfg.Validate(), "players must be at least 2")

	cfg.Players = 2
	cfg.OfferTTL = 0
	assert.EqualError(t, cfg.Validate(), "offer-ttl must be positive")
}

func TestRunBenchmark_KeepsInvariants(t *testing.T) {
	cfg := &Config{
		Players:         4,
		Parcels:         3,
		Workers:         8,
		Ops:             400,
		StartingBalance: 50000,
		OfferTTL:        time.Hour,
		Seed:            7,
	}

	stats, err := runBenchmark(context.Background(), cfg)
	require.NoError(t, err)

	attempts := 0
	for _, s := range stats.Ops {
		attempts += s.Attempts
	}
	assert.Equal(t, cfg.Ops, attempts)
	assert.True(t, stats.MoneyConserved(), "expected %d, actual %d", stats.Expected, stats.Actual)
	assert.True(t, stats.ParcelsValid(), "invalid parcels: %v", stats.Invalid)
	assert.Positive(t, stats.Ops[opBuy].Successes)
	assert.LessOrEqual(t, stats.OwnedCount, cfg.Parcels)
}

func TestRunBenchmark_SQLite(t *testing.T) {
	cfg := &Config{
		Players:         3,
		Parcels:         2,
		Workers:         4,
		Ops:             60,
		StartingBalance: 10000,
		OfferTTL:        time.Hour,
		Seed:            3,
		SQLitePath:      filepath.Join(t.TempDir(), "bench", "exchange.db"),
	}

	stats, err := runBenchmark(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, stats.MoneyConserved())
	assert.True(t, stats.ParcelsValid())
}

func TestGenerateMarkdownReport(t *testing.T) {
	stats := &Stats{
		Config:   Config{Players: 2, Parcels: 1, Workers: 1, Ops: 1},
		Ops:      newRecorder().ops,
		Expected: 10,
		Actual:   10,
	}
	stats.Ops[opBuy].Attempts = 1
	stats.Ops[opBuy].Successes = 1

	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, generateMarkdownReport(stats, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| buy | 1 | 1 | 100.00% |")
	assert.Contains(t, string(data), "✅ Money conserved: expected 10, actual 10")
	assert.Contains(t, string(data), "| Store | memory |")
}

func TestLoadConfig_FlagsWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"players": 12, "ops": 500, "offer_ttl": "90s", "sqlite_path": "/tmp/x.db"}`), 0o600))

	file, err := LoadConfig(path)
	require.NoError(t, err)

	cfg := &Config{Players: defaultPlayers, Parcels: defaultParcels, Workers: defaultWorkers, Ops: 42, OfferTTL: defaultOfferTTL}
	require.NoError(t, merge(cfg, file, map[string]bool{"ops": true}))

	assert.Equal(t, 12, cfg.Players)
	assert.Equal(t, 42, cfg.Ops)
	assert.Equal(t, 90*time.Second, cfg.OfferTTL)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	require.NoError(t, cfg.Validate())

	file.OfferTTL = "soon"
	assert.ErrorContains(t, merge(cfg, file, nil), "invalid offer_ttl")
}
