package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

const (
	defaultPlayers  = 8
	defaultParcels  = 16
	defaultWorkers  = 16
	defaultOps      = 20000
	defaultBalance  = 100000
	defaultOfferTTL = time.Hour
)

// Config holds the benchmark settings
type Config struct {
	Players         int
	Parcels         int
	Workers         int
	Ops             int
	StartingBalance int64
	OfferTTL        time.Duration
	Seed            uint64
	SQLitePath      string
	OutputFile      string
}

// FileConfig represents the configuration file structure.
// Flags given on the command line win over the file.
type FileConfig struct {
	Players         int    `json:"players"`
	Parcels         int    `json:"parcels"`
	Workers         int    `json:"workers"`
	Ops             int    `json:"ops"`
	StartingBalance int64  `json:"starting_balance"`
	OfferTTL        string `json:"offer_ttl"`
	Seed            uint64 `json:"seed"`
	SQLitePath      string `json:"sqlite_path"`
	OutputFile      string `json:"output_file"`
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// merge copies the file values whose flag was not set explicitly
func merge(cfg *Config, file *FileConfig, explicit map[string]bool) error {
	if file.Players != 0 && !explicit["players"] {
		cfg.Players = file.Players
	}
	if file.Parcels != 0 && !explicit["parcels"] {
		cfg.Parcels = file.Parcels
	}
	if file.Workers != 0 && !explicit["workers"] {
		cfg.Workers = file.Workers
	}
	if file.Ops != 0 && !explicit["ops"] {
		cfg.Ops = file.Ops
	}
	if file.StartingBalance != 0 && !explicit["starting-balance"] {
		cfg.StartingBalance = file.StartingBalance
	}
	if file.OfferTTL != "" && !explicit["offer-ttl"] {
		ttl, err := time.ParseDuration(file.OfferTTL)
		if err != nil {
			return fmt.Errorf("invalid offer_ttl: %w", err)
		}
		cfg.OfferTTL = ttl
	}
	if file.Seed != 0 && !explicit["seed"] {
		cfg.Seed = file.Seed
	}
	if file.SQLitePath != "" && !explicit["sqlite"] {
		cfg.SQLitePath = file.SQLitePath
	}
	if file.OutputFile != "" && !explicit["output"] {
		cfg.OutputFile = file.OutputFile
	}
	return nil
}

func parseFlags() (*Config, error) {
	cfg := &Config{}

	flag.IntVar(&cfg.Players, "players", defaultPlayers, "Number of simulated players")
	flag.IntVar(&cfg.Parcels, "parcels", defaultParcels, "Number of parcels in the world")
	flag.IntVar(&cfg.Workers, "workers", defaultWorkers, "Number of concurrent workers")
	flag.IntVar(&cfg.Ops, "ops", defaultOps, "Total number of operations")
	flag.Int64Var(&cfg.StartingBalance, "starting-balance", defaultBalance, "Starting balance of every player")
	flag.DurationVar(&cfg.OfferTTL, "offer-ttl", defaultOfferTTL, "How long offers stay pending")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "Seed for the operation mix")
	flag.StringVar(&cfg.SQLitePath, "sqlite", "", "Run against a sqlite file instead of memory (optional)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")

	configFile := flag.String("config", "", "Path to config file (optional)")

	flag.Parse()

	if *configFile != "" {
		file, err := LoadConfig(*configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if err := merge(cfg, file, explicit); err != nil {
			return nil, err
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings before any engine is built
func (c *Config) Validate() error {
	switch {
	case c.Players < 2:
		return errors.New("players must be at least 2")
	case c.Parcels < 1:
		return errors.New("parcels must be at least 1")
	case c.Workers < 1:
		return errors.New("workers must be at least 1")
	case c.Ops < 1:
		return errors.New("ops must be at least 1")
	case c.OfferTTL <= 0:
		return errors.New("offer-ttl must be positive")
	case c.StartingBalance < 0:
		return errors.New("starting-balance must not be negative")
	}
	return nil
}
