package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/api/middleware"
	"github.com/feral-file/wt-exchange/internal/api/server"
	"github.com/feral-file/wt-exchange/internal/catalog"
	"github.com/feral-file/wt-exchange/internal/config"
	"github.com/feral-file/wt-exchange/internal/events"
	"github.com/feral-file/wt-exchange/internal/gateway"
	"github.com/feral-file/wt-exchange/internal/ledger"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/messaging"
	"github.com/feral-file/wt-exchange/internal/offer"
	"github.com/feral-file/wt-exchange/internal/parcel"
	"github.com/feral-file/wt-exchange/internal/providers/jetstream"
	"github.com/feral-file/wt-exchange/internal/settings"
	"github.com/feral-file/wt-exchange/internal/store"
	"github.com/feral-file/wt-exchange/internal/street"
	"github.com/feral-file/wt-exchange/internal/sweeper"
	"github.com/feral-file/wt-exchange/internal/tick"
	"github.com/feral-file/wt-exchange/internal/world"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Service:         "wt-exchange-api",
		Tags: map[string]string{
			"service": "wt-exchange-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting parcel exchange API")

	// Initialize store
	dataStore, err := openStore(ctx, cfg.Database)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to open store", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	defer func() {
		if err := dataStore.Close(); err != nil {
			logger.Error(err, zap.String("component", "store"))
		}
	}()

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	fs := adapter.NewFileSystem()

	// Load the world seed
	w, err := world.NewLoader(fs).Load(cfg.Economy.WorldFile)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load world", zap.Error(err), zap.String("path", cfg.Economy.WorldFile))
	}
	cat, err := catalog.New(w.BuildingTypes)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to build catalog", zap.Error(err))
	}

	// Event publishing
	publisher := messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		var signer messaging.Signer
		if cfg.NATS.SigningSecret != "" {
			signer = messaging.NewSigner(cfg.NATS.SigningSecret, jsonAdapter, adapter.NewJCS(), clock)
		}
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter, signer)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Publishing economy events", zap.String("url", cfg.NATS.URL), zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, economy events are only kept in the feed")
	}

	recorder := events.NewRecorder(events.Config{
		WorkerPoolSize: cfg.Worker.WorkerPoolSize,
		QueueSize:      cfg.Worker.WorkerQueueSize,
	}, dataStore, publisher, clock)

	// Engine components
	l := ledger.New(ledger.Config{StartingBalance: cfg.Economy.StartingBalance}, dataStore)
	streets := street.NewRegistry(street.Config{
		DefaultPrice: cfg.Economy.DefaultStreetPrice,
		DefaultSlots: cfg.Economy.DefaultStreetSlots,
	}, dataStore, l, clock)
	parcels := parcel.NewStore(dataStore, cat, streets, l, clock)
	offers := offer.NewEngine(offer.Config{
		TTL:                 cfg.Economy.OfferTTL,
		MinAmount:           cfg.Economy.MinOfferAmount,
		FeePct:              cfg.Economy.TradeFeePct,
		LockParcelOnPending: cfg.Economy.LockParcelOnPending,
	}, dataStore, parcels, l, clock)
	ticks := tick.NewScheduler(cfg.Economy.TickInterval, cat, parcels, l, clock)
	if cfg.Economy.SettingsSecret == "" {
		logger.WarnCtx(ctx, "Settings secret not configured, settings are read-only")
	}
	economySettings := settings.NewStore(settings.Config{
		SigningSecret:       cfg.Economy.SettingsSecret,
		DefaultAutoTickMin:  int(cfg.Economy.TickInterval / time.Minute),
		DefaultSeasonLength: cfg.Economy.SeasonLength,
	}, dataStore, jsonAdapter, adapter.NewJCS(), clock)

	gw, err := gateway.New(ctx, gateway.Config{GCWorkers: cfg.Worker.WorkerPoolSize}, dataStore, gateway.Components{
		Catalog:  cat,
		Ledger:   l,
		Parcels:  parcels,
		Streets:  streets,
		Offers:   offers,
		Ticks:    ticks,
		Settings: economySettings,
		Recorder: recorder,
	}, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to start gateway", zap.Error(err))
	}
	defer recorder.Close()
	defer gw.Close()

	created, err := gw.SeedStreets(ctx, w.StreetModels())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to seed streets", zap.Error(err))
	}
	logger.InfoCtx(ctx, "World loaded",
		zap.Int("version", w.Version),
		zap.Int("building_types", len(w.BuildingTypes)),
		zap.Int("streets_created", created),
	)

	// Background sweepers
	var sweepers []sweeper.Sweeper
	if cfg.Sweepers.AutoTick.Enabled {
		sweepers = append(sweepers, sweeper.NewAutoTickSweeper(sweeper.AutoTickSweeperConfig{
			CheckInterval: cfg.Sweepers.AutoTick.CheckInterval,
		}, gw))
	}
	if cfg.Sweepers.OfferGC.Enabled {
		sweepers = append(sweepers, sweeper.NewOfferGCSweeper(sweeper.OfferGCSweeperConfig{
			Interval: cfg.Sweepers.OfferGC.Interval,
		}, gw))
	}

	var wg sync.WaitGroup
	for _, s := range sweepers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Start(ctx); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("sweeper", s.Name()))
			}
		}()
	}

	// Create and start server
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		RateLimit: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		},
	}, gw)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	for _, s := range sweepers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("sweeper", s.Name()))
		}
	}
	cancel()
	wg.Wait()

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}

// openStore opens the durable store selected by the database driver
func openStore(ctx context.Context, cfg config.DatabaseConfig) (store.Store, error) {
	switch cfg.Driver {
	case config.DatabaseDriverPostgres:
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := store.ConfigureConnectionPool(db, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime); err != nil {
			return nil, err
		}
		if err := store.AutoMigrate(db); err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Connected to database",
			zap.String("host", cfg.Host),
			zap.Int("max_open_conns", cfg.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.MaxIdleConns),
		)
		return store.NewPGStore(db), nil

	case config.DatabaseDriverSQLite:
		if dir := filepath.Dir(cfg.Path); dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		s, err := store.OpenSQLite(cfg.Path)
		if err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Opened SQLite database", zap.String("path", cfg.Path))
		return s, nil

	case config.DatabaseDriverMemory:
		logger.WarnCtx(ctx, "Using in-memory store, state is lost on restart")
		return store.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
