package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/wt-exchange/internal/domain"
)

const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverMemory   = "memory"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, sqlite or memory
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	Path            string        `mapstructure:"path"`               // SQLite database file
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	SigningSecret  string        `mapstructure:"signing_secret"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int      `mapstructure:"idle_timeout"`  // in seconds
	CORSOrigins  []string `mapstructure:"cors_origins"`  // empty allows every origin
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RateLimitConfig limits mutating requests per client
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"` // 0 disables the limiter
	Burst             int     `mapstructure:"burst"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// EconomyConfig holds the rules of the economy
type EconomyConfig struct {
	OfferTTL            time.Duration `mapstructure:"offer_ttl"`
	MinOfferAmount      int64         `mapstructure:"min_offer_amount"`
	TradeFeePct         float64       `mapstructure:"trade_fee_pct"`
	LockParcelOnPending bool          `mapstructure:"lock_parcel_on_pending"`
	StartingBalance     int64         `mapstructure:"starting_balance"`
	TickInterval        time.Duration `mapstructure:"tick_interval"`
	DefaultStreetPrice  int64         `mapstructure:"default_street_price"`
	DefaultStreetSlots  int           `mapstructure:"default_street_slots"`
	WorldFile           string        `mapstructure:"world_file"`
	// SettingsSecret signs the settings versions. Settings are read-only without it.
	SettingsSecret      string        `mapstructure:"settings_secret"`
	SeasonLength        time.Duration `mapstructure:"season_length"`
}

// AutoTickConfig holds configuration for the auto-tick sweeper
type AutoTickConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	CheckInterval time.Duration `mapstructure:"check_interval"`
}

// OfferGCConfig holds configuration for the offer GC sweeper
type OfferGCConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// SweepersConfig holds configuration for the background sweepers
type SweepersConfig struct {
	AutoTick AutoTickConfig `mapstructure:"auto_tick"`
	OfferGC  OfferGCConfig  `mapstructure:"offer_gc"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Auth       AuthConfig      `mapstructure:"auth"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
	Worker     WorkerConfig    `mapstructure:"worker"`
	Economy    EconomyConfig   `mapstructure:"economy"`
	Sweepers   SweepersConfig  `mapstructure:"sweepers"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.driver", DatabaseDriverPostgres)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "data/wt-exchange.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.stream_name", "ECONOMY_EVENTS")
	v.SetDefault("nats.subject_prefix", "economy")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "wt-exchange-api")
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("worker.pool_size", 4)
	v.SetDefault("worker.queue_size", 1000)
	v.SetDefault("economy.offer_ttl", "24h")
	v.SetDefault("economy.min_offer_amount", 10)
	v.SetDefault("economy.trade_fee_pct", 0)
	v.SetDefault("economy.lock_parcel_on_pending", true)
	v.SetDefault("economy.starting_balance", 5000)
	v.SetDefault("economy.tick_interval", "5m")
	v.SetDefault("economy.default_street_price", 1000)
	v.SetDefault("economy.default_street_slots", 10)
	v.SetDefault("economy.world_file", "config/world.yaml")
	v.SetDefault("economy.settings_secret", "")
	v.SetDefault("economy.season_length", "720h")
	v.SetDefault("sweepers.auto_tick.enabled", true)
	v.SetDefault("sweepers.auto_tick.check_interval", "30s")
	v.SetDefault("sweepers.offer_gc.enabled", true)
	v.SetDefault("sweepers.offer_gc.interval", "1m")

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the fields that have no usable default
func (c *APIConfig) Validate() error {
	switch c.Database.Driver {
	case DatabaseDriverPostgres:
		if c.Database.Host == "" {
			return errors.New("database.host is required")
		}
		if c.Database.DBName == "" {
			return errors.New("database.dbname is required")
		}
	case DatabaseDriverSQLite:
		if c.Database.Path == "" {
			return errors.New("database.path is required")
		}
	case DatabaseDriverMemory:
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}

	if c.Economy.OfferTTL <= 0 {
		return errors.New("economy.offer_ttl must be positive")
	}
	if c.Economy.TickInterval <= 0 {
		return errors.New("economy.tick_interval must be positive")
	}
	if c.Economy.MinOfferAmount < 1 {
		return errors.New("economy.min_offer_amount must be at least 1")
	}
	if c.Economy.TradeFeePct < 0 || c.Economy.TradeFeePct >= 100 {
		return errors.New("economy.trade_fee_pct must be in [0, 100)")
	}
	if c.Economy.SeasonLength <= 0 || c.Economy.SeasonLength > domain.MAX_SEASON_LENGTH {
		return fmt.Errorf("economy.season_length must be in (0, %s]", domain.MAX_SEASON_LENGTH)
	}
	if c.Economy.StartingBalance < 0 {
		return errors.New("economy.starting_balance must not be negative")
	}

	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("WT_EXCHANGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.driver",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.path",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.signing_secret",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Rate limit
		"rate_limit.requests_per_second",
		"rate_limit.burst",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
		// Economy
		"economy.offer_ttl",
		"economy.min_offer_amount",
		"economy.trade_fee_pct",
		"economy.lock_parcel_on_pending",
		"economy.starting_balance",
		"economy.tick_interval",
		"economy.default_street_price",
		"economy.default_street_slots",
		"economy.world_file",
		"economy.settings_secret",
		"economy.season_length",
		// Sweepers
		"sweepers.auto_tick.enabled",
		"sweepers.auto_tick.check_interval",
		"sweepers.offer_gc.enabled",
		"sweepers.offer_gc.interval",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
