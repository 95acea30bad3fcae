package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Monitor     MonitorConfig     `mapstructure:"monitor"`
	Reconciler  ReconcilerConfig  `mapstructure:"reconciler"`
	Sweep       SweepConfig       `mapstructure:"sweep"`
	RateLimit   RateLimitConfig   `mapstructure:"ratelimit"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// WSOrigins lists extra origin host patterns allowed on the events websocket.
	WSOrigins []string `mapstructure:"ws_origins"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// MercadoPagoConfig configures the payment provider client.
type MercadoPagoConfig struct {
	AccessToken     string  `mapstructure:"access_token"`
	WebhookSecret   string  `mapstructure:"webhook_secret"` // empty disables x-signature checks
	NotificationURL string  `mapstructure:"notification_url"`
	SuccessURL      string  `mapstructure:"success_url"`
	FailureURL      string  `mapstructure:"failure_url"`
	PendingURL      string  `mapstructure:"pending_url"`
	RequestsPerSec  float64 `mapstructure:"requests_per_sec"`
	Burst           int     `mapstructure:"burst"`
}

type MonitorConfig struct {
	Interval     time.Duration `mapstructure:"interval"`
	MaxDuration  time.Duration `mapstructure:"max_duration"`
	CheckTimeout time.Duration `mapstructure:"check_timeout"`
	CheckSource  string        `mapstructure:"check_source"` // provider, store
	WatchOnStart bool          `mapstructure:"watch_on_start"`
}

type ReconcilerConfig struct {
	MaxConflictRetries int           `mapstructure:"max_conflict_retries"`
	DedupTTL           time.Duration `mapstructure:"dedup_ttl"`
}

// SweepConfig schedules the overdue sweep. Schedule is a cron spec.
type SweepConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

type RateLimitConfig struct {
	WebhookLimit  int           `mapstructure:"webhook_limit"`
	WebhookWindow time.Duration `mapstructure:"webhook_window"`
	PublicLimit   int           `mapstructure:"public_limit"`
	PublicWindow  time.Duration `mapstructure:"public_window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: FED_ (Federation).
// Nested keys use underscore: FED_DATABASE_HOST, FED_MERCADOPAGO_ACCESS_TOKEN, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "federation")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "federation-admin")
	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.webhook_secret", "")
	v.SetDefault("mercadopago.notification_url", "")
	v.SetDefault("mercadopago.success_url", "")
	v.SetDefault("mercadopago.failure_url", "")
	v.SetDefault("mercadopago.pending_url", "")
	v.SetDefault("mercadopago.requests_per_sec", 10)
	v.SetDefault("mercadopago.burst", 5)
	v.SetDefault("monitor.interval", "5s")
	v.SetDefault("monitor.max_duration", "10m")
	v.SetDefault("monitor.check_timeout", "10s")
	v.SetDefault("monitor.check_source", "provider")
	v.SetDefault("monitor.watch_on_start", true)
	v.SetDefault("reconciler.max_conflict_retries", 5)
	v.SetDefault("reconciler.dedup_ttl", "24h")
	v.SetDefault("sweep.enabled", true)
	v.SetDefault("sweep.schedule", "@hourly")
	v.SetDefault("ratelimit.webhook_limit", 120)
	v.SetDefault("ratelimit.webhook_window", "1m")
	v.SetDefault("ratelimit.public_limit", 60)
	v.SetDefault("ratelimit.public_window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: FED_DATABASE_HOST -> database.host
	v.SetEnvPrefix("FED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects combinations the service cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("storage.driver must be postgres or memory, got %q", c.Storage.Driver)
	}
	switch c.Monitor.CheckSource {
	case "provider", "store":
	default:
		return fmt.Errorf("monitor.check_source must be provider or store, got %q", c.Monitor.CheckSource)
	}
	if c.Monitor.Interval <= 0 || c.Monitor.MaxDuration <= 0 {
		return errors.New("monitor.interval and monitor.max_duration must be positive")
	}
	return nil
}
