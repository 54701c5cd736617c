// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress  string   `env:"SERVER_ADDRESS" envDefault:":9090"`
	ContextTimeout int      `env:"CONTEXT_TIMEOUT" envDefault:"30"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
	CookieSecure   bool     `env:"COOKIE_SECURE" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	DatabaseHost string        `env:"DATABASE_HOST" envDefault:"localhost"`
	DatabasePort string        `env:"DATABASE_PORT" envDefault:"3306"`
	DatabaseUser string        `env:"DATABASE_USER" envDefault:"root"`
	DatabasePass string        `env:"DATABASE_PASS"`
	DatabaseName string        `env:"DATABASE_NAME" envDefault:"food_reels"`
	DBMaxRetry   int           `env:"DATABASE_MAX_RETRY" envDefault:"10"`
	DBRetryEvery time.Duration `env:"DATABASE_RETRY_INTERVAL" envDefault:"2s"`

	CacheHost string `env:"CACHE_HOST" envDefault:"localhost"`
	CachePort string `env:"CACHE_PORT" envDefault:"6379"`
	CachePass string `env:"CACHE_PASS"`
	CacheDB   int    `env:"CACHE_DB" envDefault:"0"`

	BloomBitSize uint64 `env:"BLOOM_FILTER_SIZE" envDefault:"10000000"`

	JWTSecret      string `env:"JWT_SECRET"`
	JWTExpireHours int    `env:"JWT_EXPIRE_HOURS" envDefault:"24"`

	S3Region   string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Bucket   string `env:"S3_BUCKET" envDefault:"food-reels"`
	S3Prefix   string `env:"S3_PREFIX" envDefault:"videos"`
	S3BaseURL  string `env:"S3_PUBLIC_BASE_URL"`
	S3Endpoint string `env:"S3_ENDPOINT"`

	LockExpiry     time.Duration `env:"TOGGLE_LOCK_EXPIRY" envDefault:"5s"`
	LockTries      int           `env:"TOGGLE_LOCK_TRIES" envDefault:"32"`
	LockRetryDelay time.Duration `env:"TOGGLE_LOCK_RETRY_DELAY" envDefault:"20ms"`

	ReconcileFlushInterval time.Duration `env:"RECONCILE_FLUSH_INTERVAL" envDefault:"5s"`
	ReconcileSweepInterval time.Duration `env:"RECONCILE_SWEEP_INTERVAL" envDefault:"1h"`
	ReconcileBatchSize     int64         `env:"RECONCILE_BATCH_SIZE" envDefault:"500"`
	ReconcileQueueSize     int           `env:"RECONCILE_QUEUE_SIZE" envDefault:"1024"`
}

// Load reads .env when present, then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.ContextTimeout <= 0 {
		return fmt.Errorf("CONTEXT_TIMEOUT must be positive, got %d", c.ContextTimeout)
	}
	if c.JWTExpireHours <= 0 {
		return fmt.Errorf("JWT_EXPIRE_HOURS must be positive, got %d", c.JWTExpireHours)
	}
	if c.S3Bucket == "" {
		return errors.New("S3_BUCKET is required")
	}
	// the base is stored verbatim in front of every video key
	if c.S3BaseURL != "" && !isAbsoluteURL(c.S3BaseURL) {
		return fmt.Errorf("S3_PUBLIC_BASE_URL must be an absolute http(s) url, got %q", c.S3BaseURL)
	}
	if c.ReconcileBatchSize <= 0 {
		return fmt.Errorf("RECONCILE_BATCH_SIZE must be positive, got %d", c.ReconcileBatchSize)
	}
	return nil
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.ContextTimeout) * time.Second
}

func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpireHours) * time.Hour
}

func (c *Config) CacheAddr() string {
	return c.CacheHost + ":" + c.CachePort
}
