package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	AdminPassword     string
	SessionSecret     string
	NotifyGatewayURL  string
	LowStockThreshold int
	StockPollInterval time.Duration
	ShutdownTimeout   time.Duration
	RecentOrdersLimit int
}

const (
	defaultRunAddress        = ":8080"
	defaultSessionSecret     = "change-me-in-production"
	defaultLowStockThreshold = 3
	defaultStockPollInterval = time.Minute
	defaultShutdownTimeout   = 10 * time.Second
	defaultRecentOrdersLimit = 5
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		AdminPassword:     getString(lookup, "ADMIN_PASSWORD", ""),
		SessionSecret:     getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		NotifyGatewayURL:  getString(lookup, "NOTIFY_GATEWAY_URL", ""),
		LowStockThreshold: getInt(lookup, "LOW_STOCK_THRESHOLD", defaultLowStockThreshold),
		StockPollInterval: getDuration(lookup, "STOCK_POLL_INTERVAL", defaultStockPollInterval),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		RecentOrdersLimit: getInt(lookup, "RECENT_ORDERS_LIMIT", defaultRecentOrdersLimit),
	}

	fs := flag.NewFlagSet("dukkan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.StockPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Shared admin password")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.NotifyGatewayURL, "notify-gateway", cfg.NotifyGatewayURL, "WhatsApp gateway base URL (optional)")
	fs.IntVar(&cfg.LowStockThreshold, "low-stock", cfg.LowStockThreshold, "Stock level that triggers low-stock alerts")
	fs.StringVar(&pollIntervalStr, "stock-poll-interval", pollIntervalStr, "Interval between low-stock sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.RecentOrdersLimit, "recent-orders", cfg.RecentOrdersLimit, "Number of recent orders on the dashboard")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StockPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid stock poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.LowStockThreshold < 0 {
		cfg.LowStockThreshold = defaultLowStockThreshold
	}

	if cfg.StockPollInterval <= 0 {
		cfg.StockPollInterval = defaultStockPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.RecentOrdersLimit <= 0 {
		cfg.RecentOrdersLimit = defaultRecentOrdersLimit
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin password must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
