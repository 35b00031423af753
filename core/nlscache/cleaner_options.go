package nlscache

import (
	"log/slog"
	"time"
)

// CleanerOption is a functional option for configuring a cache cleaner
type CleanerOption func(*cleanerOptions)

type cleanerOptions struct {
	retention       time.Duration
	checkInterval   time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// WithRetention configures how long an unused pack cache tree survives.
// A pack whose newest modification time is older than the retention window
// is removed on the next sweep.
func WithRetention(d time.Duration) CleanerOption {
	return func(o *cleanerOptions) {
		if d > 0 {
			o.retention = d
		}
	}
}

// WithCheckInterval configures how frequently the cleaner sweeps the cache root.
// Shorter intervals reclaim disk sooner but increase filesystem churn.
func WithCheckInterval(d time.Duration) CleanerOption {
	return func(o *cleanerOptions) {
		if d > 0 {
			o.checkInterval = d
		}
	}
}

// WithCleanerShutdownTimeout configures maximum wait time for an active sweep
// during shutdown. The cleaner will wait this long for an in-flight sweep to
// complete before forcing shutdown.
func WithCleanerShutdownTimeout(d time.Duration) CleanerOption {
	return func(o *cleanerOptions) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithCleanerLogger configures structured logging for cleaner operations.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithCleanerLogger(logger *slog.Logger) CleanerOption {
	return func(o *cleanerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
