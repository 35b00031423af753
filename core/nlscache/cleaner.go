package nlscache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultRetention keeps a pack cache for nine weeks after last use.
	DefaultRetention = 63 * 24 * time.Hour

	// DefaultCheckInterval sweeps the cache root once a day.
	DefaultCheckInterval = 24 * time.Hour
)

// Cleaner periodically removes pack cache trees that have gone unused for
// longer than the retention window. It is the reaping process the cache
// manager's freshness touch exists for, and it runs out-of-band: the
// resolution path never consults it.
type Cleaner struct {
	layout    Layout
	retention time.Duration
	interval  time.Duration
	logger    *slog.Logger

	// State management
	ctx             context.Context
	cancel          context.CancelFunc
	ticker          *time.Ticker
	mu              sync.RWMutex
	running         atomic.Bool
	wg              sync.WaitGroup
	shutdownTimeout time.Duration

	// Observability metrics
	packsRemoved atomic.Int64
	activeSweeps atomic.Int32
}

// CleanerStats provides observability metrics for monitoring and debugging
type CleanerStats struct {
	PacksRemoved int64 // Total number of stale pack cache trees removed
	ActiveSweeps int32 // Number of sweep operations currently running
	IsRunning    bool  // Whether the cleaner is currently running
}

// NewCleaner creates a cache cleaner rooted at userDataPath.
func NewCleaner(userDataPath string, opts ...CleanerOption) (*Cleaner, error) {
	if userDataPath == "" {
		return nil, ErrUserDataPathRequired
	}

	options := &cleanerOptions{
		retention:       DefaultRetention,
		checkInterval:   DefaultCheckInterval,
		shutdownTimeout: 30 * time.Second,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Cleaner{
		layout:          NewLayout(userDataPath),
		retention:       options.retention,
		interval:        options.checkInterval,
		shutdownTimeout: options.shutdownTimeout,
		logger:          options.logger,
	}, nil
}

// NewCleanerFromConfig creates a Cleaner from configuration.
// Additional options can override config values.
func NewCleanerFromConfig(cfg Config, userDataPath string, opts ...CleanerOption) (*Cleaner, error) {
	allOpts := append([]CleanerOption{
		WithRetention(cfg.Retention),
		WithCheckInterval(cfg.CheckInterval),
		WithCleanerShutdownTimeout(cfg.ShutdownTimeout),
	}, opts...)

	return NewCleaner(userDataPath, allOpts...)
}

// Start begins periodic sweeping. This is a blocking operation that runs
// until the context is cancelled. Use Run() for errgroup pattern or call
// this in a goroutine.
func (c *Cleaner) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return ErrCleanerAlreadyStarted
	}

	c.ctx, c.cancel = context.WithCancel(ctx)
	c.ticker = time.NewTicker(c.interval)
	c.mu.Unlock()

	c.running.Store(true)

	defer c.ticker.Stop()

	c.logger.InfoContext(c.ctx, "cache cleaner started",
		slog.String("cache_root", c.layout.Root()),
		slog.Duration("retention", c.retention),
		slog.Duration("check_interval", c.interval))

	c.sweepWithWait()

	for {
		select {
		case <-c.ctx.Done():
			c.logger.InfoContext(context.Background(), "cache cleaner stopping")
			c.running.Store(false)
			return c.ctx.Err()
		case <-c.ticker.C:
			c.sweepWithWait()
		}
	}
}

// Stop gracefully shuts down the cleaner with a timeout.
// Returns an error if the shutdown timeout is exceeded.
func (c *Cleaner) Stop() error {
	c.mu.Lock()
	if c.cancel == nil {
		c.mu.Unlock()
		return ErrCleanerNotStarted
	}

	c.running.Store(false)

	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), c.shutdownTimeout)
	defer ctxCancel()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.InfoContext(context.Background(), "cache cleaner stopped cleanly")
		return nil
	case <-ctx.Done():
		c.logger.WarnContext(context.Background(), "cache cleaner shutdown timeout exceeded - sweep may be abandoned",
			slog.Duration("timeout", c.shutdownTimeout))
		return fmt.Errorf("shutdown timeout exceeded after %s", c.shutdownTimeout)
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the cleaner, monitors context cancellation,
// and performs graceful shutdown when the context is cancelled.
func (c *Cleaner) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- c.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			_ = c.Stop() // Ignore stop error in normal shutdown
			<-errCh      // Wait for Start() to exit
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// sweepWithWait is a wrapper around CleanOnce that tracks the operation with WaitGroup
func (c *Cleaner) sweepWithWait() {
	// Mutex protects against shutdown race: Must verify cleaner is still running
	// AND add to waitgroup atomically, otherwise Stop() might wait on incomplete count
	c.mu.RLock()
	if c.cancel == nil {
		c.mu.RUnlock()
		return
	}
	c.wg.Add(1)
	c.mu.RUnlock()

	defer c.wg.Done()

	c.activeSweeps.Add(1)
	defer c.activeSweeps.Add(-1)

	// Use context.Background() to avoid issues during shutdown when c.ctx is cancelled
	if _, err := c.CleanOnce(context.Background()); err != nil {
		c.logger.ErrorContext(context.Background(), "cache sweep failed",
			slog.String("error", err.Error()))
	}
}

// CleanOnce performs a single sweep of the cache root, removing every pack
// cache tree whose last use is older than the retention window. It returns
// the number of pack trees removed. Failures on individual packs are logged
// and do not abort the sweep.
func (c *Cleaner) CleanOnce(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(c.layout.Root())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, errors.Join(ErrCleanupFailed, err)
	}

	cutoff := time.Now().Add(-c.retention)
	removed := 0

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		packPath := filepath.Join(c.layout.Root(), entry.Name())

		lastUsed, ok := c.lastUsed(ctx, packPath)
		if !ok {
			continue
		}

		if lastUsed.After(cutoff) {
			c.discardAbandonedStaging(ctx, packPath, cutoff)
			continue
		}

		if err := os.RemoveAll(packPath); err != nil {
			c.logger.ErrorContext(ctx, "failed to remove stale pack cache",
				slog.String("language_pack_id", entry.Name()),
				slog.String("error", err.Error()))
			continue
		}

		removed++
		c.packsRemoved.Add(1)
		c.logger.InfoContext(ctx, "removed stale pack cache",
			slog.String("language_pack_id", entry.Name()),
			slog.Time("last_used", lastUsed))
	}

	return removed, nil
}

// lastUsed reports when a pack cache tree was last touched: the newest
// modification time among the pack root and its direct children. The hit
// path touches the commit directory, a child, so the root mtime alone
// would undercount recency.
func (c *Cleaner) lastUsed(ctx context.Context, packPath string) (time.Time, bool) {
	info, err := os.Stat(packPath)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to stat pack cache",
			slog.String("path", packPath),
			slog.String("error", err.Error()))
		return time.Time{}, false
	}

	newest := info.ModTime()

	children, err := os.ReadDir(packPath)
	if err != nil {
		return newest, true
	}

	for _, child := range children {
		ci, err := child.Info()
		if err != nil {
			continue
		}
		if ci.ModTime().After(newest) {
			newest = ci.ModTime()
		}
	}

	return newest, true
}

// discardAbandonedStaging removes materialization scratch directories left
// behind by crashed writers. They are never promoted once their writer is
// gone, so anything older than the cutoff inside a live pack tree is garbage.
func (c *Cleaner) discardAbandonedStaging(ctx context.Context, packPath string, cutoff time.Time) {
	children, err := os.ReadDir(packPath)
	if err != nil {
		return
	}

	for _, child := range children {
		if !child.IsDir() || !isStagingEntry(child.Name()) {
			continue
		}

		info, err := child.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(packPath, child.Name())
		if err := os.RemoveAll(path); err != nil {
			c.logger.WarnContext(ctx, "failed to remove abandoned staging directory",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
	}
}

// Stats returns current cleaner statistics for observability and monitoring.
// This method is thread-safe and can be called at any time.
func (c *Cleaner) Stats() CleanerStats {
	c.mu.RLock()
	isRunning := c.cancel != nil
	c.mu.RUnlock()

	return CleanerStats{
		PacksRemoved: c.packsRemoved.Load(),
		ActiveSweeps: c.activeSweeps.Load(),
		IsRunning:    isRunning,
	}
}
