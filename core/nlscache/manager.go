package nlscache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/nlskit/pkg/async"
)

// Status reports the outcome of a cache state check.
type Status int

const (
	// StatusMiss means no usable cache entry exists and materialization is required.
	StatusMiss Status = iota
	// StatusHit means the commit directory exists and its contents can be reused as-is.
	StatusHit
	// StatusPurged means the corruption sentinel was found and the pack cache tree
	// was removed; materialization is required.
	StatusPurged
)

// String returns a human-readable status name for logging.
func (s Status) String() string {
	switch s {
	case StatusHit:
		return "hit"
	case StatusPurged:
		return "purged"
	default:
		return "miss"
	}
}

// Manager owns the translation cache tree under a user data directory.
// It answers whether a previously materialized entry can be reused,
// recovers from marked corruption, persists cache metadata, and stamps
// reused entries with a freshness touch for the cleaner.
//
// A Manager performs no cross-process locking. Concurrent regeneration
// of the same pack and commit is tolerated because materialized output
// is deterministic and promotion into place is a single rename.
type Manager struct {
	layout Layout
	logger *slog.Logger
}

// New creates a cache manager rooted at userDataPath.
func New(userDataPath string, opts ...ManagerOption) *Manager {
	options := &managerOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Manager{
		layout: NewLayout(userDataPath),
		logger: options.logger,
	}
}

// Layout exposes the path layout the manager operates on.
func (m *Manager) Layout() Layout {
	return m.layout
}

// Check determines whether the cache entry for the given pack and commit
// can be reused. A corruption sentinel always forces regeneration: the
// pack cache tree is removed best-effort first, and a removal failure is
// logged rather than returned because the subsequent materialization will
// surface the unwritable filesystem on its own.
//
// On a hit the commit directory's modification time is refreshed in a
// detached background task; resolution never waits on or fails from it.
// The returned error is non-nil only when the cache state itself could
// not be determined, in which case Status is StatusMiss and the caller
// should fall back to the default configuration.
func (m *Manager) Check(ctx context.Context, packID, commit string) (Status, error) {
	marker := m.layout.CorruptedMarkerPath(packID)
	if _, err := os.Stat(marker); err == nil {
		if err := m.PurgePack(packID); err != nil {
			m.logger.ErrorContext(ctx, "failed to remove corrupted pack cache",
				slog.String("language_pack_id", packID),
				slog.String("error", err.Error()))
		}
		return StatusPurged, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return StatusMiss, errors.Join(ErrCacheCheck, err)
	}

	dir := m.layout.CommitDir(packID, commit)
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return StatusMiss, nil
		}
		return StatusMiss, errors.Join(ErrCacheCheck, err)
	}

	if !info.IsDir() {
		// A regular file where the commit directory belongs would block
		// promotion forever, so clear it and regenerate.
		if err := os.Remove(dir); err != nil {
			m.logger.WarnContext(ctx, "failed to remove stray file at commit path",
				slog.String("path", dir),
				slog.String("error", err.Error()))
		}
		return StatusMiss, nil
	}

	async.Exec(context.WithoutCancel(ctx), dir, func(ctx context.Context, path string) error {
		now := time.Now()
		if err := os.Chtimes(path, now, now); err != nil {
			m.logger.DebugContext(ctx, "cache freshness touch failed",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
		return nil
	})

	return StatusHit, nil
}

// Touch refreshes the modification time of a commit directory so the
// cleaner treats the pack as recently used.
func (m *Manager) Touch(packID, commit string) error {
	now := time.Now()
	if err := os.Chtimes(m.layout.CommitDir(packID, commit), now, now); err != nil {
		return errors.Join(ErrTouchFailed, err)
	}
	return nil
}

// MarkCorrupted drops the corruption sentinel into a pack's cache root.
// The next Check for that pack discards the whole tree and regenerates.
// This is the write side of the sentinel protocol; the resolution path
// only ever reads it.
func (m *Manager) MarkCorrupted(packID string) error {
	if err := os.MkdirAll(m.layout.PackRoot(packID), 0o755); err != nil {
		return errors.Join(ErrMarkCorrupted, err)
	}
	if err := os.WriteFile(m.layout.CorruptedMarkerPath(packID), nil, 0o644); err != nil {
		return errors.Join(ErrMarkCorrupted, err)
	}
	return nil
}

// Corrupted reports whether a pack's cache tree carries the corruption sentinel.
func (m *Manager) Corrupted(packID string) (bool, error) {
	if _, err := os.Stat(m.layout.CorruptedMarkerPath(packID)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Join(ErrCacheCheck, err)
	}
	return true, nil
}

// PurgePack removes a pack's entire cache tree, including every commit
// directory beneath it. Removing a pack that has no cache tree is a no-op.
func (m *Manager) PurgePack(packID string) error {
	if err := os.RemoveAll(m.layout.PackRoot(packID)); err != nil {
		return errors.Join(ErrPurgeFailed, err)
	}
	return nil
}

// WriteTranslationsConfig persists the pack's component-to-translation-file
// mapping at the pack cache root, where downstream tooling reads it without
// going back to the language pack manifest.
func (m *Manager) WriteTranslationsConfig(packID string, translations map[string]string) error {
	if err := os.MkdirAll(m.layout.PackRoot(packID), 0o755); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return writeJSONAtomic(m.layout.TranslationsConfigPath(packID), translations)
}

// ReadTranslationsConfig loads the persisted component-to-translation-file
// mapping for a pack.
func (m *Manager) ReadTranslationsConfig(packID string) (map[string]string, error) {
	data, err := os.ReadFile(m.layout.TranslationsConfigPath(packID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrTranslationsConfigNotFound, err)
		}
		return nil, errors.Join(ErrTranslationsConfigUnreadable, err)
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return nil, errors.Join(ErrTranslationsConfigMalformed, err)
	}
	return translations, nil
}
