package nlskit

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/nlskit/core/logger"
)

// Observer receives resolution lifecycle events. Implementations feed
// startup performance markers, metrics, or tracing without the resolver
// owning any global state. Both calls happen on the resolving goroutine
// and must be cheap.
type Observer interface {
	// ResolutionStarted fires before any resolution work begins.
	ResolutionStarted(ctx context.Context, traceID string, req Request)

	// ResolutionFinished fires after resolution produced its configuration,
	// default or resolved alike.
	ResolutionFinished(ctx context.Context, traceID string, cfg Configuration, elapsed time.Duration)
}

// NopObserver ignores all events. It is the default observer.
type NopObserver struct{}

func (NopObserver) ResolutionStarted(context.Context, string, Request) {}

func (NopObserver) ResolutionFinished(context.Context, string, Configuration, time.Duration) {}

// LogObserver emits one structured log line per lifecycle event.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an observer that logs lifecycle events.
func NewLogObserver(log *slog.Logger) *LogObserver {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &LogObserver{logger: log}
}

func (o *LogObserver) ResolutionStarted(ctx context.Context, traceID string, req Request) {
	o.logger.LogAttrs(ctx, slog.LevelInfo, "locale resolution started",
		logger.TraceID(traceID),
		logger.Locale(req.UserLocale),
		logger.Commit(req.CommitID))
}

func (o *LogObserver) ResolutionFinished(ctx context.Context, traceID string, cfg Configuration, elapsed time.Duration) {
	o.logger.LogAttrs(ctx, slog.LevelInfo, "locale resolution finished",
		logger.TraceID(traceID),
		logger.Locale(cfg.UserLocale),
		slog.Bool("resolved", cfg.Resolved()),
		logger.PackID(cfg.LanguagePackID),
		slog.Duration("elapsed", elapsed))
}
