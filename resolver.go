package nlskit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/nlskit/core/catalog"
	"github.com/dmitrymomot/nlskit/core/langpack"
	"github.com/dmitrymomot/nlskit/core/logger"
	"github.com/dmitrymomot/nlskit/core/nlscache"
	"github.com/dmitrymomot/nlskit/pkg/async"
)

const (
	// DefaultProduct is the component id whose translation file a usable
	// pack must carry when no other product id is configured.
	DefaultProduct = "vscode"

	// pseudoLocale short-circuits resolution for placeholder-string testing.
	pseudoLocale = "pseudo"
)

// Resolver decides which localized message bundle an application instance
// uses and maintains the on-disk cache of materialized translations behind
// that decision. It is immutable after construction and safe for concurrent
// use; all per-call state travels in the Request.
type Resolver struct {
	logger   *slog.Logger
	observer Observer
	product  string
	devMode  bool
}

// New creates a resolver with the given options.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
		observer: NopObserver{},
		product:  DefaultProduct,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve determines the translation configuration for one application
// startup. It is total: every outcome, including every internal failure, is
// a usable Configuration. Failures are logged here, once, and collapse to
// the default configuration, so resolution can never block or crash the
// startup sequence it runs in.
func (r *Resolver) Resolve(ctx context.Context, req Request) Configuration {
	traceID := uuid.NewString()
	started := time.Now()

	r.observer.ResolutionStarted(ctx, traceID, req)

	cfg, diag := r.resolve(ctx, traceID, req)
	if diag != nil {
		r.logDiagnostic(ctx, traceID, req.UserLocale, diag)
		cfg = defaultConfiguration(req.UserLocale, req.OSLocale, false)
	}

	r.observer.ResolutionFinished(ctx, traceID, cfg, time.Since(started))

	return cfg
}

// resolve runs the resolution state machine. It returns either a usable
// configuration or the single diagnostic that stopped the pipeline; it
// never returns both.
func (r *Resolver) resolve(ctx context.Context, traceID string, req Request) (Configuration, *Diagnostic) {
	locale := langpack.NormalizeLocale(req.UserLocale)

	// The pseudo-locale asks for marked-up built-in strings, not a pack.
	if locale == pseudoLocale {
		return defaultConfiguration(req.UserLocale, req.OSLocale, true), nil
	}

	// Development builds run on in-tree strings unconditionally.
	if r.devMode {
		return defaultConfiguration(req.UserLocale, req.OSLocale, false), nil
	}

	// Built-in strings already are English; only en and en-US short-circuit,
	// other regional English tags may carry a pack.
	if locale == "" || locale == "en" || locale == "en-us" {
		return defaultConfiguration(req.UserLocale, req.OSLocale, false), nil
	}

	// Without a build id or a data directory there is nothing to cache
	// against, so packs cannot be used.
	if req.CommitID == "" || req.UserDataPath == "" {
		return defaultConfiguration(req.UserLocale, req.OSLocale, false), nil
	}

	manifest, err := langpack.LoadManifest(filepath.Join(req.UserDataPath, langpack.ManifestFile))
	if err != nil {
		switch {
		case errors.Is(err, langpack.ErrManifestNotFound):
			return Configuration{}, absent(StageManifest, err)
		case errors.Is(err, langpack.ErrManifestMalformed):
			return Configuration{}, malformed(StageManifest, err)
		default:
			return Configuration{}, ioFailure(StageManifest, err)
		}
	}

	resolvedLocale, ok := manifest.Resolve(locale)
	if !ok {
		return Configuration{}, absent(StageLookup, nil)
	}

	entry := manifest[resolvedLocale]
	if err := entry.Validate(r.product); err != nil {
		return Configuration{}, malformed(StageValidate, err)
	}

	packID := nlscache.PackID(entry.Hash, resolvedLocale)
	cache := nlscache.New(req.UserDataPath, nlscache.WithManagerLogger(r.logger))
	layout := cache.Layout()

	cfg := Configuration{
		UserLocale:             req.UserLocale,
		OSLocale:               req.OSLocale,
		AvailableLanguages:     map[string]string{"*": resolvedLocale},
		LanguagePackID:         packID,
		TranslationsConfigFile: layout.TranslationsConfigPath(packID),
		CacheRoot:              layout.PackRoot(packID),
		ResolvedCoreLocation:   layout.CommitDir(packID, req.CommitID),
		CorruptedFile:          layout.CorruptedMarkerPath(packID),
	}

	status, err := cache.Check(ctx, packID, req.CommitID)
	if err != nil {
		return Configuration{}, ioFailure(StageCacheCheck, err)
	}

	switch status {
	case nlscache.StatusHit:
		r.logger.LogAttrs(ctx, slog.LevelDebug, "translation cache hit",
			logger.TraceID(traceID),
			logger.PackID(packID),
			logger.Commit(req.CommitID))
		return cfg, nil
	case nlscache.StatusPurged:
		r.logDiagnostic(ctx, traceID, req.UserLocale, corruption(StageCacheCheck, nil))
	}

	if diag := r.materialize(ctx, traceID, cache, packID, entry.Translations, req); diag != nil {
		return Configuration{}, diag
	}

	return cfg, nil
}

// materialize builds the ordered translated message array for one pack and
// commit and persists it together with the pack's translations mapping. The
// staging directory creation and the three catalog loads run concurrently;
// the two output writes run concurrently; the commit directory appears only
// after everything else succeeded.
func (r *Resolver) materialize(ctx context.Context, traceID string, cache *nlscache.Manager, packID string, translations map[string]string, req Request) *Diagnostic {
	// Entry validation already proved the product translation is present.
	translationPath := translations[r.product]

	stagingFuture := async.Async(ctx, req.CommitID, func(_ context.Context, commit string) (*nlscache.Staging, error) {
		return cache.NewStaging(packID, commit)
	})
	keysFuture := async.Async(ctx, filepath.Join(req.NLSMetadataPath, catalog.KeysFile), func(_ context.Context, path string) (catalog.KeysDocument, error) {
		return catalog.LoadKeys(path)
	})
	defaultsFuture := async.Async(ctx, filepath.Join(req.NLSMetadataPath, catalog.MessagesFile), func(_ context.Context, path string) ([]string, error) {
		return catalog.LoadMessages(path)
	})
	translationsFuture := async.Async(ctx, translationPath, func(_ context.Context, path string) (catalog.Translations, error) {
		return catalog.LoadTranslations(path)
	})

	staging, stagingErr := stagingFuture.Await()
	keys, keysErr := keysFuture.Await()
	defaults, defaultsErr := defaultsFuture.Await()
	packTranslations, translationsErr := translationsFuture.Await()

	if stagingErr != nil {
		return ioFailure(StageMaterialize, stagingErr)
	}

	for _, loadErr := range []error{keysErr, defaultsErr, translationsErr} {
		if loadErr != nil {
			staging.Discard()
			return catalogFailure(loadErr)
		}
	}

	messages, err := catalog.Merge(keys, defaults, packTranslations)
	if err != nil {
		staging.Discard()
		return catalogFailure(err)
	}

	writeMessages := async.Exec(ctx, messages, func(_ context.Context, msgs []string) error {
		return staging.WriteMessages(msgs)
	})
	writeTranslations := async.Exec(ctx, translations, func(_ context.Context, t map[string]string) error {
		return cache.WriteTranslationsConfig(packID, t)
	})

	if err := async.ExecAll(writeMessages, writeTranslations); err != nil {
		staging.Discard()
		return ioFailure(StageMaterialize, err)
	}

	if err := staging.Promote(); err != nil {
		return ioFailure(StageMaterialize, err)
	}

	r.logger.LogAttrs(ctx, slog.LevelInfo, "materialized translation cache",
		logger.TraceID(traceID),
		logger.PackID(packID),
		logger.Commit(req.CommitID),
		logger.Count("messages", len(messages)))

	return nil
}

// catalogFailure classifies a catalog load or merge error by the taxonomy:
// structurally bad input is malformed, everything else is an I/O failure.
func catalogFailure(err error) *Diagnostic {
	if errors.Is(err, catalog.ErrMalformed) || errors.Is(err, catalog.ErrCountMismatch) {
		return malformed(StageMaterialize, err)
	}
	return ioFailure(StageMaterialize, err)
}

// logDiagnostic is the single logging point of the resolution pipeline:
// one line per diagnostic, level by kind.
func (r *Resolver) logDiagnostic(ctx context.Context, traceID, locale string, d *Diagnostic) {
	msg := "falling back to default configuration"
	if d.Kind == KindCorruption {
		msg = "corrupted translation cache discarded"
	}

	r.logger.LogAttrs(ctx, d.Kind.level(), msg,
		logger.TraceID(traceID),
		logger.Locale(locale),
		slog.String("stage", string(d.Stage)),
		slog.String("kind", d.Kind.String()),
		logger.Error(d.Err))
}
