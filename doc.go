// Package nlskit resolves which display language an application instance
// runs in and maintains the on-disk cache of translated message bundles
// behind that decision.
//
// The resolver takes the user's locale preference, the installed language
// pack manifest, and the current build commit, and produces a translation
// configuration: either a resolved language pack with a materialized,
// commit-specific message cache, or the built-in default strings. Resolution
// is total. It never returns an error: every failure is logged once and
// collapses to the default configuration, so localization can never block
// an application from starting.
//
// # Package Organization
//
// The root package exposes the Resolver; focused concerns live in
// subpackages:
//
//	github.com/dmitrymomot/nlskit               - Resolver, Request, Configuration, Observer
//	github.com/dmitrymomot/nlskit/core/langpack - language pack manifest and locale fallback
//	github.com/dmitrymomot/nlskit/core/nlscache - cache tree layout, state checks, cleaner
//	github.com/dmitrymomot/nlskit/core/catalog  - message catalogs, merge, runtime bundle
//	github.com/dmitrymomot/nlskit/core/config   - environment-based configuration loading
//	github.com/dmitrymomot/nlskit/core/logger   - structured logging helpers built on slog
//	github.com/dmitrymomot/nlskit/pkg/async     - future-based async helpers used by the pipeline
//
// # Resolution
//
// A resolution request carries the user and OS locales, the user data
// directory holding languagepacks.json and the cache tree, the build
// commit, and the directory of the build's default NLS metadata:
//
//	resolver := nlskit.New(
//		nlskit.WithLogger(log),
//	)
//
//	cfg := resolver.Resolve(ctx, nlskit.Request{
//		UserLocale:      "fr-CA",
//		OSLocale:        "fr-CA",
//		UserDataPath:    userDataDir,
//		CommitID:        build.Commit,
//		NLSMetadataPath: metadataDir,
//	})
//
//	if cfg.Resolved() {
//		messages := loadMessages(cfg.ResolvedCoreLocation)
//		// ...
//	}
//
// The locale walks from most specific to least specific ("fr-CA", then
// "fr") until an installed pack matches. A matched pack is cached under
// clp/<languagePackID>/<commit>/ in the user data directory; if the cache
// for the current commit already exists it is trusted as-is, otherwise the
// translated message array is rebuilt from the pack's translation files
// and the build's default catalogs, staged, and atomically published.
//
// # Environment Configuration
//
// Processes that resolve once at startup can load the whole request from
// NLS_* environment variables:
//
//	var cfg nlskit.Config
//	config.MustLoad(&cfg)
//
//	resolver := nlskit.NewFromConfig(cfg)
//	nlsConfig := resolver.Resolve(ctx, cfg.Request())
//
// # Observability
//
// An Observer receives started/finished callbacks with a per-resolution
// trace ID; the same ID is attached to every log line of that resolution.
// LogObserver logs lifecycle events through a slog.Logger, NopObserver
// ignores them.
package nlskit
