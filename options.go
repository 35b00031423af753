package nlskit

import "log/slog"

// Option configures a Resolver during creation.
type Option func(*Resolver)

// WithLogger sets the structured logger for resolution diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver sets the lifecycle observer notified around each resolution.
func WithObserver(observer Observer) Option {
	return func(r *Resolver) {
		if observer != nil {
			r.observer = observer
		}
	}
}

// WithProduct sets the component id whose translation file a usable pack
// must provide.
func WithProduct(id string) Option {
	return func(r *Resolver) {
		if id != "" {
			r.product = id
		}
	}
}

// WithDevMode forces the default configuration unconditionally, bypassing
// language packs and the cache. Intended for development builds running
// against in-tree strings.
func WithDevMode(enabled bool) Option {
	return func(r *Resolver) {
		r.devMode = enabled
	}
}
