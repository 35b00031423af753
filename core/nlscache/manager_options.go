package nlscache

import "log/slog"

// ManagerOption is a functional option for configuring a cache manager
type ManagerOption func(*managerOptions)

type managerOptions struct {
	logger *slog.Logger
}

// WithManagerLogger configures structured logging for cache operations.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(o *managerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
