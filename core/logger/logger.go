package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type format int

const (
	formatText format = iota
	formatJSON
	formatConsole
)

type config struct {
	level          slog.Level
	output         io.Writer
	format         format
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
}

// Option configures the logger created by New.
type Option func(*config)

// WithLevel sets the minimum level the logger records.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput redirects log output to the given writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithJSONFormatter switches the logger to JSON output.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = formatJSON
	}
}

// WithTextFormatter switches the logger to logfmt-style text output.
func WithTextFormatter() Option {
	return func(c *config) {
		c.format = formatText
	}
}

// WithConsoleFormatter switches the logger to colorized console output,
// intended for interactive terminals during development.
func WithConsoleFormatter() Option {
	return func(c *config) {
		c.format = formatConsole
	}
}

// WithAttr attaches attributes to every record the logger emits.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithHandlerOptions overrides the slog handler options for text and JSON output.
// The level configured via WithLevel still applies unless the options set their own.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		c.handlerOptions = opts
	}
}

// WithDevelopment configures a colorized console logger at debug level,
// tagged with the application name.
func WithDevelopment(app string) Option {
	return func(c *config) {
		c.format = formatConsole
		c.level = slog.LevelDebug
		if app != "" {
			c.attrs = append(c.attrs, slog.String("app", app))
		}
	}
}

// WithStaging configures a JSON logger at debug level, tagged with the application name.
func WithStaging(app string) Option {
	return func(c *config) {
		c.format = formatJSON
		c.level = slog.LevelDebug
		if app != "" {
			c.attrs = append(c.attrs, slog.String("app", app))
		}
	}
}

// WithProduction configures a JSON logger at info level, tagged with the application name.
func WithProduction(app string) Option {
	return func(c *config) {
		c.format = formatJSON
		c.level = slog.LevelInfo
		if app != "" {
			c.attrs = append(c.attrs, slog.String("app", app))
		}
	}
}

// New creates a slog.Logger from the given options.
// Without options it logs text records at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
		format: formatText,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: cfg.level}
	}

	var handler slog.Handler
	switch cfg.format {
	case formatJSON:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	case formatConsole:
		handler = tint.NewHandler(cfg.output, &tint.Options{
			Level:      cfg.level,
			TimeFormat: time.Kitchen,
		})
	default:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}

// SetAsDefault installs the logger as the process-wide slog default.
func SetAsDefault(log *slog.Logger) {
	slog.SetDefault(log)
}
