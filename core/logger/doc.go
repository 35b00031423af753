// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers a small factory for environment-specific logger configuration and a set of
// pre-built attribute helpers for common logging scenarios.
//
// # Features
//
//   - Built on Go's standard slog for compatibility and performance
//   - Environment-specific configurations (development, staging, production)
//   - Colorized console output for development via tint
//   - Attribute helpers for errors, timing, identifiers, and localization metadata
//   - Type-safe attribute creation with nil safety
//
// # Basic Usage
//
// Create loggers using the factory function with various configuration options:
//
//	import "github.com/dmitrymomot/nlskit/core/logger"
//
//	// Create a development logger (colorized console, debug level)
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Create a production logger (JSON, info level)
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Use the logger
//	log.Info("Resolver starting",
//		logger.Component("resolver"),
//		logger.Event("startup"),
//	)
//
// # Environment Configurations
//
// The package provides pre-configured setups for different environments:
//
//	devLogger := logger.New(logger.WithDevelopment("myapp"))
//	stageLogger := logger.New(logger.WithStaging("myapp"))
//	prodLogger := logger.New(logger.WithProduction("myapp"))
//
//	// Custom configuration
//	customLogger := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "nls")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// The helpers return empty attributes for zero values, so they can be passed
// unconditionally:
//
//	log.Error("Cache regeneration failed",
//		logger.Error(err),
//		logger.PackID(packID),
//		logger.Commit(commit),
//		logger.Component("nlscache"),
//	)
//
//	start := time.Now()
//	// ... do work ...
//	log.Info("Resolution finished",
//		logger.Locale("de-ch"),
//		logger.Elapsed(start),
//		logger.Result("success"),
//	)
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
//
// # Global Logger Setup
//
// Set up a global default logger for your application:
//
//	logger.SetAsDefault(logger.New(logger.WithProduction("myapp")))
//	slog.Info("Using global logger", logger.Component("global"))
package logger
