// Package log provides logger construction for strsize, built on top of
// the standard slog package.
//
// Loggers write to stderr and are quiet by default: only warnings and
// errors are emitted unless verbose mode is enabled. A normal run of
// strsize therefore writes nothing to stderr.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger = logger.With(log.ComponentKey, "reporter")
//	logger.Debug("report derived", "elements", 3)
//
// Use NewJSONLogger for machine-readable logs, and ComponentHandler to tag
// every record emitted through a handler with the component that owns it.
package log
