package log

import (
	"context"
	"io"
	"log/slog"
)

// ComponentKey is the attribute key that names the component emitting a record.
const ComponentKey = "component"

// ComponentHandler wraps an slog.Handler and tags every record with a
// top-level component attribute. The attribute is attached once, before
// any group is opened, so WithGroup never nests it.
type ComponentHandler struct {
	// handler is the underlying slog handler, already carrying the tag.
	handler slog.Handler

	// component is the value of the ComponentKey attribute.
	component string
}

// NewComponentHandler creates a ComponentHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
// An empty component adds no attribute.
func NewComponentHandler(handler slog.Handler, component string) *ComponentHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if component != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String(ComponentKey, component)})
	}
	return &ComponentHandler{handler: handler, component: component}
}

// Component returns the name the handler tags records with.
func (h *ComponentHandler) Component() string {
	return h.component
}

// Enabled reports whether the handler handles records at the given level.
func (h *ComponentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle passes the record to the underlying handler.
func (h *ComponentHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *ComponentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ComponentHandler{handler: h.handler.WithAttrs(attrs), component: h.component}
}

// WithGroup returns a new handler with the given group name.
func (h *ComponentHandler) WithGroup(name string) slog.Handler {
	return &ComponentHandler{handler: h.handler.WithGroup(name), component: h.component}
}

// level maps the verbose flag to a minimum log level.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a new slog.Logger writing text records to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewJSONLogger creates a new slog.Logger writing JSON records to w.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ForComponent returns a logger whose records carry the given component name.
func ForComponent(logger *slog.Logger, component string) *slog.Logger {
	return slog.New(NewComponentHandler(logger.Handler(), component))
}
