package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// traceHandler decorates every record with the active trace context so log
// lines can be correlated with spans.
type traceHandler struct {
	slog.Handler
	projectID string
}

func NewHandler(w io.Writer, level slog.Level, projectID string) slog.Handler {
	base := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &traceHandler{
		Handler:   base,
		projectID: projectID,
	}
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := gcpTraceAttrs(ctx, h.projectID); len(attrs) > 0 {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{
		Handler:   h.Handler.WithAttrs(attrs),
		projectID: h.projectID,
	}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{
		Handler:   h.Handler.WithGroup(name),
		projectID: h.projectID,
	}
}

// Setup installs the process-wide default logger.
func Setup(level slog.Level) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	slog.SetDefault(slog.New(NewHandler(os.Stdout, level, projectID)))
}
