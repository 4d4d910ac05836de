package observability

import (
	"context"
	"log/slog"
)

var _ slog.Handler = noopHandler{}

// NewNoopLogger returns an slog.Logger that discards every record.  It's
// the default logger for types that accept a WithLogger option.
func NewNoopLogger() *slog.Logger {
	return slog.New(noopHandler{})
}

type noopHandler struct{}

func (noopHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (noopHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (h noopHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h noopHandler) WithGroup(_ string) slog.Handler {
	return h
}
