// Package logging builds the gateway's slog loggers and carries them through
// request contexts.
package logging

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// MultiHandler fans each record out to every handler enabled for its level.
// The terminal handler and the rolling JSON file are combined this way.
type MultiHandler []slog.Handler

// NewMultiHandler combines handlers, ignoring nil entries.
func NewMultiHandler(handlers ...slog.Handler) MultiHandler {
	return slices.DeleteFunc(slices.Clone(handlers), func(h slog.Handler) bool { return h == nil })
}

// Enabled reports whether any handler accepts level.
func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(m, func(h slog.Handler) bool { return h.Enabled(ctx, level) })
}

// Handle passes a copy of r to each enabled handler and joins their errors.
func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	var errs []error

	for _, h := range m {
		if !h.Enabled(ctx, r.Level) {
			continue
		}

		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	return m.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m MultiHandler) derive(fn func(slog.Handler) slog.Handler) MultiHandler {
	out := make(MultiHandler, len(m))
	for i, h := range m {
		out[i] = fn(h)
	}

	return out
}
