package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls an attribute out of a context, e.g. the request id
// the API middleware stores. It reports false when the context has none.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler appends extracted attributes to every record it handles.
// An extracted attribute is skipped when the record already carries its key,
// so handlers that log logger.RequestID explicitly do not print it twice.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next. Nil extractors are ignored; with none left
// next is returned unchanged.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	var kept []ContextExtractor
	for _, extract := range extractors {
		if extract != nil {
			kept = append(kept, extract)
		}
	}
	if len(kept) == 0 {
		return next
	}
	return &contextHandler{next: next, extractors: kept}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	var seen map[string]bool
	for _, extract := range h.extractors {
		attr, ok := extract(ctx)
		if !ok {
			continue
		}
		if seen == nil {
			seen = make(map[string]bool, rec.NumAttrs())
			rec.Attrs(func(a slog.Attr) bool {
				seen[a.Key] = true
				return true
			})
		}
		if seen[attr.Key] {
			continue
		}
		seen[attr.Key] = true
		rec.AddAttrs(attr)
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
