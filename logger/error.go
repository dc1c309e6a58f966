package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. Loggers configured by
// this package expand them next to the error when it is logged, even after
// further wrapping. Returns nil if err is nil.
//
//	return logger.AnnotateError(err, "path", path)
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	attrs := make([]slog.Attr, 0, r.NumAttrs())

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &annotatedError{err: err, attrs: attrs}
}

type annotatedError struct {
	err   error
	attrs []slog.Attr
}

func (a *annotatedError) Error() string {
	return a.err.Error()
}

func (a *annotatedError) Unwrap() error {
	return a.err
}

// errorHandler expands the attributes of annotated errors into the record.
type errorHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*errorHandler)(nil)

func (h *errorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *errorHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		extra     []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		var annotated *annotatedError

		if err, ok := attr.Value.Any().(error); ok && errors.As(err, &annotated) {
			baseAttrs = append(baseAttrs, slog.Any(attr.Key, err))
			extra = append(extra, annotated.attrs...)

			return true
		}

		baseAttrs = append(baseAttrs, attr)

		return true
	})

	if len(extra) == 0 {
		return h.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(baseAttrs...)
	r.AddAttrs(extra...)

	return h.inner.Handle(ctx, r)
}

func (h *errorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errorHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *errorHandler) WithGroup(name string) slog.Handler {
	return &errorHandler{inner: h.inner.WithGroup(name)}
}
