// Package alert surfaces recoverable failures to operators.
//
// Registry code never returns errors for conditions it can recover from,
// such as missing default light sources. It hands them to a Reporter
// instead, so the operation still succeeds with degraded content.
package alert

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/tabletop/internal/platform/errors"
	"github.com/louisbranch/tabletop/internal/platform/i18n/catalog"
)

// Reporter receives recoverable failures.
type Reporter interface {
	Report(ctx context.Context, err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, err error)

// Report calls f.
func (f ReporterFunc) Report(ctx context.Context, err error) {
	f(ctx, err)
}

// Discard drops every report.
var Discard Reporter = ReporterFunc(func(context.Context, error) {})

// LogReporter logs a localized message for each report.
type LogReporter struct {
	logger *slog.Logger
	bundle *catalog.Bundle
	locale string
}

// NewLogReporter creates a reporter that writes to logger in the given locale.
func NewLogReporter(logger *slog.Logger, locale string) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	bundle := catalog.Default()
	return &LogReporter{
		logger: logger,
		bundle: bundle,
		locale: bundle.Resolve(locale),
	}
}

// Report logs err. Coded errors are rendered through the alerts catalog and
// logged at the level their code's severity implies. The error is also
// recorded on the span in ctx, if any.
func (r *LogReporter) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	code := apperrors.CodeUnknown
	var metadata map[string]string
	if coded, ok := apperrors.As(err); ok {
		code = coded.Code
		metadata = coded.Metadata
	}
	msg := r.bundle.Format(r.locale, string(code), metadata)
	level := slog.LevelError
	if code.Severity() == apperrors.SeverityWarning {
		level = slog.LevelWarn
	}
	attrs := []any{"code", string(code), "error", err}
	span := trace.SpanFromContext(ctx)
	if sc := span.SpanContext(); sc.HasTraceID() {
		attrs = append(attrs, "trace_id", sc.TraceID().String())
	}
	span.RecordError(err)
	r.logger.Log(ctx, level, msg, attrs...)
}

// Recorder keeps reports in memory.
type Recorder struct {
	mu      sync.Mutex
	reports []error
}

// Report records err.
func (r *Recorder) Report(_ context.Context, err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, err)
}

// Reports returns a copy of the recorded errors in arrival order.
func (r *Recorder) Reports() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.reports...)
}

// Codes returns the codes of the recorded errors in arrival order.
func (r *Recorder) Codes() []apperrors.Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]apperrors.Code, 0, len(r.reports))
	for _, err := range r.reports {
		out = append(out, apperrors.CodeOf(err))
	}
	return out
}
