package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{
		tracer: otel.Tracer(name),
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	// Apply internal options to SpanConfig (currently placeholder)
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	// Start OTel span
	ctx, span := t.tracer.Start(ctx, name)

	s := &OTelSpan{span: span}
	s.batch = NewBatchProcessor(DefaultSizeLimit, DefaultTimeLimit, s.emit)
	return ctx, s
}

// EmitPlan signals that a batch of triggers is planned for recomputation by
// adding an event to the current span.
func (t *OTelTracer) EmitPlan(ctx context.Context, triggerNames []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("triggers", triggerNames),
		))
	}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span  trace.Span
	batch *BatchProcessor
}

// End flushes any buffered log writes and completes the span.
func (s *OTelSpan) End() {
	_ = s.batch.Close()
	s.span.End()
}

// RecordError attaches err to the span and marks it as failed.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write satisfies io.Writer by buffering p behind a BatchProcessor, so a
// burst of per-trigger log lines during a recheck collapses into a handful
// of span events instead of one per line.
func (s *OTelSpan) Write(p []byte) (n int, err error) {
	return s.batch.Write(p)
}

// emit is the BatchProcessor's flush callback: it adds one log event per
// flushed batch.
func (s *OTelSpan) emit(p []byte) {
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(p))))
}
