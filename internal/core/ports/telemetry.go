package ports

import (
	"context"
	"io"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans around a recheck run.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals that a batch of triggers is planned for recomputation.
	EmitPlan(ctx context.Context, triggerNames []string)
}

// Span represents a unit of work, typically one layer's update or one
// recheck invocation.
type Span interface {
	io.Writer
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct{}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// Telemetry records per-vertex progress — one vertex per layer update or
// per recheck invocation — independent of the Tracer/Span pair above, which
// targets distributed tracing backends rather than a live progress display.
type Telemetry interface {
	// Record starts recording a new vertex under name.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded unit of progress: one layer update, one
// collected_map_reduce chunk, or the recheck call as a whole.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	// Log records a structured log message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
	// Cached marks the vertex as a cache hit — used when a layer's get
	// returns a memoized value rather than recomputing.
	Cached()
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	Cached bool
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

type vertexContextKey struct{}

// ContextWithVertex attaches v to ctx so nested Record calls can discover
// their parent without threading a Vertex through every function signature.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext retrieves the Vertex attached by ContextWithVertex, if
// any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexContextKey{}).(Vertex)
	return v, ok
}
