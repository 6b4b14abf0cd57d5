package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"github.com/RastaKolobar/pyre-check/internal/adapters/telemetry"
	"github.com/RastaKolobar/pyre-check/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder. Writes
// to Stdout/Stderr go through a BatchProcessor first: a recheck pass can log
// one line per re-inferred define, and batching those before they reach the
// tape keeps a large batch from turning into one tape write per line.
type Vertex struct {
	vertex *progrock.VertexRecorder
	stdout *telemetry.BatchProcessor
	stderr *telemetry.BatchProcessor
}

func newVertex(v *progrock.VertexRecorder) *Vertex {
	vertex := &Vertex{vertex: v}
	stdout, stderr := v.Stdout(), v.Stderr()
	vertex.stdout = telemetry.NewBatchProcessor(telemetry.DefaultSizeLimit, telemetry.DefaultTimeLimit, func(p []byte) {
		_, _ = stdout.Write(p)
	})
	vertex.stderr = telemetry.NewBatchProcessor(telemetry.DefaultSizeLimit, telemetry.DefaultTimeLimit, func(p []byte) {
		_, _ = stderr.Write(p)
	})
	return vertex
}

// Stdout returns a writer to capture standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.stdout
}

// Stderr returns a writer to capture error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.stderr
}

// Log records a structured log message associated with this vertex.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.stdout, "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished (successfully or with an error),
// flushing any buffered output first so nothing outstanding is lost.
func (v *Vertex) Complete(err error) {
	_ = v.stdout.Close()
	_ = v.stderr.Close()
	v.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
