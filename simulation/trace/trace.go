// Package trace provides append-only sinks for per-step per-body state
// records produced by the simulation.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alexanderi96/go-nbody/physics/body"
)

// header is the single header line of the tabular format. Rows follow in
// step-major, body-minor order.
const header = "step,time,body,m,x,y,z,vx,vy,vz"

// Sink receives one record per body per emitted step. Implementations must
// be append-only; I/O failures are returned to the caller and never corrupt
// the simulation state.
type Sink interface {
	// Append writes one row per body for the given step.
	Append(step int, time float64, bodies []body.Body) error
	// Close flushes and releases the sink.
	Close() error
}

// CSVSink writes records as comma-separated lines with fixed precision:
// four decimal digits for scalars, two for masses.
type CSVSink struct {
	w             *bufio.Writer
	file          *os.File
	headerWritten bool
}

// NewCSVSink creates a sink writing to the file at path, truncating any
// existing content.
func NewCSVSink(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("trace: creating %s: %w", path, err)
	}

	return &CSVSink{
		w:    bufio.NewWriter(f),
		file: f,
	}, nil
}

// NewWriterSink creates a sink writing to an arbitrary io.Writer. Close
// flushes the buffer but does not close the underlying writer.
func NewWriterSink(w io.Writer) *CSVSink {
	return &CSVSink{
		w: bufio.NewWriter(w),
	}
}

// Append writes one row per body for the given step. The header line is
// emitted exactly once, before the first row.
func (cs *CSVSink) Append(step int, time float64, bodies []body.Body) error {
	if !cs.headerWritten {
		if _, err := fmt.Fprintln(cs.w, header); err != nil {
			return fmt.Errorf("trace: writing header: %w", err)
		}
		cs.headerWritten = true
	}

	for i, b := range bodies {
		p := b.Position()
		v := b.Velocity()

		_, err := fmt.Fprintf(cs.w, "%d,%.4f,%d,%.2f,%.4f,%.4f,%.4f,%.4f,%.4f,%.4f\n",
			step, time, i, b.Mass(),
			p.X(), p.Y(), p.Z(),
			v.X(), v.Y(), v.Z(),
		)
		if err != nil {
			return fmt.Errorf("trace: writing step %d body %d: %w", step, i, err)
		}
	}

	return nil
}

// Close flushes the buffer and closes the underlying file, if any.
func (cs *CSVSink) Close() error {
	if err := cs.w.Flush(); err != nil {
		return fmt.Errorf("trace: flushing: %w", err)
	}
	if cs.file != nil {
		if err := cs.file.Close(); err != nil {
			return fmt.Errorf("trace: closing: %w", err)
		}
	}
	return nil
}

// Discard is a Sink that drops every record.
type Discard struct{}

// Append drops the records.
func (Discard) Append(step int, time float64, bodies []body.Body) error {
	return nil
}

// Close releases nothing.
func (Discard) Close() error {
	return nil
}
