package lintfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultOutputFilename is used when the configured output is a directory.
const DefaultOutputFilename = "lintfmt_report.txt"

// Destination is the single, exclusively-owned output of a run. It is
// opened once, written incrementally, flushed after each file's report, and
// closed exactly once at run end regardless of how many files were
// processed or whether rendering failed along the way.
type Destination struct {
	buf    *bufio.Writer
	closer io.Closer
	closed bool
}

// Stdout returns a destination writing to standard output. Closing it
// flushes but does not close the underlying stream.
func Stdout() *Destination {
	return &Destination{buf: bufio.NewWriter(os.Stdout)}
}

// FromWriter wraps an already-open stream the caller owns. Closing the
// destination flushes without closing the stream.
func FromWriter(w io.Writer) *Destination {
	return &Destination{buf: bufio.NewWriter(w)}
}

// OpenDestination resolves the configured output location. An empty string
// or "-" selects standard output; a directory gets DefaultOutputFilename
// created inside it; any other path is created as a file, truncating
// existing contents. Resolution failure is fatal to the run and is
// propagated to the caller.
func OpenDestination(out string) (*Destination, error) {
	if out == "" || out == "-" {
		return Stdout(), nil
	}

	out = expandUser(os.ExpandEnv(out))
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		out = filepath.Join(out, DefaultOutputFilename)
	}

	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("opening report output %s: %w", out, err)
	}
	return &Destination{buf: bufio.NewWriter(f), closer: f}, nil
}

// Write implements io.Writer.
func (d *Destination) Write(p []byte) (int, error) {
	return d.buf.Write(p)
}

// Flush pushes buffered output through to the underlying stream.
func (d *Destination) Flush() error {
	return d.buf.Flush()
}

// Close flushes and releases the destination. Only the first call has an
// effect; owned files are closed, caller-owned streams are left open.
func (d *Destination) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	err := d.buf.Flush()
	if d.closer != nil {
		if cerr := d.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
