package logging

import (
	"io"

	"go.uber.org/multierr"
)

// TeeWriter writes to every writer, a failing writer does not stop the others.
type TeeWriter struct {
	Writers []io.Writer
}

func NewTeeWriter(writers ...io.Writer) *TeeWriter {
	tw := &TeeWriter{}
	for _, w := range writers {
		if w != nil {
			tw.Writers = append(tw.Writers, w)
		}
	}
	return tw
}

// Write returns the number of bytes written by the writers that succeeded,
// and all their errors combined.
func (tw *TeeWriter) Write(p []byte) (n int, err error) {
	for _, w := range tw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
