package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees every write to all of its writers, collecting their errors.
type CombinedWriter struct {
	Writers []io.Writer
	Err     error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	cw.Writers = append(cw.Writers, writers...)
	return cw
}

func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
