// Package output handles writing rendered htmldown output.
// The rendered document is written in one piece and terminated with a
// newline, so a failed conversion never leaves partial output behind.
package output

import (
	"fmt"
	"io"
)

// Writer writes rendered output to an underlying stream.
type Writer struct {
	out io.Writer
}

// New creates a Writer targeting w (usually standard output).
func New(w io.Writer) *Writer {
	return &Writer{out: w}
}

// Write writes data followed by a line terminator.
func (w *Writer) Write(data []byte) error {
	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, data...)
	buf = append(buf, '\n')

	if _, err := w.out.Write(buf); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
