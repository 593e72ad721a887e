// Package rle implements the run-length wire formats of DjVu separated
// files: the bitonal R4 stream and the color-indexed R6 stream.
//
// Both formats open with an ASCII header ("R4 <width> <height> " or
// "R6 <width> <height> ") followed by binary run data. They are consumed
// by a downstream document encoder and must be reproduced byte for byte;
// the writers here never reorder, buffer across rows, or otherwise
// post-process what the caller emits.
package rle

import (
	"fmt"
	"io"
)

// errWriter wraps an io.Writer with a sticky error so that run emission
// loops stay free of per-write error checks. The first failed write wins;
// later writes are discarded.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(p []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
