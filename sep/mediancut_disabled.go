//go:build nomediancut

package sep

import "io"

// MedianCutQuantizer is a stub: the median-cut backend was excluded at
// build time. Construction through New and every direct call fail with
// ErrNotImplemented before any output is produced.
type MedianCutQuantizer struct {
	MaxFGColors int
}

func newMedianCutQuantizer(int) (Quantizer, error) {
	return nil, ErrNotImplemented
}

// Quantize implements Quantizer.
func (MedianCutQuantizer) Quantize(fg, bg *Pixmap, backgroundColor *RGB, hasForeground, hasBackground *bool, w io.Writer) error {
	return ErrNotImplemented
}
