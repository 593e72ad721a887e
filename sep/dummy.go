package sep

import (
	"io"

	"github.com/maxdatascience/pdf2djvu/internal/rle"
)

// dummyQuantize emits the trivial bitonal encoding: one all-background
// run per row. The background color is forced to pure white. Shared by
// DummyQuantizer and by every variant's identical-image fast path.
func dummyQuantize(width, height int, backgroundColor *RGB, w io.Writer) error {
	r4 := rle.NewR4(w, width, height)
	for y := 0; y < height; y++ {
		r4.Run(width)
	}
	*backgroundColor = RGB{0xff, 0xff, 0xff}
	return r4.Err()
}

// DummyQuantizer encodes every pixel as background without inspecting
// either rendering. It never raises hasForeground.
type DummyQuantizer struct{}

// Quantize implements Quantizer.
func (DummyQuantizer) Quantize(fg, bg *Pixmap, backgroundColor *RGB, hasForeground, hasBackground *bool, w io.Writer) error {
	*hasBackground = true
	return dummyQuantize(fg.Width(), fg.Height(), backgroundColor, w)
}
