package sep

import (
	"io"

	"github.com/maxdatascience/pdf2djvu/internal/rle"
)

// MaskQuantizer emits only the 1-bit foreground mask in the bitonal run
// format; no palette is built. Unlike the paletted variants it does not
// resample backgroundColor: the background comparison runs against the
// caller's incoming value.
type MaskQuantizer struct{}

// Quantize implements Quantizer.
func (MaskQuantizer) Quantize(fg, bg *Pixmap, backgroundColor *RGB, hasForeground, hasBackground *bool, w io.Writer) error {
	if fg == bg {
		*hasBackground = true
		return dummyQuantize(fg.Width(), fg.Height(), backgroundColor, w)
	}
	width, height := fg.Width(), fg.Height()
	r4 := rle.NewR4(w, width, height)
	pFG, pBG := fg.Cursor(), bg.Cursor()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fgPx, bgPx := pFG.RGB(), pBG.RGB()
			updateBackground(backgroundColor, bgPx, hasBackground)
			if classify(fgPx, bgPx, hasForeground) {
				r4.Bit(1)
			} else {
				r4.Bit(0)
			}
			pFG.Next()
			pBG.Next()
		}
		pFG.NextRow()
		pBG.NextRow()
	}
	return r4.Err()
}
