package sep

import (
	"io"

	"github.com/maxdatascience/pdf2djvu/internal/rle"
)

// WebSafeQuantizer maps every foreground pixel onto the fixed 216-entry
// web palette: six levels per channel at 0, 51, 102, 153, 204, 255. The
// full palette is emitted whether or not all entries are used.
type WebSafeQuantizer struct{}

// webSafeIndex buckets a foreground pixel into the web palette. The
// bucket width is 43 while the palette spacing is 51; the mismatch is
// part of the wire contract and must not be corrected.
func webSafeIndex(c RGB) uint32 {
	return uint32((int(c[2])+1)/43 + 6*((int(c[1])+1)/43+6*((int(c[0])+1)/43)))
}

// writeWebPalette emits the 216-entry palette block in r-major order.
func writeWebPalette(r6 *rle.R6) {
	r6.PaletteSize(216)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				r6.Color([3]byte{uint8(51 * r), uint8(51 * g), uint8(51 * b)})
			}
		}
	}
}

// Quantize implements Quantizer.
func (WebSafeQuantizer) Quantize(fg, bg *Pixmap, backgroundColor *RGB, hasForeground, hasBackground *bool, w io.Writer) error {
	if fg == bg {
		*hasBackground = true
		return dummyQuantize(fg.Width(), fg.Height(), backgroundColor, w)
	}
	width, height := fg.Width(), fg.Height()
	r6 := rle.NewR6(w, width, height)
	writeWebPalette(r6)
	pFG, pBG := fg.Cursor(), bg.Cursor()
	*backgroundColor = pBG.RGB()
	for y := 0; y < height; y++ {
		color := uint32(rle.NoColorIndex)
		length := uint32(0)
		for x := 0; x < width; x++ {
			fgPx, bgPx := pFG.RGB(), pBG.RGB()
			updateBackground(backgroundColor, bgPx, hasBackground)
			var newColor uint32
			if classify(fgPx, bgPx, hasForeground) {
				newColor = webSafeIndex(fgPx)
			} else {
				newColor = rle.NoColorIndex
			}
			if color == newColor {
				length++
			} else {
				if length > 0 {
					r6.Word(color, length)
				}
				color = newColor
				length = 1
			}
			pFG.Next()
			pBG.Next()
		}
		pFG.NextRow()
		pBG.NextRow()
		// The trailing run is flushed even when no color change ended it.
		r6.Word(color, length)
	}
	return r6.Err()
}
