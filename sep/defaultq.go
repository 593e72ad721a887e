package sep

import (
	"io"

	"github.com/maxdatascience/pdf2djvu/internal/rle"
)

// DefaultQuantizer builds an adaptive palette. One full scan collects the
// set of distinct Rgb18 keys and a run-length-compressed copy of every
// row, so pixels are never rescanned. If the distinct-color count exceeds
// MaxFGColors, a divisor search coarsens the color grid until the reduced
// palette fits.
type DefaultQuantizer struct {
	// MaxFGColors bounds the palette size; values outside
	// 1..MaxFGColorsLimit select MaxFGColorsLimit.
	MaxFGColors int
}

// colorRun is one maximal same-key span of a scanline. The key is the
// original (unreduced) Rgb18, or NoColor for background spans.
type colorRun struct {
	color  Rgb18
	length uint32
}

// Quantize implements Quantizer.
func (q DefaultQuantizer) Quantize(fg, bg *Pixmap, backgroundColor *RGB, hasForeground, hasBackground *bool, w io.Writer) error {
	if fg == bg {
		*hasBackground = true
		return dummyQuantize(fg.Width(), fg.Height(), backgroundColor, w)
	}
	maxColors := clampFGColors(q.MaxFGColors)
	width, height := fg.Width(), fg.Height()
	r6 := rle.NewR6(w, width, height)
	pFG, pBG := fg.Cursor(), bg.Cursor()
	colorCount := 0
	originalColors := newColorSet()
	runs := make([][]colorRun, height)
	*backgroundColor = pBG.RGB()
	for y := 0; y < height; y++ {
		run := colorRun{color: NoColor}
		for x := 0; x < width; x++ {
			fgPx, bgPx := pFG.RGB(), pBG.RGB()
			updateBackground(backgroundColor, bgPx, hasBackground)
			newColor := NoColor
			if classify(fgPx, bgPx, hasForeground) {
				newColor = MakeRgb18(fgPx)
				if !originalColors.has(newColor) {
					colorCount++
					originalColors.add(newColor)
				}
			}
			if run.color == newColor {
				run.length++
			} else {
				if run.length > 0 {
					runs[y] = append(runs[y], run)
				}
				run = colorRun{color: newColor, length: 1}
			}
			pFG.Next()
			pBG.Next()
		}
		pFG.NextRow()
		pBG.NextRow()
		if run.length > 0 {
			runs[y] = append(runs[y], run)
		}
	}

	// Find an appropriate palette. Raising the divisor coarsens the
	// channel buckets, so the distinct reduced-color count eventually
	// drops under the limit. The enumeration breaks off as soon as the
	// count alone proves another pass is needed; such a partial set is
	// only ever counted, never emitted.
	quantizedColors := newColorSet()
	divisor := 4
	for colorCount > maxColors {
		newCount := 0
		quantizedColors.clear()
		divisor++
		originalColors.forEach(func(c Rgb18) bool {
			reduced := c.Reduce(divisor)
			if !quantizedColors.has(reduced) {
				quantizedColors.add(reduced)
				newCount++
				if newCount > maxColors {
					return false
				}
			}
			return true
		})
		colorCount = newCount
		logger().Debug("palette reduction pass", "divisor", divisor, "colors", colorCount)
	}
	if divisor == 4 {
		quantizedColors = originalColors
	}

	// Palette block, entries in ascending Rgb18 order. An image with no
	// foreground colors still needs a non-empty palette.
	if colorCount == 0 {
		r6.PaletteSize(1)
		r6.Color([3]byte{0xff, 0xff, 0xff})
	} else {
		r6.PaletteSize(colorCount)
		quantizedColors.forEach(func(c Rgb18) bool {
			r6.Color([3]byte(c.RGB()))
			return true
		})
	}

	// Map original keys to output indices. After a reduction, each
	// original color goes through its reduced representative.
	colorMap := map[Rgb18]uint32{NoColor: rle.NoColorIndex}
	if divisor == 4 {
		next := uint32(0)
		originalColors.forEach(func(c Rgb18) bool {
			colorMap[c] = next
			next++
			return true
		})
	} else {
		quantizedIndex := make(map[Rgb18]uint32, colorCount)
		next := uint32(0)
		quantizedColors.forEach(func(c Rgb18) bool {
			quantizedIndex[c] = next
			next++
			return true
		})
		originalColors.forEach(func(c Rgb18) bool {
			colorMap[c] = quantizedIndex[c.Reduce(divisor)]
			return true
		})
	}

	// Replay the captured runs; no second pixel scan.
	for y := 0; y < height; y++ {
		for _, run := range runs[y] {
			r6.Word(colorMap[run.color], run.length)
		}
	}
	return r6.Err()
}
