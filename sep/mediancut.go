//go:build !nomediancut

package sep

import (
	"image"
	"image/color"
	"io"
	"sort"
	"sync"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/maxdatascience/pdf2djvu/internal/rle"
)

// MedianCutQuantizer delegates palette construction to the go-quantize
// median-cut backend. Classified foreground pixels are staged in an RGBA
// image with full opacity; everything else stays fully transparent and is
// kept out of the palette by a zero weighting. The resulting stream uses
// the same layout as DefaultQuantizer's output.
type MedianCutQuantizer struct {
	// MaxFGColors bounds the palette size; values outside
	// 1..MaxFGColorsLimit select MaxFGColorsLimit.
	MaxFGColors int
}

// backendInit guards one-time backend setup, kept even though the current
// backend needs none, so a later concurrent caller still has a barrier.
var backendInit sync.Once

func newMedianCutQuantizer(maxFGColors int) (Quantizer, error) {
	backendInit.Do(func() {
		logger().Debug("median-cut quantizer backend enabled")
	})
	return MedianCutQuantizer{MaxFGColors: maxFGColors}, nil
}

// Quantize implements Quantizer.
func (q MedianCutQuantizer) Quantize(fg, bg *Pixmap, backgroundColor *RGB, hasForeground, hasBackground *bool, w io.Writer) error {
	if fg == bg {
		*hasBackground = true
		return dummyQuantize(fg.Width(), fg.Height(), backgroundColor, w)
	}
	maxColors := clampFGColors(q.MaxFGColors)
	width, height := fg.Width(), fg.Height()
	r6 := rle.NewR6(w, width, height)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	pFG, pBG := fg.Cursor(), bg.Cursor()
	*backgroundColor = pBG.RGB()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fgPx, bgPx := pFG.RGB(), pBG.RGB()
			updateBackground(backgroundColor, bgPx, hasBackground)
			if classify(fgPx, bgPx, hasForeground) {
				img.SetRGBA(x, y, color.RGBA{R: fgPx[0], G: fgPx[1], B: fgPx[2], A: 0xff})
			}
			pFG.Next()
			pBG.Next()
		}
		pFG.NextRow()
		pBG.NextRow()
	}

	mcq := quantize.MedianCutQuantizer{
		Aggregation: quantize.Mean,
		// Transparent pixels are background; zero weight keeps them out
		// of the palette.
		Weighting: func(m image.Image, x, y int) uint32 {
			if _, _, _, a := m.At(x, y).RGBA(); a == 0 {
				return 0
			}
			return 1
		},
	}
	pal := mcq.Quantize(make(color.Palette, 0, maxColors), img)

	// Deterministic palette order: ascending packed RGB, duplicates
	// collapsed. An all-background image yields an empty palette from the
	// backend; fall back to the single white entry.
	entries := make([]RGB, 0, len(pal))
	for _, c := range pal {
		r, g, b, _ := c.RGBA()
		entries = append(entries, RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
	}
	sort.Slice(entries, func(i, j int) bool {
		return packRGB(entries[i]) < packRGB(entries[j])
	})
	entries = dedupRGB(entries)
	if len(entries) == 0 {
		entries = append(entries, RGB{0xff, 0xff, 0xff})
	}
	r6.PaletteSize(len(entries))
	lookup := make(color.Palette, len(entries))
	for i, e := range entries {
		r6.Color([3]byte(e))
		lookup[i] = color.RGBA{R: e[0], G: e[1], B: e[2], A: 0xff}
	}

	// Re-derive the run stream from the staged image. Index lookups are
	// memoized per distinct pixel color.
	memo := make(map[RGB]uint32)
	for y := 0; y < height; y++ {
		colorIndex := uint32(rle.NoColorIndex)
		length := uint32(0)
		for x := 0; x < width; x++ {
			px := img.RGBAAt(x, y)
			newColor := uint32(rle.NoColorIndex)
			if px.A != 0 {
				c := RGB{px.R, px.G, px.B}
				index, ok := memo[c]
				if !ok {
					index = uint32(lookup.Index(color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}))
					memo[c] = index
				}
				newColor = index
			}
			if colorIndex == newColor {
				length++
			} else {
				if length > 0 {
					r6.Word(colorIndex, length)
				}
				colorIndex = newColor
				length = 1
			}
		}
		r6.Word(colorIndex, length)
	}
	return r6.Err()
}

func packRGB(c RGB) uint32 {
	return uint32(c[0])<<16 | uint32(c[1])<<8 | uint32(c[2])
}

func dedupRGB(sorted []RGB) []RGB {
	out := sorted[:0]
	for i, c := range sorted {
		if i == 0 || c != sorted[i-1] {
			out = append(out, c)
		}
	}
	return out
}
