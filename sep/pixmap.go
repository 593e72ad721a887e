package sep

import "image"

// RGB is an 8-bit-per-channel color triple in red, green, blue order.
type RGB [3]uint8

// Pixmap is a read-only, row-major RGB pixel buffer handed over by the
// rendering layer. Quantizers borrow it for the duration of one call and
// never modify or retain it. Two calls may pass the same *Pixmap for both
// renderings; pointer identity is what triggers the identical-image fast
// path.
type Pixmap struct {
	width  int
	height int
	stride int
	pix    []uint8 // 3 bytes per pixel
}

// NewPixmap allocates a black width×height pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		stride: width * 3,
		pix:    make([]uint8, width*height*3),
	}
}

// FromImage copies an image into a fresh Pixmap, dropping any alpha
// channel. It bridges rendering layers that produce stdlib images.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	p := NewPixmap(b.Dx(), b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			p.pix[i+0] = uint8(r >> 8)
			p.pix[i+1] = uint8(g >> 8)
			p.pix[i+2] = uint8(bl >> 8)
			i += 3
		}
	}
	return p
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.height }

// SetRGB sets one pixel. It exists for producers filling a pixmap before
// handing it to a quantizer; quantizers themselves never write.
func (p *Pixmap) SetRGB(x, y int, c RGB) {
	i := y*p.stride + x*3
	p.pix[i+0] = c[0]
	p.pix[i+1] = c[1]
	p.pix[i+2] = c[2]
}

// Cursor returns a cursor positioned on the first pixel of the first row.
func (p *Pixmap) Cursor() *Cursor {
	return &Cursor{p: p}
}

// Cursor walks a Pixmap one pixel at a time. Next moves within the
// current row; NextRow jumps to the start of the following row. The split
// mirrors how the scan loops advance: width Next calls, then one NextRow.
type Cursor struct {
	p   *Pixmap
	off int
	row int
}

// RGB returns the pixel under the cursor.
func (c *Cursor) RGB() RGB {
	pix := c.p.pix[c.off:]
	return RGB{pix[0], pix[1], pix[2]}
}

// Next advances to the next pixel of the current row.
func (c *Cursor) Next() {
	c.off += 3
}

// NextRow moves the cursor to the first pixel of the next row.
func (c *Cursor) NextRow() {
	c.row += c.p.stride
	c.off = c.row
}
