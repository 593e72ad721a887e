package sep

// Rgb18 packs an 8-bit RGB triple into an 18-bit key by dropping each
// channel's low two bits: red occupies bits 0-5, green 6-11, blue 12-17.
// The distinguished NoColor value stands for a background pixel that
// carries no color of its own.
type Rgb18 int32

// NoColor marks a background (transparent) pixel in run records and
// color maps.
const NoColor Rgb18 = -1

// rgb18Space is the size of the Rgb18 key space.
const rgb18Space = 1 << 18

// MakeRgb18 packs an 8-bit triple.
func MakeRgb18(c RGB) Rgb18 {
	return Rgb18(int32(c[0]>>2) | int32(c[1]>>2)<<6 | int32(c[2]>>2)<<12)
}

// Channel reconstructs the approximate 8-bit value of channel i
// (0 red, 1 green, 2 blue): the stored high six bits, with the channel's
// top two bits replicated into the two lost low bits.
func (c Rgb18) Channel(i int) int {
	return int(((c>>(6*uint(i)))<<2)&0xff | (c>>(6*uint(i)+4))&3)
}

// RGB expands the key back to its approximate 8-bit triple.
func (c Rgb18) RGB() RGB {
	return RGB{uint8(c.Channel(0)), uint8(c.Channel(1)), uint8(c.Channel(2))}
}

// Reduce maps the color onto a coarser grid controlled by the divisor k:
// each channel is bucketed into one of ceil(256/k) levels and the bucket
// is stretched back over the full 8-bit range. Larger k collapses more
// colors onto the same key.
func (c Rgb18) Reduce(k int) Rgb18 {
	const n = 1 << 8
	levels := (n + k - 1) / k
	if levels < 2 {
		// A single bucket per channel: every color collapses to black.
		// Keeps the reduction search convergent for very small palette
		// bounds, where the bucket count can no longer shrink otherwise.
		return Rgb18(0)
	}
	var out RGB
	for i := 0; i < 3; i++ {
		m := c.Channel(i) * levels / n
		out[i] = uint8((n - 1) * m / (levels - 1))
	}
	return MakeRgb18(out)
}
