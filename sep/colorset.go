package sep

import "math/bits"

// colorSet tracks which of the 2^18 Rgb18 keys occur in an image. It is a
// plain bit vector (32 KiB) so that membership tests inside the pixel scan
// stay a single mask, and iteration is naturally in ascending key order —
// the order palette entries must be emitted in.
type colorSet [rgb18Space / 64]uint64

func newColorSet() *colorSet {
	return new(colorSet)
}

func (s *colorSet) has(c Rgb18) bool {
	return s[c>>6]&(1<<(uint(c)&63)) != 0
}

func (s *colorSet) add(c Rgb18) {
	s[c>>6] |= 1 << (uint(c) & 63)
}

func (s *colorSet) clear() {
	*s = colorSet{}
}

// forEach visits the present keys in ascending numeric order until fn
// returns false.
func (s *colorSet) forEach(fn func(Rgb18) bool) {
	for w, word := range s {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			if !fn(Rgb18(w<<6 + b)) {
				return
			}
			word &= word - 1
		}
	}
}
