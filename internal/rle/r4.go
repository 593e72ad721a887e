package rle

import "io"

// maxRunLength is the largest run a single length record can carry.
// Longer runs are split by zero-length runs of the opposite color.
const maxRunLength = 0x3fff

// R4 writes the bitonal run-length format. Each row is a sequence of
// alternating run lengths, starting with a background (0) run; a row that
// opens with a foreground pixel therefore begins with a zero-length run.
// Lengths below 0xC0 take one byte; larger lengths take two bytes,
// 0xC0|(n>>8) then n&0xFF.
//
// R4 keeps a sticky write error; callers check Err once after the last row.
type R4 struct {
	errWriter
	width     int
	x         int
	last      int
	runLength int
}

// NewR4 writes the stream header and returns a writer for a
// width×height bitmap.
func NewR4(w io.Writer, width, height int) *R4 {
	r := &R4{errWriter: errWriter{w: w}, width: width}
	r.printf("R4 %d %d ", width, height)
	return r
}

// Bit appends one pixel, 0 for background and 1 for foreground. Runs are
// flushed on color change and at the end of each row; the row state resets
// so the next row again starts with a background run.
func (r *R4) Bit(b int) {
	if r.last == b {
		r.runLength++
	} else {
		r.Run(r.runLength)
		r.last = b
		r.runLength = 1
	}
	r.x++
	if r.x == r.width {
		r.Run(r.runLength)
		r.x, r.last, r.runLength = 0, 0, 0
	}
}

// Run emits a single run length record. Used directly for rows known to be
// a single run, e.g. the all-background dummy encoding.
func (r *R4) Run(length int) {
	for length > maxRunLength {
		r.emit(maxRunLength)
		r.emit(0)
		length -= maxRunLength
	}
	r.emit(length)
}

func (r *R4) emit(n int) {
	if n < 0xc0 {
		r.write([]byte{byte(n)})
	} else {
		r.write([]byte{0xc0 | byte(n>>8), byte(n)})
	}
}

// Err reports the first write error, if any.
func (r *R4) Err() error { return r.err }
