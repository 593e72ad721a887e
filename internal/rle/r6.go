package rle

import (
	"encoding/binary"
	"io"
)

// NoColorIndex is the reserved run index meaning "no color": the pixel
// belongs to the background layer and carries no palette entry.
const NoColorIndex = 0xfff

// MaxIndex and MaxRunWordLength bound the two fields of a run word.
const (
	MaxIndex         = 0xfff
	MaxRunWordLength = 1<<20 - 1
)

// R6 writes the color run-length format: the ASCII header, an ASCII
// palette-size line, raw RGB palette triples, and per row a sequence of
// 32-bit big-endian words (index<<20)|length.
type R6 struct {
	errWriter
}

// NewR6 writes the stream header and returns a writer for a
// width×height color layer.
func NewR6(w io.Writer, width, height int) *R6 {
	r := &R6{errWriter{w: w}}
	r.printf("R6 %d %d ", width, height)
	return r
}

// PaletteSize writes the palette-size line. It is followed by exactly n
// Color calls.
func (r *R6) PaletteSize(n int) {
	r.printf("%d\n", n)
}

// Color writes one palette entry as a raw RGB triple.
func (r *R6) Color(c [3]byte) {
	r.write(c[:])
}

// Word writes one run record. index must be at most MaxIndex (NoColorIndex
// for background runs) and length in [1, MaxRunWordLength]; bounds are the
// caller's contract, not checked here.
func (r *R6) Word(index, length uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], index<<20|length)
	r.write(buf[:])
}

// Err reports the first write error, if any.
func (r *R6) Err() error { return r.err }
