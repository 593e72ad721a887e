package sep

import (
	"bytes"
	"strconv"
	"testing"
)

// Test-only decoders for the two wire formats. The shipped package is
// encode-only; these exist to verify the emitted streams.

func splitHeader(t *testing.T, data []byte, magic string) (width, height int, rest []byte) {
	t.Helper()
	parts := bytes.SplitN(data, []byte(" "), 4)
	if len(parts) != 4 || string(parts[0]) != magic {
		t.Fatalf("missing %s header in % x", magic, data)
	}
	width, err := strconv.Atoi(string(parts[1]))
	if err != nil {
		t.Fatalf("bad width %q: %v", parts[1], err)
	}
	height, err = strconv.Atoi(string(parts[2]))
	if err != nil {
		t.Fatalf("bad height %q: %v", parts[2], err)
	}
	return width, height, parts[3]
}

// decodeR4 reconstructs the bit rows of a bitonal stream.
func decodeR4(t *testing.T, data []byte) [][]int {
	t.Helper()
	width, height, rest := splitHeader(t, data, "R4")
	pos := 0
	readRun := func() int {
		if pos >= len(rest) {
			t.Fatalf("truncated R4 stream")
		}
		b := rest[pos]
		pos++
		if b < 0xc0 {
			return int(b)
		}
		if pos >= len(rest) {
			t.Fatalf("truncated two-byte run")
		}
		n := int(b&0x3f)<<8 | int(rest[pos])
		pos++
		return n
	}
	rows := make([][]int, height)
	for y := range rows {
		row := make([]int, 0, width)
		bit := 0
		for len(row) < width {
			n := readRun()
			for i := 0; i < n; i++ {
				row = append(row, bit)
			}
			bit ^= 1
		}
		if len(row) != width {
			t.Fatalf("row %d has %d pixels, want %d", y, len(row), width)
		}
		rows[y] = row
	}
	if pos != len(rest) {
		t.Fatalf("%d trailing bytes after R4 runs", len(rest)-pos)
	}
	return rows
}

// r6Stream is a decoded color run stream; rows hold one palette index
// (or the 0xfff sentinel) per pixel.
type r6Stream struct {
	width, height int
	palette       []RGB
	rows          [][]uint32
}

func decodeR6(t *testing.T, data []byte) r6Stream {
	t.Helper()
	width, height, rest := splitHeader(t, data, "R6")
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 {
		t.Fatalf("missing palette-size line")
	}
	n, err := strconv.Atoi(string(rest[:nl]))
	if err != nil {
		t.Fatalf("bad palette size %q: %v", rest[:nl], err)
	}
	rest = rest[nl+1:]
	if len(rest) < 3*n {
		t.Fatalf("truncated palette: %d bytes for %d entries", len(rest), n)
	}
	s := r6Stream{width: width, height: height}
	for i := 0; i < n; i++ {
		s.palette = append(s.palette, RGB{rest[3*i], rest[3*i+1], rest[3*i+2]})
	}
	rest = rest[3*n:]
	pos := 0
	s.rows = make([][]uint32, height)
	for y := range s.rows {
		row := make([]uint32, 0, width)
		for len(row) < width {
			if pos+4 > len(rest) {
				t.Fatalf("truncated run words at row %d", y)
			}
			word := uint32(rest[pos])<<24 | uint32(rest[pos+1])<<16 | uint32(rest[pos+2])<<8 | uint32(rest[pos+3])
			pos += 4
			index := word >> 20
			length := word & (1<<20 - 1)
			if length == 0 {
				t.Fatalf("zero-length run word 0x%08x at row %d", word, y)
			}
			for i := uint32(0); i < length; i++ {
				row = append(row, index)
			}
		}
		if len(row) != width {
			t.Fatalf("row %d has %d pixels, want %d", y, len(row), width)
		}
		s.rows[y] = row
	}
	if pos != len(rest) {
		t.Fatalf("%d trailing bytes after run words", len(rest)-pos)
	}
	return s
}

// quantizeToBuf runs q over the pair and returns the stream plus the three
// scalar outputs, starting from a zero background color and lowered flags.
func quantizeToBuf(t *testing.T, q Quantizer, fg, bg *Pixmap) (data []byte, bgColor RGB, hasFG, hasBG bool) {
	t.Helper()
	var buf bytes.Buffer
	if err := q.Quantize(fg, bg, &bgColor, &hasFG, &hasBG, &buf); err != nil {
		t.Fatalf("Quantize: %v", err)
	}
	return buf.Bytes(), bgColor, hasFG, hasBG
}

// dummyBytes returns the dummy encoding for a width×height page.
func dummyBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	var bgColor RGB
	if err := dummyQuantize(width, height, &bgColor, &buf); err != nil {
		t.Fatalf("dummyQuantize: %v", err)
	}
	return buf.Bytes()
}
