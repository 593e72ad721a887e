package sep

import (
	"errors"
	"fmt"
	"io"
)

// Quantizer encodes one page's color layer from a pair of co-registered
// renderings: fg is the full rendering, bg the background-only rendering
// of the same scene, equal in size.
//
// backgroundColor, hasForeground and hasBackground are owned by the
// caller. The flags advance only from false to true and are never reset;
// across the pages of a document they accumulate whether any page carried
// true foreground or true background. backgroundColor is both an input
// (the reference the background comparison starts from) and an output
// (most variants resample it from the first background pixel).
//
// On error the bytes already written to w are unusable and must be
// discarded. Implementations are stateless configuration and may be
// reused across any number of calls.
type Quantizer interface {
	Quantize(fg, bg *Pixmap, backgroundColor *RGB, hasForeground, hasBackground *bool, w io.Writer) error
}

// ErrNotImplemented is returned when the median-cut variant is requested
// but was excluded at build time (nomediancut build tag).
var ErrNotImplemented = errors.New("sep: median-cut quantizer not built in")

// MaxFGColorsLimit is the largest foreground palette a DjVu document may
// carry.
const MaxFGColorsLimit = 4080

// Config carries the settings shared by the quantizer variants.
type Config struct {
	// MaxFGColors bounds the emitted palette size, 1..MaxFGColorsLimit.
	// Values outside that range fall back to MaxFGColorsLimit.
	MaxFGColors int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{MaxFGColors: MaxFGColorsLimit}
}

func clampFGColors(n int) int {
	if n < 1 || n > MaxFGColorsLimit {
		return MaxFGColorsLimit
	}
	return n
}

// Kind selects one of the quantizer variants.
type Kind int

const (
	// KindDefault is the adaptive-palette quantizer.
	KindDefault Kind = iota
	// KindDummy encodes everything as background.
	KindDummy
	// KindMask emits only the bitonal foreground mask.
	KindMask
	// KindWebSafe uses the fixed 216-color web palette.
	KindWebSafe
	// KindMedianCut delegates palette construction to the median-cut
	// backend; optional, see ErrNotImplemented.
	KindMedianCut
)

var kindNames = map[Kind]string{
	KindDefault:   "default",
	KindDummy:     "dummy",
	KindMask:      "mask",
	KindWebSafe:   "web",
	KindMedianCut: "mediancut",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a configuration token to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("sep: unknown quantizer kind %q", s)
}

// New returns the quantizer selected by kind. A nil cfg means
// DefaultConfig. KindMedianCut fails with ErrNotImplemented when the
// backend is not built in.
func New(kind Kind, cfg *Config) (Quantizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	n := clampFGColors(cfg.MaxFGColors)
	switch kind {
	case KindDefault:
		return DefaultQuantizer{MaxFGColors: n}, nil
	case KindDummy:
		return DummyQuantizer{}, nil
	case KindMask:
		return MaskQuantizer{}, nil
	case KindWebSafe:
		return WebSafeQuantizer{}, nil
	case KindMedianCut:
		return newMedianCutQuantizer(n)
	}
	return nil, fmt.Errorf("sep: unknown quantizer kind %d", int(kind))
}

// classify reports whether the pixel pair is foreground and raises
// hasForeground for the first non-black foreground pixel. A genuinely
// black differing pixel is encoded as foreground but never raises the
// flag.
func classify(fgPx, bgPx RGB, hasForeground *bool) bool {
	if fgPx == bgPx {
		return false
	}
	if !*hasForeground && (fgPx[0] != 0 || fgPx[1] != 0 || fgPx[2] != 0) {
		*hasForeground = true
	}
	return true
}

// updateBackground raises hasBackground once a background pixel differs
// from the reference color, comparing channels in order and stopping at
// the first mismatch.
func updateBackground(ref *RGB, bgPx RGB, hasBackground *bool) {
	if *hasBackground {
		return
	}
	for i := 0; i < 3; i++ {
		if ref[i] != bgPx[i] {
			*hasBackground = true
			break
		}
	}
}
