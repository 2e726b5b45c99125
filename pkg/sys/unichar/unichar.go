// Package unichar provides the byte-level code point helpers used by the
// intern table and the runtime around it.
//
// Decoding follows a Mode fixed at build time (see DefaultMode). Malformed
// UTF-8 is not validated: callers must pass well-formed input.
package unichar

// Mode selects how byte buffers are split into code points.
type Mode uint8

const (
	// MultiByte decodes UTF-8 sequences.
	MultiByte Mode = iota
	// Raw treats every byte as one code point.
	Raw
)

func (m Mode) String() string {
	switch m {
	case MultiByte:
		return "multibyte"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}

// Codec applies the decoding rules of a single Mode.
type Codec struct {
	Mode Mode
}

var (
	// UTF8 decodes multi-byte sequences regardless of the build mode.
	UTF8 = Codec{Mode: MultiByte}
	// Bytes treats every byte as a code point regardless of the build mode.
	Bytes = Codec{Mode: Raw}

	std = Codec{Mode: DefaultMode}
)

// IsCont reports whether b is a UTF-8 continuation byte (top bits 10).
func IsCont(b byte) bool {
	return b&0xC0 == 0x80
}

// IsNonASCII reports whether b has its high bit set.
func IsNonASCII(b byte) bool {
	return b&0x80 != 0
}

// DecodeOne returns the code point starting at b[0].
func (c Codec) DecodeOne(b []byte) rune {
	ord := rune(b[0])
	if c.Mode == Raw || !IsNonASCII(b[0]) {
		return ord
	}
	// Strip the length prefix from the leading byte.
	ord &= 0x7F
	for mask := rune(0x40); ord&mask != 0; mask >>= 1 {
		ord &^= mask
	}
	for _, cb := range b[1:] {
		if !IsCont(cb) {
			break
		}
		ord = ord<<6 | rune(cb&0x3F)
	}
	return ord
}

// Next returns the index just past the code point starting at b[i].
func (c Codec) Next(b []byte, i int) int {
	i++
	if c.Mode == Raw {
		return i
	}
	for i < len(b) && IsCont(b[i]) {
		i++
	}
	return i
}

// Index translates the byte offset ptr into a code point index, counting the
// code point boundaries in b[:ptr].
//
// In Raw mode every byte is a code point, so Index returns ptr unchanged.
// This differs from a boundary count on UTF-8 input, which would still skip
// continuation bytes; Raw keeps Index(b, len(b)) == CharLen(b).
func (c Codec) Index(b []byte, ptr int) int {
	if c.Mode == Raw {
		return ptr
	}
	n := 0
	for _, x := range b[:ptr] {
		if !IsCont(x) {
			n++
		}
	}
	return n
}

// CharLen returns the number of code points in b.
func (c Codec) CharLen(b []byte) int {
	return c.Index(b, len(b))
}

// DecodeOne decodes the code point at b[0] using DefaultMode.
func DecodeOne(b []byte) rune { return std.DecodeOne(b) }

// Next advances past the code point at b[i] using DefaultMode.
func Next(b []byte, i int) int { return std.Next(b, i) }

// Index converts a byte offset into a code point index using DefaultMode.
func Index(b []byte, ptr int) int { return std.Index(b, ptr) }

// CharLen counts the code points in b using DefaultMode.
func CharLen(b []byte) int { return std.CharLen(b) }
