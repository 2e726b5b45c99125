package unichar

// Character attribute flags.
const (
	flPrint uint8 = 1 << iota
	flSpace
	flDigit
	flAlpha
	flUpper
	flLower
)

const (
	atPR = flPrint
	atSP = flSpace | flPrint
	atDI = flDigit | flPrint
	atAL = flAlpha | flPrint
	atUP = flUpper | flAlpha | flPrint
	atLO = flLower | flAlpha | flPrint
)

var attr = [128]uint8{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, atSP, atSP, atSP, atSP, atSP, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	atSP, atPR, atPR, atPR, atPR, atPR, atPR, atPR,
	atPR, atPR, atPR, atPR, atPR, atPR, atPR, atPR,
	atDI, atDI, atDI, atDI, atDI, atDI, atDI, atDI,
	atDI, atDI, atPR, atPR, atPR, atPR, atPR, atPR,
	atPR, atUP, atUP, atUP, atUP, atUP, atUP, atUP,
	atUP, atUP, atUP, atUP, atUP, atUP, atUP, atUP,
	atUP, atUP, atUP, atUP, atUP, atUP, atUP, atUP,
	atUP, atUP, atUP, atPR, atPR, atPR, atPR, atPR,
	atPR, atLO, atLO, atLO, atLO, atLO, atLO, atLO,
	atLO, atLO, atLO, atLO, atLO, atLO, atLO, atLO,
	atLO, atLO, atLO, atLO, atLO, atLO, atLO, atLO,
	atLO, atLO, atLO, atPR, atPR, atPR, atPR, 0,
}

// The classifiers below are ASCII only. Any code point >= 128 has no
// attributes, whatever the decoding mode.

func has(c rune, fl uint8) bool {
	return c >= 0 && c < 128 && attr[c]&fl != 0
}

func IsSpace(c rune) bool { return has(c, flSpace) }
func IsAlpha(c rune) bool { return has(c, flAlpha) }
func IsPrint(c rune) bool { return has(c, flPrint) }
func IsDigit(c rune) bool { return has(c, flDigit) }
func IsUpper(c rune) bool { return has(c, flUpper) }
func IsLower(c rune) bool { return has(c, flLower) }

func IsXDigit(c rune) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsIdent reports whether c may appear in an identifier after the first
// character.
func IsIdent(c rune) bool {
	return c == '_' || has(c, flAlpha|flDigit)
}

func ToUpper(c rune) rune {
	if IsLower(c) {
		return c - 0x20
	}
	return c
}

func ToLower(c rune) rune {
	if IsUpper(c) {
		return c + 0x20
	}
	return c
}
