package types

import (
	"fmt"
)

// Glyph is the packed representation of a colored map symbol.
// It is a value type: copying it is free and it can never be mutated in place.
//
//	[0:8]   - character (1 byte)             - mask 0xFF
//	[8:32]  - foreground RGB (24 bits)       - mask 0xFFFFFF
//	[32:56] - background RGB (24 bits)       - mask 0xFFFFFF
type Glyph uint64

const (
	bitsChar  = 8
	bitsColor = 24

	shiftFg = bitsChar
	shiftBg = bitsChar + bitsColor

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// DefaultChar, DefaultForeground and DefaultBackground are used for any
// glyph field a template leaves empty.
const (
	DefaultChar       byte   = ' '
	DefaultForeground uint32 = ColorWhite
	DefaultBackground uint32 = ColorBlack
)

// MakeGlyph packs a character and two 0xRRGGBB colors into a Glyph.
// Only the low 24 bits of each color are kept.
//
// Example:
//
//	// goldenrod '#' on black
//	g := MakeGlyph('#', 0xDAA520, 0x000000)
//	// 0x00_000000_DAA520_23
func MakeGlyph(char byte, fg, bg uint32) Glyph {
	return Glyph(uint64(bg&maskColor)<<shiftBg |
		uint64(fg&maskColor)<<shiftFg |
		uint64(char))
}

// Char returns the display symbol.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// Foreground returns the 0xRRGGBB foreground color.
func (g Glyph) Foreground() uint32 {
	return uint32(g>>shiftFg) & maskColor
}

// Background returns the 0xRRGGBB background color.
func (g Glyph) Background() uint32 {
	return uint32(g>>shiftBg) & maskColor
}

// WithForeground returns a copy of g with another foreground color.
// Rendering uses it to dim remembered cells without touching shared tiles.
func (g Glyph) WithForeground(fg uint32) Glyph {
	return MakeGlyph(g.Char(), fg, g.Background())
}

// String implements fmt.Stringer.
// Format: "Glyph{char='@', fg=#FFFFFF, bg=#000000}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Non-printable characters are shown as hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', fg=%s, bg=%s}", charStr, g.HexForeground(), g.HexBackground())
}

// HexForeground returns the foreground as "#RRGGBB".
func (g Glyph) HexForeground() string {
	return HexColor(g.Foreground())
}

// HexBackground returns the background as "#RRGGBB".
func (g Glyph) HexBackground() string {
	return HexColor(g.Background())
}
