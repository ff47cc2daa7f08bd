package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Palette used by the tile catalog and creature templates.
const (
	ColorBlack     uint32 = 0x000000
	ColorWhite     uint32 = 0xFFFFFF
	ColorGoldenrod uint32 = 0xDAA520
	ColorLime      uint32 = 0x00FF00
	ColorYellow    uint32 = 0xFFFF00
	ColorRed       uint32 = 0xFF0000
	ColorDarkGray  uint32 = 0x404040
	ColorGray      uint32 = 0x808080
)

var namedColors = map[string]uint32{
	"black":     ColorBlack,
	"white":     ColorWhite,
	"goldenrod": ColorGoldenrod,
	"lime":      ColorLime,
	"yellow":    ColorYellow,
	"red":       ColorRed,
	"darkgray":  ColorDarkGray,
	"gray":      ColorGray,
}

// ParseColor accepts a palette name ("goldenrod") or a "#RRGGBB" literal.
func ParseColor(s string) (uint32, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return uint32(v), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// HexColor formats a 0xRRGGBB value as "#RRGGBB".
func HexColor(c uint32) string {
	return fmt.Sprintf("#%06X", c&maskColor)
}
