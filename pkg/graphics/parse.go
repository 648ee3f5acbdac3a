package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a color from a string. Accepted forms are "#RRGGBB" and
// "#AARRGGBB" hex notation, plus the SVG 1.1 color names ("coral",
// "midnightblue", ...). Matching of names is case-insensitive.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBA8(named.R, named.G, named.B, named.A), nil
	}
	return 0, fmt.Errorf("unknown color name %q", s)
}

func parseHexColor(hex string) (Color, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	switch len(hex) {
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("hex color %q must have 6 or 8 digits", hex)
	}
}
