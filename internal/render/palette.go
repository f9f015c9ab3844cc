package render

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/core"
)

// ColorFromHex maps a "#rrggbb" color or a catalog color token to the
// nearest terminal color. Dark colors are lifted to gray so fish stay
// visible on a dark terminal.
func ColorFromHex(hex string) core.Color {
	switch hex {
	case catalog.ColorGold:
		return core.ColorGold
	case catalog.ColorPattern:
		return core.ColorBrightWhite
	}

	r, g, b, ok := parseHex(hex)
	if !ok {
		return core.ColorDefault
	}

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	light := (hi + lo) / 2
	chroma := hi - lo

	if chroma < 0.12 {
		switch {
		case light > 0.75:
			return core.ColorBrightWhite
		case light > 0.5:
			return core.ColorWhite
		default:
			return core.ColorGray
		}
	}

	var hue float64
	switch hi {
	case r:
		hue = math.Mod((g-b)/chroma, 6)
	case g:
		hue = (b-r)/chroma + 2
	default:
		hue = (r-g)/chroma + 4
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}

	bright := light > 0.55
	switch {
	case hue < 15 || hue >= 330:
		if bright {
			return core.ColorPink
		}
		return core.ColorRed
	case hue < 40:
		if light < 0.35 {
			return core.ColorGray
		}
		return core.ColorOrange
	case hue < 70:
		if bright {
			return core.ColorBrightYellow
		}
		return core.ColorYellow
	case hue < 160:
		if bright {
			return core.ColorBrightGreen
		}
		return core.ColorGreen
	case hue < 200:
		if bright {
			return core.ColorBrightCyan
		}
		return core.ColorTeal
	case hue < 260:
		if bright {
			return core.ColorBrightBlue
		}
		return core.ColorBlue
	default:
		if bright {
			return core.ColorBrightMagenta
		}
		return core.ColorMagenta
	}
}

// RGBA maps a "#rrggbb" color or a catalog color token to an opaque
// color. Unparseable input yields fallback.
func RGBA(hex string, fallback color.RGBA) color.RGBA {
	switch hex {
	case catalog.ColorGold:
		return color.RGBA{0xff, 0xd7, 0x00, 0xff}
	case catalog.ColorPattern:
		return color.RGBA{0xff, 0xf5, 0xee, 0xff}
	}
	r, g, b, ok := parseHex(hex)
	if !ok {
		return fallback
	}
	return color.RGBA{byte255(r), byte255(g), byte255(b), 0xff}
}

func parseHex(hex string) (r, g, b float64, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return float64(v>>16&0xff) / 255, float64(v>>8&0xff) / 255, float64(v&0xff) / 255, true
}

func byte255(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
