package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// palette maps core.Color to ANSI 256 color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorPink:          "218",
	core.ColorGold:          "220",
	core.ColorNavy:          "17",
	core.ColorTeal:          "30",
	core.ColorBlack:         "0",
}

var (
	colorStyles = buildStyles(false)
	flashStyles = buildStyles(true)
)

// buildStyles creates one style per color. Flash styles paint the hook
// flash as a pale background behind every cell.
func buildStyles(flash bool) map[core.Color]lipgloss.Style {
	base := lipgloss.NewStyle()
	if flash {
		base = base.Background(lipgloss.Color("230"))
	}
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: base}
	for c, code := range palette {
		st := base.Foreground(lipgloss.Color(code))
		if c == core.ColorGold {
			st = st.Bold(true)
		}
		styles[c] = st
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, flash bool) string {
	styles := colorStyles
	if flash {
		styles = flashStyles
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
