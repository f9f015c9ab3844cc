package core

// Color is a palette entry for a Screen cell. The terminal adapter maps
// each entry to an ANSI 256 code.
type Color uint8

// Palette entries. Stage and species hex colors are snapped onto these.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorGold
	ColorNavy
	ColorTeal
	ColorBlack
)
