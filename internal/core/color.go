package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
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
)

// palette is the cycle used for tile kinds. Default and gray are left
// out, they are reserved for empty cells and chrome.
var palette = []Color{
	ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan,
	ColorBrightRed, ColorBrightGreen, ColorBrightYellow, ColorBrightBlue,
	ColorBrightMagenta, ColorBrightCyan, ColorOrange, ColorWhite,
}

// PaletteColor returns the n-th color of the tile palette, cycling.
func PaletteColor(n int) Color {
	return palette[Wrap(n, len(palette))]
}
