package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by entities and the overlay.
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
	ColorDarkGray
)

// Grayscale maps a 0-255 intensity onto the closest gray in the palette.
func Grayscale(shade int) Color {
	switch {
	case shade >= 224:
		return ColorBrightWhite
	case shade >= 160:
		return ColorWhite
	case shade >= 96:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
