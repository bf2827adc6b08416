package core

// Color is the foreground of a screen cell. The platform maps each value to
// an ANSI 256-color code.
type Color uint8

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

var colorNames = [...]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-red", "bright-green", "bright-yellow", "bright-blue",
	"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// RainbowBands is the row palette for plain bricks, top to bottom.
var RainbowBands = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue}

// Band returns the palette color for row, wrapping around.
func Band(row int) Color {
	if row < 0 {
		row = -row
	}
	return RainbowBands[row%len(RainbowBands)]
}
