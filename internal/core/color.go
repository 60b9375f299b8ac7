package core

// Color is the foreground color of a screen cell. The frontend maps each
// value to an ANSI 256-color code.
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

	// Level palette
	ColorPink      // Peach
	ColorBrown     // Bricks and goombas
	ColorDarkGreen // Pipes
	ColorGold      // Goodie blocks
)

// NumColors is the number of defined colors.
const NumColors = int(ColorGold) + 1
