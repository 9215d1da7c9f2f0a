package core

// Color is the foreground color of a screen cell. The platform decides
// how each value looks on the terminal.
type Color uint8

// Colors used by the pieces and the board.
const (
	ColorDefault Color = iota
	ColorRed
	ColorMagenta
	ColorCyan
	ColorGray
	ColorBrightGreen
	ColorDim
)
