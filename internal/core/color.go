package core

// Color is the foreground color of a screen cell.
// The platform layer maps it onto terminal colors.
type Color uint8

// Colors used by the flappy renderer.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorRed
	ColorCyan
	ColorWhite
	ColorGray
)

// Cell is a single screen position: a rune and its color.
type Cell struct {
	Rune  rune
	Color Color
}

// blankCell is what an empty or out-of-bounds position holds.
var blankCell = Cell{Rune: ' ', Color: ColorDefault}
