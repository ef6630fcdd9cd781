package core

// Color is a foreground color for a screen cell.
// It holds anything lipgloss accepts as a color: a hex value such as
// "#ccffcc" or an ANSI 256 index such as "245". The empty string is the
// terminal default.
type Color string

// Colors used by the platform chrome. Tile colors come from the game.
const (
	ColorDefault Color = ""
	ColorGray    Color = "245"
	ColorDim     Color = "240"
	ColorWhite   Color = "255"
	ColorAccent  Color = "51"
	ColorWarn    Color = "226"
	ColorError   Color = "196"
)

// IsDefault reports whether the color leaves the terminal default in place.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
