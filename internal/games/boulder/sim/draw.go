package sim

import "github.com/vovakirdan/tui-boulder/internal/core"

// TileSize is the edge length of one cell in render units.
const TileSize = 30

// Colors used by draw descriptors. Key and lock colors come from their KeyConfig.
const (
	ColorFlux        = "#ccffcc"
	ColorUnbreakable = "#999999"
	ColorStone       = "#0000cc"
	ColorBox         = "#8b4513"
	ColorPlayer      = "#ff0000"
)

// Draw is an abstract render instruction for one cell.
// Visible is false for cells that paint nothing (air, the player marker).
type Draw struct {
	Visible bool
	Color   string
	Rect    core.Rect
}

// cellRect returns the render rectangle for a grid coordinate.
func cellRect(c Coord) core.Rect {
	return core.NewRect(c.X*TileSize, c.Y*TileSize, TileSize, TileSize)
}

// DrawDescriptor returns how the tile at c should be painted.
// The player marker paints nothing; the player is drawn from its own position.
func (t Tile) DrawDescriptor(c Coord) Draw {
	d := Draw{Rect: cellRect(c)}
	switch t.Kind {
	case KindAir, KindPlayer:
		return d
	case KindFlux:
		d.Color = ColorFlux
	case KindUnbreakable:
		d.Color = ColorUnbreakable
	case KindStone:
		d.Color = ColorStone
	case KindBox:
		d.Color = ColorBox
	case KindKey, KindLock:
		d.Color = t.Key.Color
	default:
		return d
	}
	d.Visible = true
	return d
}

// DrawDescriptor returns the render instruction for the player.
func (p Player) DrawDescriptor() Draw {
	return Draw{Visible: true, Color: ColorPlayer, Rect: cellRect(p.Pos)}
}
