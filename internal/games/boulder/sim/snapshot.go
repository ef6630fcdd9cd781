package sim

// CellView is the read-only view of one cell.
type CellView struct {
	Kind     Kind
	Falling  bool   // Stones and boxes only
	Key      KeyID  // Keys and locks only
	KeyColor string // Keys and locks only
}

// Snapshot captures the complete simulation state for rendering, determinism
// testing and replay comparison.
type Snapshot struct {
	Tick    uint64
	W       int
	H       int
	Cells   []CellView // Row-major, length W*H
	Player  Coord
	Pending int
}

// Snapshot returns a read-only view of the current state.
func (s *Simulator) Snapshot() Snapshot {
	cells := make([]CellView, len(s.grid.Cells))
	for i, t := range s.grid.Cells {
		cells[i] = viewOf(t)
	}
	return Snapshot{
		Tick:    s.tick,
		W:       s.grid.W,
		H:       s.grid.H,
		Cells:   cells,
		Player:  s.player.Pos,
		Pending: len(s.inputs),
	}
}

func viewOf(t Tile) CellView {
	v := CellView{Kind: t.Kind}
	switch t.Kind {
	case KindStone, KindBox:
		v.Falling = t.State.IsFalling()
	case KindKey, KindLock:
		v.Key = t.Key.ID
		v.KeyColor = t.Key.Color
	}
	return v
}

// At returns the cell at c, or an unbreakable view when c is out of bounds.
func (s Snapshot) At(c Coord) CellView {
	if c.X < 0 || c.X >= s.W || c.Y < 0 || c.Y >= s.H {
		return CellView{Kind: KindUnbreakable}
	}
	return s.Cells[c.Y*s.W+c.X]
}

// Equal returns true if two snapshots describe the same board and player.
// The tick counter and pending inputs are ignored.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.W != other.W || s.H != other.H || s.Player != other.Player {
		return false
	}
	for i, c := range s.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}
