package sim

// GravityResult records what one gravity pass changed.
type GravityResult struct {
	Fell    []Coord // Destination cells of tiles that dropped this pass
	Settled int     // Tiles that went from Falling to Resting
}

// RunGravityPass advances every stone and box by one gravity step.
//
// Rows are visited bottom to top and each row left to right. A tile that
// drops lands in a row that has already been visited, so it is never seen
// twice and moves at most one cell per pass. A tile whose cell below is not
// Air is set to Resting in place.
func (g *Grid) RunGravityPass() GravityResult {
	result := GravityResult{Fell: make([]Coord, 0)}

	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			t := g.Get(c)
			if !t.HasGravity() {
				continue
			}

			below := c.Below()
			next, drops := t.Gravity(g.Get(below).IsAir())
			if drops {
				g.Set(below, next)
				g.Clear(c)
				result.Fell = append(result.Fell, below)
				continue
			}

			if t.State.IsFalling() {
				result.Settled++
			}
			g.Set(c, next)
		}
	}

	return result
}
