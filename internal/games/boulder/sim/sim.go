package sim

import "fmt"

// TickResult contains information about what happened during one tick.
type TickResult struct {
	Tick         uint64
	Moves        []MoveEvent // Inputs in the order they were applied
	Fell         []Coord     // Cells that received a falling tile
	Settled      int         // Tiles that came to rest
	LocksRemoved int
}

// Accepted returns the number of moves that changed the board.
func (r TickResult) Accepted() int {
	n := 0
	for _, m := range r.Moves {
		if m.Result.Accepted() {
			n++
		}
	}
	return n
}

// Simulator owns the grid and the player for one session.
// It is not safe for concurrent use; callers drive it from a single loop.
type Simulator struct {
	grid     *Grid
	player   Player
	resolver *Resolver
	inputs   []Dir
	tick     uint64
}

// Initialize builds a simulator from raw tile codes.
// The grid must be non-empty and rectangular, every code must be known,
// and exactly one cell must hold the player start.
func Initialize(raw [][]int) (*Simulator, error) {
	if len(raw) == 0 || len(raw[0]) == 0 {
		return nil, ConfigError{Code: ErrCodeEmptyGrid, Message: "level has no cells"}
	}

	w, h := len(raw[0]), len(raw)
	g := NewGrid(w, h)
	starts := make([]Coord, 0, 1)

	for y, row := range raw {
		if len(row) != w {
			return nil, ConfigError{
				Code:    ErrCodeRaggedGrid,
				Message: fmt.Sprintf("row %d has %d cells, expected %d", y, len(row), w),
			}
		}
		for x, code := range row {
			t, ok := TileFromCode(Code(code))
			if !ok {
				return nil, ConfigError{
					Code:    ErrCodeUnknownTile,
					Message: fmt.Sprintf("unknown tile code %d at (%d,%d)", code, x, y),
				}
			}
			if t.IsPlayer() {
				starts = append(starts, C(x, y))
			}
			g.Set(C(x, y), t)
		}
	}

	switch {
	case len(starts) == 0:
		return nil, ConfigError{Code: ErrCodeNoPlayer, Message: "level has no player start"}
	case len(starts) > 1:
		return nil, ConfigError{
			Code:    ErrCodeMultiplePlayers,
			Message: fmt.Sprintf("level has %d player starts, first at %v and %v", len(starts), starts[0], starts[1]),
		}
	}

	return New(g, starts[0]), nil
}

// New creates a simulator over an existing grid with the player at start.
// The player marker is written at start; the grid is owned by the simulator
// from here on.
func New(g *Grid, start Coord) *Simulator {
	s := &Simulator{
		grid:   g,
		player: Player{Pos: start},
		inputs: make([]Dir, 0),
	}
	g.Set(start, PlayerMarker())
	s.resolver = NewResolver(s.grid, &s.player)
	return s
}

// EnqueueInput queues a direction for the next tick. It never blocks or rejects.
func (s *Simulator) EnqueueInput(d Dir) {
	s.inputs = append(s.inputs, d)
}

// Pending returns the number of queued inputs.
func (s *Simulator) Pending() int {
	return len(s.inputs)
}

// Tick advances the simulation by one step.
// All queued inputs are applied, newest first, then the gravity pass runs
// exactly once.
func (s *Simulator) Tick() TickResult {
	result := TickResult{Moves: make([]MoveEvent, 0, len(s.inputs))}

	for len(s.inputs) > 0 {
		last := len(s.inputs) - 1
		d := s.inputs[last]
		s.inputs = s.inputs[:last]

		ev := s.resolver.AttemptMove(d)
		result.LocksRemoved += ev.LocksRemoved
		result.Moves = append(result.Moves, ev)
	}

	gr := s.grid.RunGravityPass()
	result.Fell = gr.Fell
	result.Settled = gr.Settled

	s.tick++
	result.Tick = s.tick
	return result
}

// AttemptMove applies a single move immediately, outside of the tick cycle.
func (s *Simulator) AttemptMove(d Dir) MoveEvent {
	return s.resolver.AttemptMove(d)
}

// RunGravity runs one gravity pass without consuming inputs or advancing the tick.
func (s *Simulator) RunGravity() GravityResult {
	return s.grid.RunGravityPass()
}

// Player returns the player's current position.
func (s *Simulator) Player() Coord {
	return s.player.Pos
}

// TickCount returns the number of completed ticks.
func (s *Simulator) TickCount() uint64 {
	return s.tick
}

// Tile returns the tile at c. Out-of-bounds reads report Unbreakable.
func (s *Simulator) Tile(c Coord) Tile {
	return s.grid.Get(c)
}

// Size returns the grid dimensions.
func (s *Simulator) Size() (w, h int) {
	return s.grid.W, s.grid.H
}

// Grid returns a copy of the current grid.
func (s *Simulator) Grid() *Grid {
	return s.grid.Clone()
}
