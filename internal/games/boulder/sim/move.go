package sim

// Player holds the player's position. It is the single source of truth for
// where the player is; the PlayerMarker tile only mirrors it in the grid.
type Player struct {
	Pos Coord
}

// MoveResult classifies the outcome of one move attempt.
type MoveResult uint8

const (
	MoveRejected  MoveResult = iota // Nothing changed
	MoveWalked                      // Player stepped into air or flux
	MovePickedKey                   // Player took a key and matching locks dissolved
	MovePushed                      // Player pushed a stone or box
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	switch r {
	case MoveRejected:
		return "rejected"
	case MoveWalked:
		return "walked"
	case MovePickedKey:
		return "picked_key"
	case MovePushed:
		return "pushed"
	default:
		return "unknown"
	}
}

// Accepted reports whether the move changed any state.
func (r MoveResult) Accepted() bool {
	return r != MoveRejected
}

// MoveEvent records one processed input.
type MoveEvent struct {
	Dir          Dir
	Result       MoveResult
	From         Coord
	To           Coord // Equal to From when rejected
	LocksRemoved int
}

// Resolver decides whether and how the player and adjacent tiles move.
type Resolver struct {
	grid   *Grid
	player *Player
}

// NewResolver creates a resolver that mutates the given grid and player.
func NewResolver(g *Grid, p *Player) *Resolver {
	return &Resolver{grid: g, player: p}
}

// AttemptMove tries to move the player one cell in direction d.
//
// Rules, in priority order, for the target cell:
//  1. Air or flux: the player walks in.
//  2. Key: every matching lock becomes air, then the player walks in.
//  3. Resting stone/box, horizontal push, air two cells ahead and solid
//     ground under the block: the block slides one cell, the player follows.
//  4. Any other stone/box: rejected.
//  5. Walls, locks and anything outside the grid: rejected.
//
// Either every write of a move is applied or none is.
func (r *Resolver) AttemptMove(d Dir) MoveEvent {
	from := r.player.Pos
	target := from.Step(d, 1)
	ev := MoveEvent{Dir: d, Result: MoveRejected, From: from, To: from}

	if !r.grid.InBounds(target) {
		return ev
	}

	t := r.grid.Get(target)
	switch t.Kind {
	case KindAir, KindFlux:
		ev.Result = MoveWalked

	case KindKey:
		ev.LocksRemoved = r.grid.RemoveLocks(t.Key)
		ev.Result = MovePickedKey

	case KindStone, KindBox:
		if !r.canPush(t, target, d) {
			return ev
		}
		r.grid.Set(target.Step(d, 1), t)
		ev.Result = MovePushed

	case KindUnbreakable, KindLock, KindPlayer:
		return ev

	default:
		return ev
	}

	r.relocate(target)
	ev.To = target
	return ev
}

// canPush checks every precondition of a push before anything is written.
func (r *Resolver) canPush(t Tile, at Coord, d Dir) bool {
	if !d.IsHorizontal() || !t.IsPushable() {
		return false
	}

	dest := at.Step(d, 1)
	if !r.grid.InBounds(dest) || !r.grid.Get(dest).IsAir() {
		return false
	}

	// A block with nothing under it is about to fall and cannot be pushed.
	return !r.grid.Get(at.Below()).IsAir()
}

// relocate moves the player marker and position to the target cell.
func (r *Resolver) relocate(to Coord) {
	r.grid.Clear(r.player.Pos)
	r.grid.Set(to, PlayerMarker())
	r.player.Pos = to
}
