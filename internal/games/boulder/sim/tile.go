package sim

// Kind enumerates the closed set of tile variants.
type Kind uint8

const (
	KindAir Kind = iota
	KindFlux
	KindUnbreakable
	KindPlayer
	KindStone
	KindBox
	KindKey
	KindLock
	kindCount // Sentinel value for iteration
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindAir:
		return "air"
	case KindFlux:
		return "flux"
	case KindUnbreakable:
		return "unbreakable"
	case KindPlayer:
		return "player"
	case KindStone:
		return "stone"
	case KindBox:
		return "box"
	case KindKey:
		return "key"
	case KindLock:
		return "lock"
	default:
		return "unknown"
	}
}

// AllKinds returns every tile kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := KindAir; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Tile is the value stored in one grid cell.
// State is meaningful only for stones and boxes, Key only for keys and locks.
// Tile is comparable, so two grids can be compared cell by cell with ==.
type Tile struct {
	Kind  Kind
	State FallingState
	Key   KeyConfig
}

// Air returns an empty tile.
func Air() Tile { return Tile{Kind: KindAir} }

// Flux returns a walkable, non-gravity floor tile.
func Flux() Tile { return Tile{Kind: KindFlux} }

// Unbreakable returns an immovable wall tile.
func Unbreakable() Tile { return Tile{Kind: KindUnbreakable} }

// PlayerMarker returns the tile that marks the player's cell.
func PlayerMarker() Tile { return Tile{Kind: KindPlayer} }

// Stone returns a stone in the given falling state.
func Stone(s FallingState) Tile { return Tile{Kind: KindStone, State: s} }

// Box returns a box in the given falling state.
func Box(s FallingState) Tile { return Tile{Kind: KindBox, State: s} }

// Key returns a key tile for the configuration.
func Key(k KeyConfig) Tile { return Tile{Kind: KindKey, Key: k} }

// Lock returns a lock tile for the configuration.
func Lock(k KeyConfig) Tile { return Tile{Kind: KindLock, Key: k} }

func (t Tile) IsAir() bool         { return t.Kind == KindAir }
func (t Tile) IsFlux() bool        { return t.Kind == KindFlux }
func (t Tile) IsUnbreakable() bool { return t.Kind == KindUnbreakable }
func (t Tile) IsPlayer() bool      { return t.Kind == KindPlayer }
func (t Tile) IsStone() bool       { return t.Kind == KindStone }
func (t Tile) IsBox() bool         { return t.Kind == KindBox }
func (t Tile) IsKey() bool         { return t.Kind == KindKey }
func (t Tile) IsLock() bool        { return t.Kind == KindLock }

// HasGravity reports whether the tile is affected by the gravity pass.
func (t Tile) HasGravity() bool {
	return t.Kind == KindStone || t.Kind == KindBox
}

// IsFalling reports whether the tile is a stone or box in mid-fall.
// Always false for tiles without gravity.
func (t Tile) IsFalling() bool {
	return t.HasGravity() && t.State.IsFalling()
}

// IsWalkable reports whether the player can step into the tile directly.
func (t Tile) IsWalkable() bool {
	return t.Kind == KindAir || t.Kind == KindFlux
}

// IsPushable reports whether a horizontal push may move the tile.
// Cell-dependent conditions are checked by the resolver.
func (t Tile) IsPushable() bool {
	return t.HasGravity() && !t.State.IsFalling()
}

// Gravity returns the tile's next value for one gravity step and whether it
// drops one cell. Tiles without gravity are returned unchanged.
func (t Tile) Gravity(belowIsAir bool) (Tile, bool) {
	switch t.Kind {
	case KindStone, KindBox:
		t.State = t.State.Next(belowIsAir)
		return t, belowIsAir
	case KindAir, KindFlux, KindUnbreakable, KindPlayer, KindKey, KindLock:
		return t, false
	default:
		return t, false
	}
}

// WithState returns a copy of the tile with a new falling state.
// Tiles without gravity ignore the state.
func (t Tile) WithState(s FallingState) Tile {
	if t.HasGravity() {
		t.State = s
	}
	return t
}
