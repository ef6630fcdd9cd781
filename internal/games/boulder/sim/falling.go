package sim

// FallingState is the gravity sub-state carried by stones and boxes.
type FallingState uint8

const (
	Resting FallingState = iota
	Falling
)

// String returns the string representation of the state.
func (s FallingState) String() string {
	switch s {
	case Resting:
		return "resting"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// IsFalling reports whether the state is Falling.
func (s FallingState) IsFalling() bool {
	return s == Falling
}

// Next returns the state implied by the cell below.
// The machine is level-triggered: the result depends only on the current
// neighbour, never on the previous state.
func (s FallingState) Next(belowIsAir bool) FallingState {
	if belowIsAir {
		return Falling
	}
	return Resting
}
