package sim

// KeyID identifies a key/lock pair.
type KeyID uint8

const (
	KeyNone KeyID = iota
	Key1
	Key2
)

// KeyConfig pairs a key's display identity with the locks it removes.
// Configs are plain values compared by ID; a key and its locks carry
// equal copies.
type KeyConfig struct {
	ID    KeyID
	Name  string
	Color string // Hex RGB, e.g. "#ffcc00"
}

// Predefined key configurations for the two key/lock tile codes.
var (
	YellowKey = KeyConfig{ID: Key1, Name: "yellow", Color: "#ffcc00"}
	BlueKey   = KeyConfig{ID: Key2, Name: "blue", Color: "#00ccff"}
)

// Removes reports whether picking up this key dissolves the given tile.
func (k KeyConfig) Removes(t Tile) bool {
	return t.IsLock() && t.Key.ID == k.ID
}

// KeyConfigFor returns the predefined configuration for an ID.
func KeyConfigFor(id KeyID) (KeyConfig, bool) {
	switch id {
	case Key1:
		return YellowKey, true
	case Key2:
		return BlueKey, true
	default:
		return KeyConfig{}, false
	}
}
