package boulder

import (
	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/sim"
)

// Theme overrides tile colors. Empty fields keep the tile's own color.
// Keys and locks always use the color of their key pair.
type Theme struct {
	Flux        core.Color
	Unbreakable core.Color
	Stone       core.Color
	Box         core.Color
	Player      core.Color
}

// DefaultTheme returns the colors the tiles describe themselves with.
func DefaultTheme() Theme {
	return Theme{
		Flux:        sim.ColorFlux,
		Unbreakable: sim.ColorUnbreakable,
		Stone:       sim.ColorStone,
		Box:         sim.ColorBox,
		Player:      sim.ColorPlayer,
	}
}

func (t Theme) colorFor(k sim.Kind, fallback string) core.Color {
	var c core.Color
	switch k {
	case sim.KindFlux:
		c = t.Flux
	case sim.KindUnbreakable:
		c = t.Unbreakable
	case sim.KindStone:
		c = t.Stone
	case sim.KindBox:
		c = t.Box
	case sim.KindPlayer:
		c = t.Player
	}
	if c.IsDefault() {
		return core.Color(fallback)
	}
	return c
}
