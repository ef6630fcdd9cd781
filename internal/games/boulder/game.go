// Package boulder adapts the boulder simulation to the platform's Game
// interface: one Game per level, driven by the TUI or the headless runner.
package boulder

import (
	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/sim"
	"github.com/vovakirdan/tui-boulder/internal/registry"
)

// Game plays a single level.
type Game struct {
	level levels.Level
	theme Theme
	cfg   core.RuntimeConfig

	sim    *sim.Simulator
	err    error // Set when the level could not be initialized
	paused bool
	state  core.GameState
	last   sim.TickResult

	// Rendering config
	cellW     int // Terminal columns per tile
	cellH     int // Terminal rows per tile
	hudHeight int
}

// New creates a game for the given level. Call Reset before stepping.
func New(level levels.Level, theme Theme) *Game {
	return &Game{
		level:     level,
		theme:     theme,
		cfg:       core.DefaultConfig(),
		cellW:     2,
		cellH:     1,
		hudHeight: 2,
	}
}

// Factory returns a registry factory for the level.
func Factory(level levels.Level, theme Theme) registry.Factory {
	return func() registry.Game {
		return New(level, theme)
	}
}

// RegisterAll registers one entry per level.
func RegisterAll(reg *registry.Registry, lvls []levels.Level, theme Theme) error {
	for _, lvl := range lvls {
		if err := reg.Register(lvl.ID, Factory(lvl, theme)); err != nil {
			return err
		}
	}
	return nil
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	return g.level.Name
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Reset rebuilds the simulation from the level's start state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.paused = false
	g.state = core.GameState{}
	g.last = sim.TickResult{}
	g.sim, g.err = g.level.NewSimulator()
}

// SetLevel swaps in a new version of the level (after a file change) and
// restarts it.
func (g *Game) SetLevel(level levels.Level) {
	g.level = level
	g.Reset(g.cfg)
}

// Err returns the level initialization error, if any.
func (g *Game) Err() error {
	return g.err
}

// Simulator exposes the running simulation. Nil if the level failed to load.
func (g *Game) Simulator() *sim.Simulator {
	return g.sim
}

// LastTick returns the result of the most recent tick.
func (g *Game) LastTick() sim.TickResult {
	return g.last
}

// Step advances the game by one tick.
// Directional actions are queued in press order, then the simulation ticks once.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.cfg)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Directions() {
		if d, ok := dirFor(a); ok {
			g.sim.EnqueueInput(d)
		}
	}

	g.last = g.sim.Tick()
	g.record(g.last)

	return core.StepResult{State: g.State(), Advanced: true}
}

func (g *Game) record(res sim.TickResult) {
	g.state.Tick = res.Tick
	for _, m := range res.Moves {
		switch m.Result {
		case sim.MoveRejected:
			g.state.Rejected++
			continue
		case sim.MovePushed:
			g.state.Pushes++
		case sim.MovePickedKey:
			g.state.Keys++
		}
		g.state.Moves++
	}
}

// State returns the current game state. A level never ends on its own.
func (g *Game) State() core.GameState {
	s := g.state
	s.Paused = g.paused
	return s
}

func dirFor(a core.Action) (sim.Dir, bool) {
	switch a {
	case core.ActionUp:
		return sim.DirUp, true
	case core.ActionDown:
		return sim.DirDown, true
	case core.ActionLeft:
		return sim.DirLeft, true
	case core.ActionRight:
		return sim.DirRight, true
	default:
		return sim.DirUp, false
	}
}
