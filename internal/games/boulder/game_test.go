package boulder

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/sim"
	"github.com/vovakirdan/tui-boulder/internal/registry"
)

func testLevel(t *testing.T, rows ...string) levels.Level {
	t.Helper()
	tiles, err := sim.ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	return levels.Level{ID: "test", Name: "Test Level", Tiles: tiles}
}

func newGame(t *testing.T, rows ...string) *Game {
	t.Helper()
	g := New(testLevel(t, rows...), DefaultTheme())
	g.Reset(core.DefaultConfig())
	if g.Err() != nil {
		t.Fatalf("Reset failed: %v", g.Err())
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameStepCountsMoves(t *testing.T) {
	g := newGame(t,
		"######",
		"#@x..#",
		"######",
	)

	steps := []struct {
		action core.Action
		pos    sim.Coord
	}{
		{core.ActionRight, sim.C(2, 1)}, // push
		{core.ActionLeft, sim.C(1, 1)},  // walk
		{core.ActionUp, sim.C(1, 1)},    // wall
		{core.ActionNone, sim.C(1, 1)},  // idle tick
	}
	for i, s := range steps {
		res := g.Step(frame(s.action))
		if !res.Advanced {
			t.Fatalf("step %d did not advance", i)
		}
		if got := g.Simulator().Player(); got != s.pos {
			t.Errorf("step %d: expected player at %v, got %v", i, s.pos, got)
		}
	}

	st := g.State()
	if st.Tick != 4 {
		t.Errorf("expected 4 ticks, got %d", st.Tick)
	}
	if st.Moves != 2 || st.Rejected != 1 || st.Pushes != 1 {
		t.Errorf("unexpected counters %+v", st)
	}
}

func TestGameStepAppliesAllDirectionsInOneTick(t *testing.T) {
	g := newGame(t,
		"#####",
		"#@..#",
		"#####",
	)

	g.Step(frame(core.ActionRight, core.ActionRight))

	if g.Simulator().TickCount() != 1 {
		t.Errorf("expected a single tick, got %d", g.Simulator().TickCount())
	}
	if got := g.Simulator().Player(); got != sim.C(3, 1) {
		t.Errorf("expected both moves applied, player at %v", got)
	}
	if len(g.LastTick().Moves) != 2 {
		t.Errorf("expected 2 moves in the tick, got %d", len(g.LastTick().Moves))
	}
}

func TestGameKeyPickupCounted(t *testing.T) {
	g := newGame(t, "@aA.")

	g.Step(frame(core.ActionRight))

	if g.State().Keys != 1 {
		t.Errorf("expected 1 key, got %d", g.State().Keys)
	}
	if !g.Simulator().Tile(sim.C(2, 0)).IsAir() {
		t.Error("lock should be removed")
	}
}

func TestGamePause(t *testing.T) {
	g := newGame(t, "@..")

	res := g.Step(frame(core.ActionPause, core.ActionRight))
	if res.Advanced || !res.State.Paused {
		t.Fatalf("expected paused without advancing, got %+v", res)
	}
	if g.Simulator().TickCount() != 0 || g.Simulator().Pending() != 0 {
		t.Error("paused step should neither tick nor queue inputs")
	}

	g.Step(frame(core.ActionRight))
	if g.Simulator().Player() != sim.C(0, 0) {
		t.Error("player moved while paused")
	}

	res = g.Step(frame(core.ActionPause, core.ActionRight))
	if !res.Advanced || res.State.Paused {
		t.Fatalf("expected to resume, got %+v", res)
	}
	if g.Simulator().Player() != sim.C(1, 0) {
		t.Errorf("expected move after resume, player at %v", g.Simulator().Player())
	}
}

func TestGameRestart(t *testing.T) {
	g := newGame(t,
		"#####",
		"#@:.#",
		"#####",
	)
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))

	g.Step(frame(core.ActionRestart, core.ActionLeft))

	if g.Simulator().Player() != sim.C(1, 1) {
		t.Errorf("restart should put the player back, got %v", g.Simulator().Player())
	}
	if !g.Simulator().Tile(sim.C(2, 1)).IsFlux() {
		t.Error("restart should restore consumed flux")
	}
	if g.State() != (core.GameState{}) {
		t.Errorf("restart should clear counters, got %+v", g.State())
	}
}

func TestGameSetLevel(t *testing.T) {
	g := newGame(t, "@..")
	g.Step(frame(core.ActionRight))

	next := testLevel(t, "..@")
	next.Name = "Edited"
	g.SetLevel(next)

	if g.Title() != "Edited" {
		t.Errorf("expected new title, got %q", g.Title())
	}
	if g.Simulator().Player() != sim.C(2, 0) {
		t.Errorf("expected new start position, got %v", g.Simulator().Player())
	}
}

func TestGameInvalidLevel(t *testing.T) {
	g := New(testLevel(t, "#.#"), DefaultTheme())
	g.Reset(core.DefaultConfig())

	if g.Err() == nil {
		t.Fatal("expected error for level without a player")
	}
	if res := g.Step(frame(core.ActionRight)); res.Advanced {
		t.Error("broken level should not advance")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "NO_PLAYER") {
		t.Errorf("expected error in overlay, got:\n%s", screen.String())
	}
}

func TestGameRender(t *testing.T) {
	g := newGame(t,
		"######",
		"#@o.x#",
		"######",
	)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Test Level") {
		t.Errorf("HUD should show the level name, got %q", screen.Row(0))
	}

	found := map[rune]core.Color{}
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			if _, seen := found[c.Rune]; !seen {
				found[c.Rune] = c.Color
			}
		}
	}

	want := map[rune]core.Color{
		'@': sim.ColorPlayer,
		'█': sim.ColorUnbreakable,
		'(': sim.ColorStone,
		'[': sim.ColorBox,
	}
	for r, color := range want {
		got, ok := found[r]
		if !ok {
			t.Errorf("glyph %q not rendered", r)
			continue
		}
		if got != color {
			t.Errorf("glyph %q: expected color %q, got %q", r, color, got)
		}
	}
}

func TestGameRenderThemeOverride(t *testing.T) {
	theme := DefaultTheme()
	theme.Stone = "12"
	g := New(testLevel(t, "@o"), theme)
	g.Reset(core.DefaultConfig())

	screen := core.NewScreen(40, 10)
	g.Render(screen)

	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == '(' {
				if c.Color != "12" {
					t.Errorf("expected themed stone color, got %q", c.Color)
				}
				return
			}
		}
	}
	t.Error("stone not rendered")
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newGame(t,
		"##########",
		"#@.......#",
		"##########",
	)
	screen := core.NewScreen(18, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small overlay, got:\n%s", screen.String())
	}
}

func TestRegisterAll(t *testing.T) {
	lvls, err := levels.Bundled(nil)
	if err != nil {
		t.Fatalf("Bundled failed: %v", err)
	}

	reg := registry.New()
	if err := RegisterAll(reg, lvls, DefaultTheme()); err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}
	if reg.Len() != len(lvls) {
		t.Errorf("expected %d entries, got %d", len(lvls), reg.Len())
	}

	game, err := reg.Create("ch02")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	game.Reset(core.DefaultConfig())
	if game.Title() != "Chapter 2" {
		t.Errorf("unexpected title %q", game.Title())
	}

	if err := RegisterAll(reg, lvls[:1], DefaultTheme()); err == nil {
		t.Error("expected duplicate error on second registration")
	}
}
