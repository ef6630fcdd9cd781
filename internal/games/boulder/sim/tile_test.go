package sim

import "testing"

func allTiles() []Tile {
	return []Tile{
		Air(), Flux(), Unbreakable(), PlayerMarker(),
		Stone(Resting), Stone(Falling), Box(Resting), Box(Falling),
		Key(YellowKey), Lock(YellowKey), Key(BlueKey), Lock(BlueKey),
	}
}

func TestTilePredicatesAreExclusive(t *testing.T) {
	for _, tile := range allTiles() {
		preds := []bool{
			tile.IsAir(), tile.IsFlux(), tile.IsUnbreakable(), tile.IsPlayer(),
			tile.IsStone(), tile.IsBox(), tile.IsKey(), tile.IsLock(),
		}
		n := 0
		for _, p := range preds {
			if p {
				n++
			}
		}
		if n != 1 {
			t.Errorf("%v: %d kind predicates true, expected 1", tile.Kind, n)
		}
	}
}

func TestTileCapabilities(t *testing.T) {
	tests := []struct {
		tile     Tile
		gravity  bool
		falling  bool
		walkable bool
		pushable bool
	}{
		{Air(), false, false, true, false},
		{Flux(), false, false, true, false},
		{Unbreakable(), false, false, false, false},
		{PlayerMarker(), false, false, false, false},
		{Stone(Resting), true, false, false, true},
		{Stone(Falling), true, true, false, false},
		{Box(Resting), true, false, false, true},
		{Box(Falling), true, true, false, false},
		{Key(YellowKey), false, false, false, false},
		{Lock(YellowKey), false, false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.tile.Kind.String(), func(t *testing.T) {
			if got := tc.tile.HasGravity(); got != tc.gravity {
				t.Errorf("HasGravity = %v, expected %v", got, tc.gravity)
			}
			if got := tc.tile.IsFalling(); got != tc.falling {
				t.Errorf("IsFalling = %v, expected %v", got, tc.falling)
			}
			if got := tc.tile.IsWalkable(); got != tc.walkable {
				t.Errorf("IsWalkable = %v, expected %v", got, tc.walkable)
			}
			if got := tc.tile.IsPushable(); got != tc.pushable {
				t.Errorf("IsPushable = %v, expected %v", got, tc.pushable)
			}
		})
	}
}

func TestFallingStateTransitions(t *testing.T) {
	tests := []struct {
		from       FallingState
		belowIsAir bool
		want       FallingState
	}{
		{Resting, true, Falling},
		{Resting, false, Resting},
		{Falling, true, Falling},
		{Falling, false, Resting},
	}
	for _, tc := range tests {
		if got := tc.from.Next(tc.belowIsAir); got != tc.want {
			t.Errorf("%v.Next(%v) = %v, expected %v", tc.from, tc.belowIsAir, got, tc.want)
		}
	}
}

func TestKeyRemovesOnlyItsLocks(t *testing.T) {
	if !YellowKey.Removes(Lock(YellowKey)) {
		t.Error("yellow key should remove yellow lock")
	}
	if YellowKey.Removes(Lock(BlueKey)) {
		t.Error("yellow key should not remove blue lock")
	}
	if YellowKey.Removes(Key(YellowKey)) {
		t.Error("key should not remove another key")
	}
	if YellowKey.Removes(Stone(Resting)) {
		t.Error("key should not remove a stone")
	}
}

func TestCodeRoundTrip(t *testing.T) {
	for code := CodeAir; code <= CodeLock2; code++ {
		tile, ok := TileFromCode(code)
		if !ok {
			t.Fatalf("code %d not recognized", code)
		}
		if got := CodeOf(tile); got != code {
			t.Errorf("CodeOf(TileFromCode(%d)) = %d", code, got)
		}
	}
	if _, ok := TileFromCode(CodeLock2 + 1); ok {
		t.Error("code past the last tile should be rejected")
	}
}

func TestParseRows(t *testing.T) {
	raw, err := ParseRows([]string{"#@ :", "oxAb"})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	want := [][]int{
		{int(CodeUnbreakable), int(CodePlayerStart), int(CodeAir), int(CodeFlux)},
		{int(CodeStone), int(CodeBox), int(CodeLock1), int(CodeKey2)},
	}
	for y := range want {
		for x := range want[y] {
			if raw[y][x] != want[y][x] {
				t.Errorf("(%d,%d): expected %d, got %d", x, y, want[y][x], raw[y][x])
			}
		}
	}

	if _, err := ParseRows([]string{"#?#"}); err == nil {
		t.Error("expected error for unknown glyph")
	} else if ce, ok := err.(ConfigError); !ok || ce.Code != ErrCodeBadGlyph {
		t.Errorf("expected BAD_GLYPH, got %v", err)
	}
}

func TestParseDirs(t *testing.T) {
	dirs, ok := ParseDirs("r R d\nl u")
	if !ok {
		t.Fatal("ParseDirs rejected valid input")
	}
	want := []Dir{DirRight, DirRight, DirDown, DirLeft, DirUp}
	if len(dirs) != len(want) {
		t.Fatalf("expected %d dirs, got %d", len(want), len(dirs))
	}
	for i := range want {
		if dirs[i] != want[i] {
			t.Errorf("dir %d: expected %v, got %v", i, want[i], dirs[i])
		}
	}

	if _, ok := ParseDirs("rxl"); ok {
		t.Error("expected failure on unknown direction")
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	for _, c := range []Coord{C(-1, 0), C(0, -1), C(2, 0), C(0, 2)} {
		if !g.Get(c).IsUnbreakable() {
			t.Errorf("Get(%v) should report unbreakable", c)
		}
		g.Set(c, Stone(Resting))
	}
	if g.Count(KindAir) != 4 {
		t.Error("out-of-bounds Set modified the grid")
	}
}

func TestDrawDescriptor(t *testing.T) {
	tests := []struct {
		tile    Tile
		visible bool
		color   string
	}{
		{Air(), false, ""},
		{PlayerMarker(), false, ""},
		{Flux(), true, ColorFlux},
		{Unbreakable(), true, ColorUnbreakable},
		{Stone(Falling), true, ColorStone},
		{Box(Resting), true, ColorBox},
		{Key(YellowKey), true, YellowKey.Color},
		{Lock(BlueKey), true, BlueKey.Color},
	}

	for _, tc := range tests {
		d := tc.tile.DrawDescriptor(C(2, 3))
		if d.Visible != tc.visible {
			t.Errorf("%v: Visible = %v, expected %v", tc.tile.Kind, d.Visible, tc.visible)
			continue
		}
		if !d.Visible {
			continue
		}
		if d.Color != tc.color {
			t.Errorf("%v: Color = %q, expected %q", tc.tile.Kind, d.Color, tc.color)
		}
		if d.Rect.X != 2*TileSize || d.Rect.Y != 3*TileSize || d.Rect.W != TileSize || d.Rect.H != TileSize {
			t.Errorf("%v: unexpected rect %+v", tc.tile.Kind, d.Rect)
		}
	}

	p := Player{Pos: C(1, 1)}
	d := p.DrawDescriptor()
	if !d.Visible || d.Color != ColorPlayer || d.Rect.X != TileSize {
		t.Errorf("unexpected player descriptor %+v", d)
	}
}

func TestRenderASCII(t *testing.T) {
	raw, err := ParseRows([]string{"####", "#@o#", "####"})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	s, err := Initialize(raw)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	s.EnqueueInput(DirLeft)

	want := "Tick: 0 | Player: (1,1) | Pending: 1\n" +
		"####\n" +
		"#@o#\n" +
		"####\n"
	if got := RenderASCII(s); got != want {
		t.Errorf("RenderASCII mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if got := RenderGridCompact(s.grid); got != "#####@o#####" {
		t.Errorf("RenderGridCompact = %q", got)
	}
}
