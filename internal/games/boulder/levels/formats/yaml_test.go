package formats

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/sim"
)

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"missing id", "name: x\nrows: [\"@\"]\n", ErrMissingID},
		{"no layout", "id: x\n", ErrNoLayout},
		{"both layouts", "id: x\nrows: [\"@\"]\ntiles: [[3]]\n", ErrDoubleLayout},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := ParseYAML([]byte("id: x\nrows: [\"@?\"]\n")); err == nil {
		t.Error("expected error for unknown glyph")
	}
	if _, err := ParseYAML([]byte("id: [unclosed\n")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestParseYAMLRows(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: r\nname: Rows\nrows:\n  - \"#@a\"\n  - \"oxB\"\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	want := [][]int{
		{int(sim.CodeUnbreakable), int(sim.CodePlayerStart), int(sim.CodeKey1)},
		{int(sim.CodeStone), int(sim.CodeBox), int(sim.CodeLock2)},
	}
	for y := range want {
		for x := range want[y] {
			if lvl.Tiles[y][x] != want[y][x] {
				t.Errorf("(%d,%d): expected %d, got %d", x, y, want[y][x], lvl.Tiles[y][x])
			}
		}
	}
}

func TestMarshalYAMLUsesRows(t *testing.T) {
	lvl := Level{ID: "m", Name: "M", Tiles: [][]int{{2, 3, 5}}}

	data, err := MarshalYAML(lvl)
	if err != nil {
		t.Fatalf("MarshalYAML failed: %v", err)
	}
	back, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed on %q: %v", data, err)
	}
	if back.Tiles[0][2] != int(sim.CodeFallingStone) {
		t.Errorf("falling stone lost, got %v", back.Tiles)
	}

	if _, err := MarshalYAML(Level{ID: "bad", Tiles: [][]int{{42}}}); err == nil {
		t.Error("expected error for unknown code")
	}
}
