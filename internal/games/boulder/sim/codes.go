package sim

import "fmt"

// Code is a raw tile code as stored in level data.
type Code int

const (
	CodeAir Code = iota
	CodeFlux
	CodeUnbreakable
	CodePlayerStart
	CodeStone
	CodeFallingStone
	CodeBox
	CodeFallingBox
	CodeKey1
	CodeLock1
	CodeKey2
	CodeLock2
)

// Configuration error codes returned by Initialize.
const (
	ErrCodeEmptyGrid       = "EMPTY_GRID"
	ErrCodeRaggedGrid      = "RAGGED_GRID"
	ErrCodeUnknownTile     = "UNKNOWN_TILE"
	ErrCodeNoPlayer        = "NO_PLAYER"
	ErrCodeMultiplePlayers = "MULTIPLE_PLAYERS"
	ErrCodeBadGlyph        = "BAD_GLYPH"
)

// ConfigError reports malformed level data.
type ConfigError struct {
	Code    string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// TileFromCode converts a raw code into its tile.
func TileFromCode(code Code) (Tile, bool) {
	switch code {
	case CodeAir:
		return Air(), true
	case CodeFlux:
		return Flux(), true
	case CodeUnbreakable:
		return Unbreakable(), true
	case CodePlayerStart:
		return PlayerMarker(), true
	case CodeStone:
		return Stone(Resting), true
	case CodeFallingStone:
		return Stone(Falling), true
	case CodeBox:
		return Box(Resting), true
	case CodeFallingBox:
		return Box(Falling), true
	case CodeKey1:
		return Key(YellowKey), true
	case CodeLock1:
		return Lock(YellowKey), true
	case CodeKey2:
		return Key(BlueKey), true
	case CodeLock2:
		return Lock(BlueKey), true
	default:
		return Tile{}, false
	}
}

// CodeOf returns the raw code that reproduces the tile.
// Keys and locks with a config outside the two predefined pairs map to pair 1.
func CodeOf(t Tile) Code {
	switch t.Kind {
	case KindAir:
		return CodeAir
	case KindFlux:
		return CodeFlux
	case KindUnbreakable:
		return CodeUnbreakable
	case KindPlayer:
		return CodePlayerStart
	case KindStone:
		if t.State.IsFalling() {
			return CodeFallingStone
		}
		return CodeStone
	case KindBox:
		if t.State.IsFalling() {
			return CodeFallingBox
		}
		return CodeBox
	case KindKey:
		if t.Key.ID == Key2 {
			return CodeKey2
		}
		return CodeKey1
	case KindLock:
		if t.Key.ID == Key2 {
			return CodeLock2
		}
		return CodeLock1
	default:
		return CodeAir
	}
}

// glyphs maps raw codes to their ASCII form, used by ParseRows and RenderASCII.
var glyphs = map[Code]rune{
	CodeAir:          '.',
	CodeFlux:         ':',
	CodeUnbreakable:  '#',
	CodePlayerStart:  '@',
	CodeStone:        'o',
	CodeFallingStone: 'O',
	CodeBox:          'x',
	CodeFallingBox:   'X',
	CodeKey1:         'a',
	CodeLock1:        'A',
	CodeKey2:         'b',
	CodeLock2:        'B',
}

// Glyph returns the ASCII character for a tile.
func Glyph(t Tile) rune {
	return glyphs[CodeOf(t)]
}

// ParseRows converts ASCII rows into raw codes.
// A space is accepted as air. Row lengths are not checked here.
func ParseRows(rows []string) ([][]int, error) {
	byGlyph := make(map[rune]Code, len(glyphs))
	for code, r := range glyphs {
		byGlyph[r] = code
	}

	raw := make([][]int, len(rows))
	for y, row := range rows {
		raw[y] = make([]int, 0, len(row))
		for x, r := range row {
			if r == ' ' {
				r = '.'
			}
			code, ok := byGlyph[r]
			if !ok {
				return nil, ConfigError{
					Code:    ErrCodeBadGlyph,
					Message: fmt.Sprintf("unknown glyph %q at (%d,%d)", r, x, y),
				}
			}
			raw[y] = append(raw[y], int(code))
		}
	}
	return raw, nil
}
