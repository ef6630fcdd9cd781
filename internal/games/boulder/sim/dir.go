// Package sim implements the grid simulation for the boulder puzzle:
// tiles, gravity, movement resolution and the per-tick update.
// This package is UI-agnostic and deterministic.
package sim

import "strings"

// Dir represents a player movement direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// IsHorizontal reports whether the direction moves along the X axis.
func (d Dir) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

// ParseDir converts a direction name or its first letter (u/d/l/r) to a Dir.
func ParseDir(s string) (Dir, bool) {
	switch strings.ToLower(s) {
	case "up", "u":
		return DirUp, true
	case "right", "r":
		return DirRight, true
	case "down", "d":
		return DirDown, true
	case "left", "l":
		return DirLeft, true
	default:
		return DirUp, false
	}
}

// ParseDirs converts a compact input string such as "RRDL" into directions.
// Whitespace is ignored; any other character is reported as invalid.
func ParseDirs(s string) ([]Dir, bool) {
	dirs := make([]Dir, 0, len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		d, ok := ParseDir(string(r))
		if !ok {
			return nil, false
		}
		dirs = append(dirs, d)
	}
	return dirs, true
}
