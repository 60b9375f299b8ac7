// Package levels provides level grids for Super Peach Sisters: the text
// file format, file and embedded sources, and the endless-mode generator.
// The world package depends on levels but levels does not depend on world.
package levels

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for level loading. Callers check them with errors.Is.
var (
	ErrLevelNotFound = errors.New("level not found")
	ErrBadFormat     = errors.New("bad level format")
)

// Code is one grid cell. The value is the character used in level files.
type Code byte

const (
	Empty         Code = '.'
	Block         Code = '#'
	Pipe          Code = '|'
	StarBlock     Code = '*'
	FlowerBlock   Code = '%'
	MushroomBlock Code = '^'
	Goomba        Code = 'g'
	Koopa         Code = 'k'
	Piranha       Code = 'p'
	Peach         Code = '@'
	Flag          Code = 'f'
	Mario         Code = 'm'
)

// parseCode maps a file character to a Code. Space is an alias for Empty.
func parseCode(c byte) (Code, bool) {
	switch Code(c) {
	case Empty, Block, Pipe, StarBlock, FlowerBlock, MushroomBlock,
		Goomba, Koopa, Piranha, Peach, Flag, Mario:
		return Code(c), true
	}
	if c == ' ' {
		return Empty, true
	}
	return 0, false
}

// Grid is a level layout. Row 0 is the bottom of the level.
type Grid struct {
	Width  int
	Height int
	cells  []Code
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Code, width*height),
	}
	for i := range g.cells {
		g.cells[i] = Empty
	}
	return g
}

// InBounds reports whether (gx, gy) is inside the grid.
func (g *Grid) InBounds(gx, gy int) bool {
	return gx >= 0 && gx < g.Width && gy >= 0 && gy < g.Height
}

// At returns the cell at (gx, gy), or Empty outside the grid.
func (g *Grid) At(gx, gy int) Code {
	if !g.InBounds(gx, gy) {
		return Empty
	}
	return g.cells[gy*g.Width+gx]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(gx, gy int, c Code) {
	if !g.InBounds(gx, gy) {
		return
	}
	g.cells[gy*g.Width+gx] = c
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Code) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Parse reads a level in text form: height rows of width characters, top
// row first. Blank trailing lines and CR line endings are tolerated. Every
// failure wraps ErrBadFormat.
func Parse(data []byte, width, height int) (*Grid, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != height {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrBadFormat, height, len(lines))
	}

	g := NewGrid(width, height)
	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d: want %d columns, got %d", ErrBadFormat, row+1, width, len(line))
		}
		gy := height - 1 - row
		for gx := 0; gx < width; gx++ {
			code, ok := parseCode(line[gx])
			if !ok {
				return nil, fmt.Errorf("%w: row %d column %d: unknown tile %q", ErrBadFormat, row+1, gx+1, line[gx])
			}
			g.Set(gx, gy, code)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the rules every playable grid must satisfy.
func (g *Grid) Validate() error {
	if n := g.Count(Peach); n != 1 {
		return fmt.Errorf("%w: want exactly one peach, got %d", ErrBadFormat, n)
	}
	return nil
}

// Format renders the grid in the text form Parse reads.
func (g *Grid) Format() []byte {
	var buf bytes.Buffer
	buf.Grow((g.Width + 1) * g.Height)
	for gy := g.Height - 1; gy >= 0; gy-- {
		for gx := 0; gx < g.Width; gx++ {
			buf.WriteByte(byte(g.At(gx, gy)))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
