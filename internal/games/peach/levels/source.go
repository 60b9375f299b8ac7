package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Level numbers addressable by file name.
const (
	MinLevel = 1
	MaxLevel = 99
)

// Source loads the grid for a level number.
type Source interface {
	Load(n int) (*Grid, error)
}

// FileName returns the file name for level n ("level01.txt"), or false when
// n is outside MinLevel..MaxLevel.
func FileName(n int) (string, bool) {
	if n < MinLevel || n > MaxLevel {
		return "", false
	}
	return fmt.Sprintf("level%02d.txt", n), true
}

// FSSource reads level files from a filesystem.
type FSSource struct {
	FS     fs.FS
	Width  int
	Height int
}

// NewDirSource reads level files from a directory on disk.
func NewDirSource(dir string, width, height int) *FSSource {
	return &FSSource{FS: os.DirFS(dir), Width: width, Height: height}
}

//go:embed campaign/*.txt
var campaignFS embed.FS

// Builtin returns the campaign shipped inside the binary.
func Builtin(width, height int) *FSSource {
	sub, err := fs.Sub(campaignFS, "campaign")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded campaign: %v", err)) // embed paths are fixed at build time
	}
	return &FSSource{FS: sub, Width: width, Height: height}
}

// Load reads and parses level n.
func (s *FSSource) Load(n int) (*Grid, error) {
	name, ok := FileName(n)
	if !ok {
		return nil, fmt.Errorf("level %d: %w", n, ErrLevelNotFound)
	}
	data, err := fs.ReadFile(s.FS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("level %d (%s): %w", n, name, ErrLevelNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	g, err := Parse(data, s.Width, s.Height)
	if err != nil {
		return nil, fmt.Errorf("level %d (%s): %w", n, name, err)
	}
	return g, nil
}

// Count returns how many consecutive levels, starting at MinLevel, the
// source can find. Levels that exist but fail to parse still count.
func Count(src Source) int {
	n := 0
	for lvl := MinLevel; lvl <= MaxLevel; lvl++ {
		if _, err := src.Load(lvl); errors.Is(err, ErrLevelNotFound) {
			break
		}
		n++
	}
	return n
}
