package levels

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

const smallLevel = `
.....
.f...
##.##
`

func TestParseOrientation(t *testing.T) {
	data := []byte("..f..\n.@.g.\n#####\n")
	g, err := Parse(data, 5, 3)
	require.NoError(t, err)

	// Top line of the file is the highest row
	assert.Equal(t, Flag, g.At(2, 2))
	assert.Equal(t, Peach, g.At(1, 1))
	assert.Equal(t, Goomba, g.At(3, 1))
	assert.Equal(t, Block, g.At(0, 0))
	assert.Equal(t, Empty, g.At(9, 9), "out of bounds reads as empty")
}

func TestParseFormatRoundTrip(t *testing.T) {
	data := []byte("..m..\n.@%k.\n##|##\n")
	g, err := Parse(data, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(g.Format()))
}

func TestParseAcceptsSpacesAndCRLF(t *testing.T) {
	data := []byte("  f  \r\n @   \r\n#####\r\n\r\n")
	g, err := Parse(data, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, Empty, g.At(0, 2))
	assert.Equal(t, Peach, g.At(1, 1))
}

func TestParseBadFormat(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"too few rows", ".@...\n#####\n"},
		{"short row", "....\n.@...\n#####\n"},
		{"unknown tile", "..x..\n.@...\n#####\n"},
		{"no peach", strings.TrimPrefix(smallLevel, "\n")},
		{"two peaches", ".....\n.@.@.\n#####\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), 5, 3)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadFormat), "got %v", err)
		})
	}
}

func TestFileName(t *testing.T) {
	name, ok := FileName(1)
	assert.True(t, ok)
	assert.Equal(t, "level01.txt", name)

	name, ok = FileName(99)
	assert.True(t, ok)
	assert.Equal(t, "level99.txt", name)

	_, ok = FileName(0)
	assert.False(t, ok)
	_, ok = FileName(100)
	assert.False(t, ok)
}

func TestFSSourceErrors(t *testing.T) {
	src := &FSSource{
		FS: fstest.MapFS{
			"level01.txt": {Data: []byte("..f..\n.@...\n#####\n")},
			"level02.txt": {Data: []byte("garbage\n")},
		},
		Width:  5,
		Height: 3,
	}

	g, err := src.Load(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Count(Peach))

	_, err = src.Load(2)
	assert.ErrorIs(t, err, ErrBadFormat)

	_, err = src.Load(3)
	assert.ErrorIs(t, err, ErrLevelNotFound)

	_, err = src.Load(100)
	assert.ErrorIs(t, err, ErrLevelNotFound)

	assert.Equal(t, 2, Count(src))
}

func TestDirSource(t *testing.T) {
	src := NewDirSource("testdata", 32, 32)

	g, err := src.Load(1)
	require.NoError(t, err)
	assert.Equal(t, Peach, g.At(3, 2))
	assert.Equal(t, Flag, g.At(28, 2))

	_, err = src.Load(2)
	assert.ErrorIs(t, err, ErrBadFormat)

	_, err = src.Load(3)
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestBuiltinCampaign(t *testing.T) {
	src := Builtin(32, 32)
	n := Count(src)
	require.GreaterOrEqual(t, n, 2)

	for lvl := MinLevel; lvl <= n; lvl++ {
		g, err := src.Load(lvl)
		require.NoError(t, err, "level %d", lvl)
		assert.Equal(t, 1, g.Count(Peach), "level %d", lvl)
		if lvl < n {
			assert.Equal(t, 1, g.Count(Flag), "level %d should end in a flag", lvl)
		}
	}

	last, err := src.Load(n)
	require.NoError(t, err)
	assert.Equal(t, 1, last.Count(Mario), "last level should end with Mario")
}

func TestGeneratorDeterministic(t *testing.T) {
	cfg := config.DefaultPeachConfig()
	gen1 := NewGenerator(42, 32, cfg.Generator, config.NewDifficultyManager(cfg.Difficulty))
	gen2 := NewGenerator(42, 32, cfg.Generator, config.NewDifficultyManager(cfg.Difficulty))

	for lvl := 1; lvl <= 5; lvl++ {
		a, err := gen1.Load(lvl)
		require.NoError(t, err)
		b, err := gen2.Load(lvl)
		require.NoError(t, err)
		assert.Equal(t, string(a.Format()), string(b.Format()), "level %d", lvl)
	}
}

func TestGeneratorLayout(t *testing.T) {
	cfg := config.DefaultPeachConfig()
	gen := NewGenerator(7, 32, cfg.Generator, nil)

	for lvl := 1; lvl <= 10; lvl++ {
		g, err := gen.Load(lvl)
		require.NoError(t, err)

		assert.Equal(t, cfg.Generator.Width, g.Width)
		assert.Equal(t, 1, g.Count(Peach))
		assert.Equal(t, 1, g.Count(Flag))
		assert.Equal(t, 0, g.Count(Mario), "endless levels never end the game")

		// Spawn and goal stand on solid ground
		ground := cfg.Generator.GroundRows
		for gx := 0; gx < safeColumns; gx++ {
			assert.Equal(t, Block, g.At(gx, ground-1), "level %d column %d", lvl, gx)
			assert.Equal(t, Block, g.At(g.Width-1-gx, ground-1), "level %d column %d", lvl, g.Width-1-gx)
		}

		// No gap is wider than a jump
		run := 0
		for gx := 0; gx < g.Width; gx++ {
			if g.At(gx, 0) == Empty {
				run++
				assert.LessOrEqual(t, run, maxGap, "level %d gap at %d", lvl, gx)
			} else {
				run = 0
			}
		}
	}

	_, err := gen.Load(0)
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestGeneratorSeedsDiffer(t *testing.T) {
	cfg := config.DefaultPeachConfig()
	a, err := NewGenerator(1, 32, cfg.Generator, nil).Load(1)
	require.NoError(t, err)
	b, err := NewGenerator(2, 32, cfg.Generator, nil).Load(1)
	require.NoError(t, err)
	assert.NotEqual(t, string(a.Format()), string(b.Format()))
}
