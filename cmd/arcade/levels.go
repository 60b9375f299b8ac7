package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/peach/levels"
)

var (
	flagEndless bool
	flagCount   int
	flagOutDir  string
	flagWidth   int
	flagHeight  int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Check, show or generate level files",
	Long: `Work with level files.

Level files are named level01.txt through level99.txt. Each is a grid of
characters, top row first:

  .  empty        #  block        |  pipe
  *  star block   %  flower block ^  mushroom block
  g  goomba       k  koopa        p  piranha
  @  peach        f  flag         m  mario

Examples:
  arcade levels check ./my-levels
  arcade levels show 1
  arcade levels show 3 --levels ./my-levels
  arcade levels show 2 --endless --seed 7
  arcade levels gen --seed 7 --count 5 --out ./generated`,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate every level in a directory",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsCheck,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <n>",
	Short: "Print a level grid",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsShow,
}

var levelsGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Write generated endless-mode levels to a directory",
	Run:   runLevelsGen,
}

func init() {
	levelsCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	levelsCheckCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width (0 = config default)")
	levelsCheckCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height (0 = config default)")

	levelsShowCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of levelNN.txt files (default: built-in campaign)")
	levelsShowCmd.Flags().BoolVar(&flagEndless, "endless", false, "Show a generated endless-mode level")

	levelsGenCmd.Flags().IntVar(&flagCount, "count", 3, "Number of levels to write")
	levelsGenCmd.Flags().StringVar(&flagOutDir, "out", "levels", "Output directory")

	levelsCmd.AddCommand(levelsCheckCmd)
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsGenCmd)
}

// loadConfig loads --config, falling back to defaults on error.
func loadConfig() config.PeachConfig {
	cfg, err := config.LoadPeach(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		return config.DefaultPeachConfig()
	}
	return cfg
}

func newGenerator(cfg config.PeachConfig) *levels.Generator {
	return levels.NewGenerator(flagSeed, cfg.Gameplay.GridHeight, cfg.Generator, config.NewDifficultyManager(cfg.Difficulty))
}

func runLevelsCheck(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	width, height := cfg.Gameplay.GridWidth, cfg.Gameplay.GridHeight
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	src := levels.NewDirSource(args[0], width, height)
	found, bad := 0, 0
	for lvl := levels.MinLevel; lvl <= levels.MaxLevel; lvl++ {
		grid, err := src.Load(lvl)
		if errors.Is(err, levels.ErrLevelNotFound) {
			break
		}
		found++
		if err != nil {
			bad++
			fmt.Printf("  level %02d  FAIL  %v\n", lvl, err)
			continue
		}
		enemies := grid.Count(levels.Goomba) + grid.Count(levels.Koopa) + grid.Count(levels.Piranha)
		fmt.Printf("  level %02d  ok    %d enemies, %d flags, %d marios\n",
			lvl, enemies, grid.Count(levels.Flag), grid.Count(levels.Mario))
	}

	fmt.Println()
	if found == 0 {
		fmt.Fprintf(os.Stderr, "Error: no level01.txt in %s\n", args[0])
		os.Exit(1)
	}
	fmt.Printf("%d levels, %d failed\n", found, bad)
	if bad > 0 {
		os.Exit(1)
	}
}

func runLevelsShow(_ *cobra.Command, args []string) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad level number %q\n", args[0])
		os.Exit(1)
	}

	cfg := loadConfig()
	var src levels.Source
	switch {
	case flagEndless:
		src = newGenerator(cfg)
	case flagLevelsDir != "":
		src = levels.NewDirSource(flagLevelsDir, cfg.Gameplay.GridWidth, cfg.Gameplay.GridHeight)
	default:
		src = levels.Builtin(cfg.Gameplay.GridWidth, cfg.Gameplay.GridHeight)
	}

	grid, err := src.Load(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(grid.Format())
}

func runLevelsGen(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	gen := newGenerator(cfg)

	if err := os.MkdirAll(flagOutDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width := cfg.Generator.Width
	for lvl := levels.MinLevel; lvl < levels.MinLevel+flagCount; lvl++ {
		name, ok := levels.FileName(lvl)
		if !ok {
			break
		}
		grid, err := gen.Load(lvl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		path := filepath.Join(flagOutDir, name)
		if err := os.WriteFile(path, grid.Format(), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		width = grid.Width
		fmt.Printf("  wrote %s (%dx%d)\n", path, grid.Width, grid.Height)
	}

	fmt.Println()
	fmt.Printf("Check with: arcade levels check %s --width %d --height %d\n",
		flagOutDir, width, cfg.Gameplay.GridHeight)
}
