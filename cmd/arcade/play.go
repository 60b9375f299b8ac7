package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/peach"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagStartLevel int
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/A, Right/D  - Walk
  Up/W             - Jump
  Space/X          - Throw a fireball (after picking up a flower)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, longer star power, slower piranhas
  normal - Config defaults, scaling with the level number
  hard   - Fewer lives, shorter star power, faster piranhas
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play peach
  arcade play peach --difficulty hard
  arcade play peach --levels ./my-levels --start-level 2
  arcade play peach_endless --seed 7 --sound
  arcade play peach --config ./my-peach.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that tune a game before it is created.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of levelNN.txt files (default: built-in campaign)")
	cmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "First level to play (0 = config default)")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects through the speaker")
}

// applyGameFlags hands the game flags to the game packages.
func applyGameFlags() {
	peach.SetConfigPath(flagConfig)
	peach.SetDifficultyPreset(flagDifficulty)
	peach.SetLevelsDir(flagLevelsDir)
	peach.SetStartLevel(flagStartLevel)
	peach.SetSoundEnabled(flagSound)
}

// terminalConfig builds the runtime config from the terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()
	peach.SetLogger(logger)
	applyGameFlags()
	defer peach.CloseSound()

	cfg := terminalConfig()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	// A level that failed to load ends the run; say why once the alt screen is gone
	if lg, ok := game.(interface{ LoadError() error }); ok && lg.LoadError() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", lg.LoadError())
		os.Exit(1)
	}
}
