// arcade runs Super Peach Sisters in the terminal.
//
// Usage:
//
//	arcade list                 - List available games
//	arcade play <game>          - Play a game
//	arcade menu                 - Start menu to pick games interactively
//	arcade scores <game>        - Show high scores or recent runs for a game
//	arcade levels check <dir>   - Validate a directory of level files
//	arcade levels show <n>      - Print a level grid
//	arcade levels gen           - Write generated levels to a directory
//	arcade simulate <game>      - Run a game headless with scripted input
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 20)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.arcade/scores.db)
//	--log <path>      - Write logs to a file
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-platformer/internal/games/peach"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Super Peach Sisters - a platformer in your terminal",
	Long: `Super Peach Sisters is a side-scrolling platformer that runs in
the terminal. Guide Peach past Goombas, Koopas and Piranhas, collect
power-ups from goodie blocks, and reach the flag at the end of each level.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  scores    - View high scores and recent runs
  levels    - Check, show or generate level files
  simulate  - Run a game headless with scripted input

Examples:
  arcade list
  arcade play peach
  arcade play peach_endless --seed 7
  arcade menu
  arcade scores peach --runs
  arcade simulate peach --ticks 600 --input "right*40,jump,right*20"`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "peach",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// fileLogger logs to --log, or discards when it is unset. The alt screen
// owns stdout and stderr while a game runs.
func fileLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}
