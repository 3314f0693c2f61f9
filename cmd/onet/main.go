// onet is the Onet tile-matching puzzle for the terminal.
//
// Usage:
//
//	onet                     - Start the menu
//	onet play                - Play a game directly
//	onet check <board>       - Analyze a board file or directory
//	onet scores [game]       - Show high scores
//	onet serve               - Start SSH server for remote play
//	onet list                - List game modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible deals
//	--db <path>     - Set database path (default: ~/.onet/scores.db)
//	--debug         - Log engine and game events
//	--log-file      - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-onet/internal/games/onet/board"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "onet",
	Short: "Onet - connect matching tiles in your terminal",
	Long: `Onet is a tile-matching puzzle. Two tiles of the same kind can be
removed when a path of at most three straight segments joins them
through empty cells. The path may run around the outside of the board.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu (the default)
  check    - Analyze a board file
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - Show game modes

Examples:
  onet
  onet play --mode endless --difficulty hard
  onet play --board ./boards/corners.yaml
  onet check ./boards/corners.yaml --from 1,1 --to 5,3
  onet serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.onet/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log engine and game events")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the logger for a command. Full-screen commands pass
// interactive so that logs without --log-file never reach the terminal.
// The returned function closes the log file, if any.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var (
		out     io.Writer = os.Stderr
		closeFn           = func() {}
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "onet",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
		board.SetLogger(logger.WithPrefix("board"))
	}
	return logger, closeFn, nil
}
