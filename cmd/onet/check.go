package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-onet/internal/config"
	"github.com/vovakirdan/tui-onet/internal/games/onet"
	"github.com/vovakirdan/tui-onet/internal/games/onet/board"
	"github.com/vovakirdan/tui-onet/internal/games/onet/levels"
)

var (
	flagStrategy string
	flagFrom     string
	flagTo       string
	flagID       string
)

var checkCmd = &cobra.Command{
	Use:   "check <board.yaml|dir>",
	Short: "Analyze a board file",
	Long: `Print a board, whether it still has a straight-line move, the pairs
the shadow matcher finds, and the first move a full search finds.

Given a directory, every board file below it is summarized, or the
board named by --id is analyzed.
With --from and --to, also connect two cells and print the waypoints.
Cells are column,row on the bordered grid, so the top-left tile is 1,1.

Examples:
  onet check ./boards/corners.yaml
  onet check ./boards --strategy track
  onet check ./boards --id b02
  onet check ./boards/corners.yaml --from 1,1 --to 5,3`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagStrategy, "strategy", config.StrategyRay, "Connection strategy: ray or track")
	checkCmd.Flags().StringVar(&flagFrom, "from", "", "First cell to connect (column,row)")
	checkCmd.Flags().StringVar(&flagTo, "to", "", "Second cell to connect (column,row)")
	checkCmd.Flags().StringVar(&flagID, "id", "", "Board id to analyze when given a directory")
}

func parseStrategy(s string) (board.Strategy, error) {
	switch s {
	case config.StrategyRay:
		return board.StrategyRay, nil
	case config.StrategyTrack:
		return board.StrategyTrack, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want ray or track)", s)
	}
}

func parseCell(s string) (board.Cell, error) {
	var c board.Cell
	if _, err := fmt.Sscanf(s, "%d,%d", &c.Column, &c.Row); err != nil {
		return board.Cell{}, fmt.Errorf("invalid cell %q (want column,row)", s)
	}
	return c, nil
}

func runCheck(_ *cobra.Command, args []string) error {
	strategy, err := parseStrategy(flagStrategy)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}
	var lvl levels.Level
	switch {
	case info.IsDir() && flagID != "":
		if lvl, err = levels.NewLoader(args[0]).LoadByID(flagID); err != nil {
			return err
		}
	case info.IsDir():
		all, err := levels.NewLoader(args[0]).LoadAll()
		if err != nil {
			return err
		}
		logger.Debug("loaded boards", "dir", args[0], "count", len(all))
		for i := range all {
			if err := summarize(&all[i], strategy); err != nil {
				return err
			}
		}
		return nil
	default:
		if lvl, err = levels.LoadFile(args[0]); err != nil {
			return err
		}
	}

	g, err := lvl.ToGrid()
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)  %dx%d\n\n", lvl.Name, lvl.ID, lvl.Width, lvl.Height)
	fmt.Println(g.String())
	fmt.Println()
	fmt.Printf("Tiles:           %d\n", g.FilledCount())
	fmt.Printf("Straight move:   %v\n", g.StillHasMove())

	couples := g.Couples()
	fmt.Printf("Straight pairs:  %d\n", len(couples))
	for _, c := range couples {
		fmt.Printf("  %s - %s\n", c[0], c[1])
	}

	if mv, ok := onet.FindMove(g, strategy); ok {
		fmt.Printf("First move:      %s - %s via %v\n", mv.From, mv.To, mv.Waypoints)
	} else {
		fmt.Println("First move:      none")
	}

	if flagFrom == "" && flagTo == "" {
		return nil
	}
	return connect(g, strategy)
}

// summarize prints one line per board in a directory scan.
func summarize(lvl *levels.Level, strategy board.Strategy) error {
	g, err := lvl.ToGrid()
	if err != nil {
		return err
	}
	_, playable := onet.FindMove(g, strategy)
	fmt.Printf("%-12s %-20s %2dx%-2d tiles=%-3d straight=%-5v playable=%v\n",
		lvl.ID, lvl.Name, lvl.Width, lvl.Height, g.FilledCount(), g.StillHasMove(), playable)
	return nil
}

// connect joins --from and --to and prints the result.
func connect(g *board.Grid, strategy board.Strategy) error {
	from, err := parseCell(flagFrom)
	if err != nil {
		return err
	}
	to, err := parseCell(flagTo)
	if err != nil {
		return err
	}

	if err := checkPair(g, from, to); err != nil {
		return err
	}

	var waypoints []board.Cell
	if strategy == board.StrategyTrack {
		waypoints, err = g.ConnectTrack(from, to)
	} else {
		waypoints, err = g.Connect(from, to)
	}

	var connErr *board.ConnectError
	switch {
	case errors.As(err, &connErr):
		fmt.Printf("Connect %s - %s: no path\n", from, to)
		for _, p := range connErr.Probes {
			fmt.Printf("  probe %s\n", p)
		}
		return nil
	case err != nil:
		return err
	}
	fmt.Printf("Connect %s - %s: %v (%d turns)\n", from, to, waypoints, len(waypoints)-2)
	return nil
}

// checkPair rejects cells that cannot form a pair, the same way the
// game's selector does: both must hold the same tile.
func checkPair(g *board.Grid, from, to board.Cell) error {
	for _, c := range []board.Cell{from, to} {
		if g.Get(c) == board.NoTile {
			return fmt.Errorf("%w: %s is empty", board.ErrMismatch, c)
		}
	}
	if ta, tb := g.Get(from), g.Get(to); ta != tb {
		return fmt.Errorf("%w: %s holds %d, %s holds %d", board.ErrMismatch, from, ta, to, tb)
	}
	return nil
}
