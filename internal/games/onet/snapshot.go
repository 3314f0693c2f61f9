package onet

import "github.com/vovakirdan/tui-onet/internal/games/onet/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string // "campaign" or "endless"
	Level    int    // 1-indexed; boards played in endless
	Kinds    int
	Score    int
	Pairs    int
	Combo    int
	Board    string // interior rows, see board.Grid.String
	Cursor   board.Cell
	Selected []board.Cell
	Shuffles int // -1 for unlimited
	Hints    int // -1 for unlimited
	TimeLeft int // seconds, 0 when the level is untimed
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Level:    g.levelIndex + 1,
		Kinds:    g.kinds,
		Score:    g.score,
		Pairs:    g.pairs,
		Combo:    g.combo,
		Board:    g.grid.String(),
		Cursor:   g.cursor,
		Selected: g.selector.Selected(),
		Shuffles: g.shufflesLeft,
		Hints:    g.hintsLeft,
		TimeLeft: g.secondsLeft(),
		State:    state,
	}
}
