package onet

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-onet/internal/config"
	"github.com/vovakirdan/tui-onet/internal/core"
	"github.com/vovakirdan/tui-onet/internal/games/onet/board"
	"github.com/vovakirdan/tui-onet/internal/games/onet/levels"
	"github.com/vovakirdan/tui-onet/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

const (
	flashTicks        = 30 // connection path and failed probes
	hintSeconds       = 3
	messageSeconds    = 2
	levelClearSeconds = 2
)

// Game events reported in StepResult.Events.
const (
	EventPair         = "pair"
	EventMismatch     = "mismatch"
	EventNoPath       = "no_path"
	EventHint         = "hint"
	EventShuffle      = "shuffle"
	EventAutoShuffle  = "auto_shuffle"
	EventLevelCleared = "level_cleared"
	EventGameOver     = "game_over"
	EventWon          = "won"
)

// Game implements the Onet puzzle.
type Game struct {
	mode       Mode
	cfg        config.OnetConfig
	custom     *levels.Level // campaign plays only this board when set
	startLevel int           // campaign level to restart at, 1-based; 0 for the first
	difficulty *config.DifficultyManager
	strategy   board.Strategy
	rng        *rand.Rand
	tick       uint64
	tickRate   int

	grid       *board.Grid
	selector   *board.Selector
	cursor     board.Cell
	levelIndex int // Current level (0-indexed); boards cleared in endless
	levelName  string
	kinds      int

	score        int
	pairs        int
	combo        int
	lastPairTick uint64 // 0 until the first pair of a level
	shufflesLeft int    // -1 means unlimited
	hintsLeft    int    // -1 means unlimited
	timed        bool
	clockTicks   int

	// Transient display state
	path         []board.Cell
	pathTicks    int
	probes       []board.Path
	probeTicks   int
	hint         [2]board.Cell
	hintTicks    int
	message      string
	messageTicks int
	events       []string

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
	clearBonus      int
}

// Package-level variables for config
var (
	selectedStartLevel int
	selectedConfig     = config.DefaultOnetConfig()
	selectedBoard      *levels.Level
)

// SetStartLevel sets the starting campaign level (1-based). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.OnetConfig) {
	selectedConfig = cfg
}

// SetBoard makes campaign games play a single board loaded from a file.
// nil restores the built-in campaign.
func SetBoard(lvl *levels.Level) {
	selectedBoard = lvl
}

// NewGame creates a game in the given mode with an explicit configuration.
func NewGame(mode Mode, cfg config.OnetConfig) *Game {
	return &Game{
		mode: mode,
		cfg:  cfg,
	}
}

// StartAt makes campaign games begin, and restart, at the given 1-based level.
func (g *Game) StartAt(level int) *Game {
	g.startLevel = level
	return g
}

// New creates a new campaign mode game.
func New() *Game {
	g := NewGame(ModeCampaign, selectedConfig)
	g.custom = selectedBoard
	if selectedStartLevel > 0 {
		g.startLevel = selectedStartLevel
		selectedStartLevel = 0
	}
	return g
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return NewGame(ModeEndless, selectedConfig)
}

func init() {
	registry.Register("onet", func() registry.Game {
		return New()
	})
	registry.Register("onet_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "onet_endless"
	}
	return "onet"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Onet (Endless)"
	}
	return "Onet"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.score = 0
	g.pairs = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.clearBonus = 0

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.strategy = board.StrategyRay
	if g.cfg.Rules.Strategy == config.StrategyTrack {
		g.strategy = board.StrategyTrack
	}
	g.selector = board.NewSelector()

	// Start level applies to campaign only
	g.levelIndex = 0
	if start := g.startLevel; g.mode == ModeCampaign && g.custom == nil && start > 0 && start <= LevelCount() {
		g.levelIndex = start - 1
	}

	g.loadLevel()
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// loadLevel deals the current level's board and refills per-level allowances.
func (g *Game) loadLevel() {
	levelNum := g.levelIndex + 1

	g.selector.Reset()
	g.clearFlashes()
	g.combo = 0
	g.lastPairTick = 0

	g.grid = nil
	if g.mode == ModeCampaign && g.custom != nil {
		if grid, err := g.custom.ToGrid(); err == nil {
			g.grid = grid
			g.levelName = g.custom.Name
			g.kinds = g.custom.Kinds
		}
	}
	if g.grid == nil {
		columns, rows, kinds, name := g.boardShape(levelNum)
		g.levelName = name
		g.kinds = clampKinds(g.difficulty.Kinds(kinds, levelNum))
		if pairs := columns * rows / 2; pairs > 0 && g.kinds > pairs {
			g.kinds = pairs
		}
		grid, err := dealPlayable(columns, rows, g.kinds, g.strategy, g.rng)
		if err != nil {
			grid = g.fallbackGrid()
		}
		g.grid = grid
	}
	if !HasMove(g.grid, g.strategy) {
		reshuffle(g.grid, g.strategy, g.rng)
	}

	g.shufflesLeft = g.cfg.Rules.Shuffles
	g.hintsLeft = g.cfg.Rules.Hints
	seconds := g.difficulty.TimeLimit(g.cfg.Rules.TimeLimit, levelNum)
	g.timed = seconds > 0
	g.clockTicks = seconds * g.tickRate

	g.cursor = board.C(1, 1)
	if filled := g.grid.FilledCells(); len(filled) > 0 {
		g.cursor = filled[0]
	}

	g.checkScreenSize()
}

// fallbackGrid deals the first built-in level for configs that skipped
// validation. It never returns nil: if that deal fails too the board is
// an empty single pair slot, which counts as cleared.
func (g *Game) fallbackGrid() *board.Grid {
	first := Levels[0]
	g.kinds = clampKinds(first.Kinds)
	if grid, err := dealPlayable(first.Columns, first.Rows, g.kinds, g.strategy, g.rng); err == nil {
		return grid
	}
	grid, err := board.NewGrid(2, 1)
	if err != nil {
		panic(err)
	}
	return grid
}

// boardShape returns the play area and base kind count for a level.
func (g *Game) boardShape(levelNum int) (columns, rows, kinds int, name string) {
	if g.mode == ModeEndless {
		b := g.cfg.Board
		return b.Columns, b.Rows, b.Kinds, fmt.Sprintf("Board %d", levelNum)
	}
	level := GetLevel(g.levelIndex)
	if level == nil {
		level = GetLevel(LevelCount() - 1)
	}
	return level.Columns, level.Rows, level.Kinds, level.Name
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	if g.grid == nil {
		return
	}
	minW := g.grid.Columns()*cellWidth + 2
	minH := hudHeight + g.grid.Rows() + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	// Handle window size check
	if g.tooSmall {
		return g.result()
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		// Will be reset by platform
		return g.result()
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearSeconds*g.tickRate {
			g.advanceLevel()
		}
		return g.result()
	}

	if g.gameOver || g.won {
		return g.result()
	}

	g.decayFlashes()

	if g.timed {
		g.clockTicks--
		if g.clockTicks <= 0 {
			g.clockTicks = 0
			g.endGame("Time's up")
			return g.result()
		}
	}

	for _, a := range in.Actions() {
		if g.gameOver || g.levelCleared {
			break
		}
		switch a {
		case core.ActionUp:
			g.moveCursor(board.Up)
		case core.ActionDown:
			g.moveCursor(board.Down)
		case core.ActionLeft:
			g.moveCursor(board.Left)
		case core.ActionRight:
			g.moveCursor(board.Right)
		case core.ActionSelect:
			g.selectCursor()
		case core.ActionHint:
			g.useHint()
		case core.ActionShuffle:
			g.useShuffle()
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// moveCursor moves within the play area, wrapping at the edges.
func (g *Game) moveCursor(d board.Direction) {
	dc, dr := d.Delta()
	w, h := g.grid.Columns()-2, g.grid.Rows()-2
	g.cursor = board.C(
		1+core.Wrap(g.cursor.Column-1+dc, w),
		1+core.Wrap(g.cursor.Row-1+dr, h),
	)
}

// selectCursor adds the cursor cell to the selection and resolves a full one.
func (g *Game) selectCursor() {
	if g.grid.Get(g.cursor) == board.NoTile {
		return
	}
	g.selector.Select(g.cursor)
	if len(g.selector.Selected()) < 2 {
		return
	}

	at := time.Duration(g.tick) * time.Second / time.Duration(g.tickRate)
	removal, err := g.selector.Resolve(g.grid, g.strategy, at)

	var ce *board.ConnectError
	switch {
	case err == nil:
		g.onRemoval(removal)
	case errors.Is(err, board.ErrMismatch):
		g.combo = 0
		g.flash("Tiles differ")
		g.emit(EventMismatch)
	case errors.As(err, &ce):
		g.combo = 0
		g.probes = ce.Probes
		g.probeTicks = flashTicks
		g.flash("No path with two turns or fewer")
		g.emit(EventNoPath)
	default:
		g.flash(err.Error())
	}
}

// onRemoval scores a removed pair and checks what is left on the board.
func (g *Game) onRemoval(r board.Removal) {
	sc := g.cfg.Scoring
	g.pairs++
	points := sc.PairPoints
	if g.lastPairTick > 0 && g.tick-g.lastPairTick <= uint64(sc.ComboWindow) {
		g.combo++
		points += g.combo * sc.ComboBonus
		g.flash(fmt.Sprintf("Combo x%d", g.combo+1))
	} else {
		g.combo = 0
	}
	g.lastPairTick = g.tick
	g.score += points

	g.path = r.Waypoints
	g.pathTicks = flashTicks
	g.probes = nil
	g.probeTicks = 0
	g.hintTicks = 0
	g.emit(EventPair)

	if g.grid.IsCleared() {
		g.clearLevel()
		return
	}
	g.ensureMove()
}

// clearLevel awards the time bonus and starts the level clear pause.
func (g *Game) clearLevel() {
	g.clearBonus = 0
	if g.timed {
		g.clearBonus = g.secondsLeft() * g.cfg.Scoring.TimeBonus
	}
	g.score += g.clearBonus
	g.levelCleared = true
	g.levelClearTicks = 0
	g.emit(EventLevelCleared)
}

// advanceLevel moves past a cleared board.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.mode == ModeCampaign && (g.custom != nil || g.levelIndex >= LevelCount()-1) {
		g.won = true
		g.emit(EventWon)
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// ensureMove shuffles a stuck board while shuffles remain and ends the game otherwise.
func (g *Game) ensureMove() {
	if HasMove(g.grid, g.strategy) {
		return
	}
	for attempt := 0; g.shufflesLeft != 0 && attempt < maxDealAttempts; attempt++ {
		g.spendShuffle()
		if reshuffle(g.grid, g.strategy, g.rng) {
			g.flash("No moves left, tiles shuffled")
			g.emit(EventAutoShuffle)
			return
		}
	}
	g.endGame("No moves left")
}

// useShuffle handles the shuffle key.
func (g *Game) useShuffle() {
	if g.shufflesLeft == 0 {
		g.flash("No shuffles left")
		return
	}
	g.spendShuffle()
	g.selector.Reset()
	g.hintTicks = 0
	g.emit(EventShuffle)
	if !reshuffle(g.grid, g.strategy, g.rng) {
		g.ensureMove()
		return
	}
	g.flash("Shuffled")
}

// useHint highlights a removable pair at the cost of some points.
func (g *Game) useHint() {
	if g.hintsLeft == 0 {
		g.flash("No hints left")
		return
	}

	var pair [2]board.Cell
	if couples := g.grid.Couples(); len(couples) > 0 {
		pair = couples[0]
	} else if m, ok := FindMove(g.grid, g.strategy); ok {
		pair = [2]board.Cell{m.From, m.To}
	} else {
		g.flash("No moves left")
		return
	}

	if g.hintsLeft > 0 {
		g.hintsLeft--
	}
	g.score -= g.cfg.Scoring.HintPenalty
	if g.score < 0 {
		g.score = 0
	}
	g.combo = 0
	g.hint = pair
	g.hintTicks = hintSeconds * g.tickRate
	g.emit(EventHint)
}

func (g *Game) spendShuffle() {
	if g.shufflesLeft > 0 {
		g.shufflesLeft--
	}
}

func (g *Game) endGame(reason string) {
	g.gameOver = true
	g.selector.Reset()
	g.flash(reason)
	g.emit(EventGameOver)
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = messageSeconds * g.tickRate
}

func (g *Game) emit(event string) {
	g.events = append(g.events, event)
}

func (g *Game) clearFlashes() {
	g.path, g.pathTicks = nil, 0
	g.probes, g.probeTicks = nil, 0
	g.hintTicks = 0
	g.message, g.messageTicks = "", 0
}

func (g *Game) decayFlashes() {
	decay := func(n *int) {
		if *n > 0 {
			*n--
		}
	}
	decay(&g.pathTicks)
	decay(&g.probeTicks)
	decay(&g.hintTicks)
	decay(&g.messageTicks)
}

// secondsLeft rounds the remaining clock up to whole seconds.
func (g *Game) secondsLeft() int {
	if !g.timed {
		return 0
	}
	return (g.clockTicks + g.tickRate - 1) / g.tickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Pairs:    g.pairs,
		Level:    g.levelIndex + 1,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}
