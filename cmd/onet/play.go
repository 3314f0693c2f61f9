package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-onet/internal/config"
	"github.com/vovakirdan/tui-onet/internal/core"
	"github.com/vovakirdan/tui-onet/internal/games/onet"
	"github.com/vovakirdan/tui-onet/internal/games/onet/levels"
	"github.com/vovakirdan/tui-onet/internal/platform/tui"
	"github.com/vovakirdan/tui-onet/internal/registry"
	"github.com/vovakirdan/tui-onet/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagLevel      int
	flagBoard      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing Onet directly, skipping the menu.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Select a tile
  H            - Show a matching pair
  X            - Shuffle the remaining tiles
  P            - Pause
  Esc          - Pause, then back to menu
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Smaller boards, more shuffles and hints, a longer clock
  normal - The default board and clock
  hard   - Larger boards with more kinds, a shorter clock
  zen    - No clock, unlimited shuffles and hints

Examples:
  onet play
  onet play --mode endless --difficulty hard
  onet play --level 4
  onet play --board ./boards/corners.yaml
  onet play --config ./my-onet.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Onet with the interactive menu",
	Long: `Start Onet in interactive menu mode.

Pick campaign, endless or a starting level, and cycle the difficulty
with Left/Right. After a game ends, you return to the menu.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, rootCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, zen")
	}
	playCmd.Flags().StringVar(&flagMode, "mode", string(onet.ModeCampaign), "Game mode: campaign or endless")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based)")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Play a single board from a YAML file")
}

// session carries what every interactive command needs.
type session struct {
	cfg     config.OnetConfig
	preset  config.DifficultyPreset
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	closeFn func()
}

func openSession() (*session, error) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOnet(flagConfig)
	if err != nil {
		closeLog()
		return nil, err
	}

	preset := config.DifficultyNormal
	if flagDifficulty != "" {
		if preset, err = config.ParsePreset(flagDifficulty); err != nil {
			closeLog()
			return nil, err
		}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	s := &session{
		cfg:    cfg,
		preset: preset,
		runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		store:  store,
		logger: logger,
	}
	s.closeFn = func() {
		if store != nil {
			store.Close()
		}
		closeLog()
	}
	return s, nil
}

// prepare hands the chosen configuration to the registered game factories.
func (s *session) prepare(preset config.DifficultyPreset) {
	cfg := s.cfg
	if flagDifficulty != "" || preset != config.DifficultyNormal {
		config.ApplyOnetPreset(&cfg, preset)
	}
	onet.SetConfig(cfg)
}

func gameID(mode onet.Mode) string {
	if mode == onet.ModeEndless {
		return "onet_endless"
	}
	return "onet"
}

func runPlay(_ *cobra.Command, _ []string) error {
	mode := onet.Mode(flagMode)
	if mode != onet.ModeCampaign && mode != onet.ModeEndless {
		return fmt.Errorf("unknown mode %q (want campaign or endless)", flagMode)
	}
	if flagLevel < 0 || flagLevel > onet.LevelCount() {
		return fmt.Errorf("level must be between 1 and %d", onet.LevelCount())
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.closeFn()

	if flagBoard != "" {
		lvl, err := levels.LoadFile(flagBoard)
		if err != nil {
			return err
		}
		if _, err := lvl.ToGrid(); err != nil {
			return err
		}
		onet.SetBoard(&lvl)
		mode = onet.ModeCampaign
	}

	s.prepare(s.preset)
	onet.SetStartLevel(flagLevel)

	// Create game instance
	game, err := registry.Create(gameID(mode))
	if err != nil {
		return err
	}

	s.logger.Info("starting game", "game", game.ID(), "level", flagLevel, "difficulty", s.preset)
	_, err = tui.Run(game, s.store, s.runtime, s.logger)
	return err
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.closeFn()

	cfg := s.runtime
	preset := s.preset

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		sel := menuResult.Selection
		s.prepare(sel.Preset)
		onet.SetBoard(nil)
		onet.SetStartLevel(sel.Level)

		game, err := registry.Create(gameID(sel.Mode))
		if err != nil {
			return err
		}

		// Update seed for each game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		s.logger.Info("starting game", "game", game.ID(), "level", sel.Level, "difficulty", sel.Preset)
		backToMenu, err := tui.Run(game, s.store, cfg, s.logger)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
