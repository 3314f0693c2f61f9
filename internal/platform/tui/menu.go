package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-onet/internal/config"
	"github.com/vovakirdan/tui-onet/internal/core"
	"github.com/vovakirdan/tui-onet/internal/games/onet"
)

// Selection holds what the player chose in the menu.
type Selection struct {
	Mode   onet.Mode
	Level  int // 0 = start from beginning, otherwise a 1-based campaign level
	Preset config.DifficultyPreset
}

// Main menu entries, in display order.
const (
	menuCampaign = iota
	menuEndless
	menuSelectLevel
	menuDifficulty
	menuScores
	menuQuit
	menuItemCount
)

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyZen,
}

// MenuModel lets players choose a mode, starting level and difficulty.
type MenuModel struct {
	cursor         int
	levelCursor    int
	presetIndex    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	keys           KeyMap
	theme          Theme
	selection      Selection
	choosing       bool
	quitting       bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model starting on the given preset.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		config:   cfg,
		keys:     DefaultKeyMap(),
		theme:    GetTheme(),
		choosing: true,
	}
	m.presetIndex = 1
	for i, p := range presets {
		if p == preset {
			m.presetIndex = i
		}
	}
	return m
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleMainKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, menuItemCount)
	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, menuItemCount)
	case MenuActionLeft:
		if m.cursor == menuDifficulty {
			m.presetIndex = core.Wrap(m.presetIndex-1, len(presets))
		}
	case MenuActionRight:
		if m.cursor == menuDifficulty {
			m.presetIndex = core.Wrap(m.presetIndex+1, len(presets))
		}
	case MenuActionSelect:
		switch m.cursor {
		case menuCampaign:
			return m.choose(onet.ModeCampaign, 0)
		case menuEndless:
			return m.choose(onet.ModeEndless, 0)
		case menuSelectLevel:
			m.inLevelSelect = true
			m.levelCursor = 0
		case menuDifficulty:
			m.presetIndex = core.Wrap(m.presetIndex+1, len(presets))
		case menuScores:
			m.openScoreboard = true
			return m, tea.Quit
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < onet.LevelCount()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.choose(onet.ModeCampaign, m.levelCursor+1)
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

func (m MenuModel) choose(mode onet.Mode, level int) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = Selection{Mode: mode, Level: level, Preset: presets[m.presetIndex]}
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMain()
}

func (m MenuModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(m.theme.MenuTitle.Render("O N E T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(m.theme.MenuDescription.Render("Connect matching tiles with at most two turns"), m.width))
	b.WriteString("\n\n")

	items := [menuItemCount]string{
		menuCampaign:    fmt.Sprintf("Campaign (%d levels)", onet.LevelCount()),
		menuEndless:     "Endless Mode",
		menuSelectLevel: "Select Level...",
		menuDifficulty:  "Difficulty: " + m.theme.MenuValue.Render("< "+string(presets[m.presetIndex])+" >"),
		menuScores:      "High Scores",
		menuQuit:        "Quit",
	}
	for i, item := range items {
		b.WriteString(centerStyled(m.renderItem(i == m.cursor, item), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(m.theme.Help.Render("Enter: Select  |  Left/Right: Difficulty  |  Q: Quit"), m.width))
	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(m.theme.MenuTitle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, name := range onet.LevelNames() {
		lvl := onet.GetLevel(i)
		line := fmt.Sprintf("%2d. %-14s %s", i+1, name,
			m.theme.MenuDescription.Render(fmt.Sprintf("%dx%d, %d kinds", lvl.Columns, lvl.Rows, lvl.Kinds)))
		b.WriteString(centerStyled(m.renderItem(i == m.levelCursor, line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(m.theme.Help.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

func (m MenuModel) renderItem(active bool, text string) string {
	if active {
		return m.theme.MenuItemActive.Render("> ") + m.theme.MenuItemActive.Render(text)
	}
	return "  " + m.theme.MenuItemNormal.Render(text)
}

// Selected returns the selection, or nil if still choosing.
func (m MenuModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// Preset returns the difficulty currently shown in the menu.
func (m MenuModel) Preset() config.DifficultyPreset {
	return presets[m.presetIndex]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text that may carry ANSI styling.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *Selection
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Preset: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Preset: preset, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Preset: m.Preset(),
	}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.Selection = m.Selected()
	}
	return result, nil
}
