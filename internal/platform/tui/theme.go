package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles used by the menus and scoreboard.
type Theme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuValue       lipgloss.Style

	// Scoreboard styles
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	TableBorder   lipgloss.Color
	Stats         lipgloss.Style
	Empty         lipgloss.Style

	// Footer
	Help lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuValue:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")),

		TableHeader:   lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true),
		TableSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		TableBorder:   lipgloss.Color("240"),
		Stats:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Empty:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	theme.MenuValue = lipgloss.NewStyle().Underline(true)
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	return theme
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
