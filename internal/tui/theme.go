package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// currentTheme holds the configured theme for TUI forms. When nil,
// Theme() returns the default semv theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name. Unknown or empty names fall
// back to the semv theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

// Theme returns the theme interactive forms should render with.
func Theme() *huh.Theme {
	if currentTheme == nil {
		return semvTheme()
	}
	return currentTheme
}

// semvTheme is the default look: cyan accents matching the printer
// styles, built on top of the plain base theme.
func semvTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color("6")).Bold(true)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(lipgloss.Color("2"))
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(lipgloss.Color("6"))
	t.Blurred.Title = t.Blurred.Title.Foreground(lipgloss.Color("8"))
	return t
}
