package tui

import (
	"testing"
)

func TestSemvTheme(t *testing.T) {
	theme := semvTheme()

	if theme == nil {
		t.Fatal("semvTheme() returned nil")
	}

	if !theme.Focused.Title.GetBold() {
		t.Error("Focused.Title should be bold")
	}
	if theme.Focused.Title.GetForeground() == theme.Blurred.Title.GetForeground() {
		t.Error("focused and blurred titles should differ")
	}
}
