package printer

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// TestRenderFunctions verifies that all render functions return non-empty styled strings.
func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
		input    string
	}{
		{"Faint", Faint, "test text"},
		{"Bold", Bold, "test text"},
		{"Success", Success, "test text"},
		{"Error", Error, "test text"},
		{"Warning", Warning, "test text"},
		{"Info", Info, "test text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function(tt.input)

			if result == "" {
				t.Errorf("%s() returned empty string", tt.name)
			}

			// The styled output may or may not contain ANSI codes depending on
			// terminal detection, but it must contain the original text.
			if !strings.Contains(result, tt.input) {
				t.Errorf("%s() result does not contain input text. got %q, want to contain %q", tt.name, result, tt.input)
			}
		})
	}
}

// TestSetNoColor checks that disabling color strips ANSI sequences.
func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	if got := Success("plain"); got != "plain" {
		t.Errorf("Success() with color disabled = %q, want %q", got, "plain")
	}
	if got := Bold("plain"); got != "plain" {
		t.Errorf("Bold() with color disabled = %q, want %q", got, "plain")
	}
}

// TestPrintFunctions verifies that print functions write the text to stdout.
func TestPrintFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string)
		input    string
	}{
		{"PrintFaint", PrintFaint, "test text"},
		{"PrintBold", PrintBold, "test text"},
		{"PrintSuccess", PrintSuccess, "test text"},
		{"PrintError", PrintError, "test text"},
		{"PrintWarning", PrintWarning, "test text"},
		{"PrintInfo", PrintInfo, "test text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, func() { tt.function(tt.input) })
			if !strings.Contains(out, tt.input) {
				t.Errorf("%s output = %q, want to contain %q", tt.name, out, tt.input)
			}
		})
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = orig })

	fn()

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	os.Stdout = orig
	return buf.String()
}
