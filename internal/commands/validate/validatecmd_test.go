package validate

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func runValidate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := Run()
	var buf bytes.Buffer
	cmd.Writer = &buf
	err := cmd.Run(context.Background(), append([]string{"validate"}, args...))
	return buf.String(), err
}

func TestValidateCmd_AllValid(t *testing.T) {
	out, err := runValidate(t, "1.0.0", "2.1.3-rc.1", "0.0.1+build")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out, "✓"); got != 3 {
		t.Errorf("output marks %d valid versions, want 3: %q", got, out)
	}
}

func TestValidateCmd_ReportsInvalid(t *testing.T) {
	out, err := runValidate(t, "1.0.0", "1.2", "banana")
	if err == nil {
		t.Fatal("invalid versions accepted, want error")
	}
	if !strings.Contains(err.Error(), "2 invalid") {
		t.Errorf("error = %v, want a count of 2", err)
	}
	if got := strings.Count(out, "✗"); got != 2 {
		t.Errorf("output marks %d invalid versions, want 2: %q", got, out)
	}
	if got := strings.Count(out, "✓"); got != 1 {
		t.Errorf("output marks %d valid versions, want 1: %q", got, out)
	}
}

func TestValidateCmd_NoArgs(t *testing.T) {
	if _, err := runValidate(t); err == nil {
		t.Error("no arguments accepted, want error")
	}
}
