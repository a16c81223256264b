package compare

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func runCompare(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := Run()
	var buf bytes.Buffer
	cmd.Writer = &buf
	err := cmd.Run(context.Background(), append([]string{"compare"}, args...))
	return buf.String(), err
}

func TestCompareCmd(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"less", "1.0.0", "2.0.0", "1.0.0 < 2.0.0"},
		{"greater", "2.1.1", "2.1.0", "2.1.1 > 2.1.0"},
		{"equal", "1.2.3", "1.2.3", "1.2.3 = 1.2.3"},
		{"pre-release below release", "1.0.0-rc.1", "1.0.0", "1.0.0-rc.1 < 1.0.0"},
		{"build metadata ignored", "1.0.0+linux", "1.0.0+darwin", "1.0.0+linux = 1.0.0+darwin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCompare(t, tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompareCmd_Errors(t *testing.T) {
	if _, err := runCompare(t, "1.0.0"); err == nil {
		t.Error("one argument accepted, want error")
	}
	if _, err := runCompare(t, "1.0.0", "2.0.0", "3.0.0"); err == nil {
		t.Error("three arguments accepted, want error")
	}
	if _, err := runCompare(t, "nope", "1.0.0"); err == nil {
		t.Error("invalid first version accepted, want error")
	}
	if _, err := runCompare(t, "1.0.0", "nope"); err == nil {
		t.Error("invalid second version accepted, want error")
	}
}
