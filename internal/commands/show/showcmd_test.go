package show

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/indaco/semv/internal/config"
)

func runShow(t *testing.T, versionFile string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	if versionFile != "" {
		if err := os.WriteFile(".version", []byte(versionFile), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cmd := Run(config.Default())
	var buf bytes.Buffer
	cmd.Writer = &buf
	err := cmd.Run(context.Background(), append([]string{"show"}, args...))
	return buf.String(), err
}

func TestShowCmd(t *testing.T) {
	out, err := runShow(t, "1.2.3-rc.1+build.5\n")
	if err != nil {
		t.Fatal(err)
	}
	if want := "1.2.3-rc.1+build.5\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestShowCmd_JSON(t *testing.T) {
	out, err := runShow(t, "1.2.3\n", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if want := `"1.2.3"` + "\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestShowCmd_MissingFile(t *testing.T) {
	if _, err := runShow(t, ""); err == nil {
		t.Fatal("missing version file accepted, want error")
	}
}
