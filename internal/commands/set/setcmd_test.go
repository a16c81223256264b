package set

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/indaco/semv/internal/config"
	"github.com/indaco/semv/internal/manifest"
)

func TestSetCmd(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile(".version", []byte("1.0.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := Run(config.Default())
	if err := cmd.Run(context.Background(), []string{"set", "2.0.0-rc.1"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(".version")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2.0.0-rc.1\n" {
		t.Errorf(".version = %q, want %q", data, "2.0.0-rc.1\n")
	}
}

func TestSetCmd_SyncsSources(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile("package.json", []byte(`{"name": "demo", "version": "1.0.0"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Sources = []manifest.Source{
		{Path: "package.json", Format: manifest.FormatJSON, Field: "version"},
	}

	cmd := Run(cfg)
	if err := cmd.Run(context.Background(), []string{"set", "1.1.0"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile("package.json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"1.1.0"`) {
		t.Errorf("package.json = %q, want it to contain the new version", data)
	}
}

func TestSetCmd_Errors(t *testing.T) {
	t.Chdir(t.TempDir())
	cmd := Run(config.Default())
	ctx := context.Background()

	if err := cmd.Run(ctx, []string{"set"}); err == nil {
		t.Error("missing argument accepted, want error")
	}
	if err := cmd.Run(ctx, []string{"set", "not-a-version"}); err == nil {
		t.Error("invalid version accepted, want error")
	}
}
