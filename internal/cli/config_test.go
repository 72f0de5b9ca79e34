package cli

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/adrg/xdg"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `exclude:
  files:
    - /opt/cache/
  folders:
    - /mnt
interp: /usr/bin/env
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(cfg.Exclude.Files, []string{"/opt/cache/"}) {
		t.Fatalf("Exclude.Files = %v", cfg.Exclude.Files)
	}
	if !slices.Equal(cfg.Exclude.Folders, []string{"/mnt"}) {
		t.Fatalf("Exclude.Folders = %v", cfg.Exclude.Folders)
	}
	if cfg.Interp != "/usr/bin/env" {
		t.Fatalf("Interp = %q, want %q", cfg.Interp, "/usr/bin/env")
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "gone.yaml")); err == nil {
		t.Fatal("explicitly named missing config should fail")
	}
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	// The default location is resolved via XDG; point it somewhere empty.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if len(cfg.Exclude.Files) != 0 || cfg.Interp != "" {
		t.Fatal("missing default config should yield zero values")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("exclude: ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Fatal("malformed config should fail")
	}
}
