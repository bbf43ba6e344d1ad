package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() differ:\nyaml:    %+v\ndefault: %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
input:
  hold_ms: 250
keys:
  force_win: [x]
theme:
  paddle: "#"
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Input.HoldMs != 250 {
		t.Errorf("hold_ms = %d, expected 250", cfg.Input.HoldMs)
	}
	if !reflect.DeepEqual(cfg.Keys.ForceWin, []string{"x"}) {
		t.Errorf("force_win = %v, expected [x]", cfg.Keys.ForceWin)
	}
	if cfg.Theme.Paddle != "#" {
		t.Errorf("paddle glyph = %q, expected #", cfg.Theme.Paddle)
	}

	// Unspecified settings keep their defaults
	if !reflect.DeepEqual(cfg.Keys.Left, Default().Keys.Left) {
		t.Errorf("left keys = %v, expected defaults %v", cfg.Keys.Left, Default().Keys.Left)
	}
	if cfg.Theme.Ball != Default().Theme.Ball {
		t.Errorf("ball glyph = %q, expected default %q", cfg.Theme.Ball, Default().Theme.Ball)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    filepath.Join(dir, "nope.yaml"),
			wantErr: "failed to read config",
		},
		{
			name:    "bad yaml",
			path:    writeFile(t, dir, "bad.yaml", "keys: [unclosed"),
			wantErr: "failed to parse config",
		},
		{
			name:    "invalid values",
			path:    writeFile(t, dir, "invalid.yaml", "input:\n  hold_ms: 0\n"),
			wantErr: "hold_ms must be positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Load(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load without files should not fail: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("fallback config should equal Default()")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(work, "configs"), "breakout.yaml", "input:\n  hold_ms: 300\n")

	cfg, source, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if source != localConfigPath || cfg.Input.HoldMs != 300 {
		t.Errorf("local config should be used, got source=%q hold_ms=%d", source, cfg.Input.HoldMs)
	}

	// User config wins over the local one
	if err := os.MkdirAll(filepath.Join(home, ".breakout"), 0o755); err != nil {
		t.Fatal(err)
	}
	userPath := writeFile(t, filepath.Join(home, ".breakout"), "config.yaml", "input:\n  hold_ms: 400\n")

	cfg, source, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if source != userPath || cfg.Input.HoldMs != 400 {
		t.Errorf("user config should win, got source=%q hold_ms=%d", source, cfg.Input.HoldMs)
	}

	// A broken user config is skipped
	writeFile(t, filepath.Join(home, ".breakout"), "config.yaml", "input: [")
	_, source, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if source != localConfigPath {
		t.Errorf("broken user config should fall through, got source=%q", source)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero hold", func(c *Config) { c.Input.HoldMs = 0 }},
		{"no left keys", func(c *Config) { c.Keys.Left = nil }},
		{"no force win keys", func(c *Config) { c.Keys.ForceWin = []string{} }},
		{"empty glyph", func(c *Config) { c.Theme.Ball = "" }},
		{"long glyph", func(c *Config) { c.Theme.Block = "##" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.breakout/host_key")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".breakout", "host_key"); got != want {
		t.Errorf("ExpandHome = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute paths should be unchanged, got %q", got)
	}
}

func TestGlyph(t *testing.T) {
	if Glyph("●") != '●' {
		t.Error("Glyph should decode multibyte runes")
	}
	if Glyph("=") != '=' {
		t.Error("Glyph should decode ASCII")
	}
}
