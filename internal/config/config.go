// Package config provides YAML-based configuration loading for the game:
// key bindings, input timing, and glyph theme.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Config contains all user-tunable settings.
type Config struct {
	Input InputConfig `yaml:"input"`
	Keys  KeysConfig  `yaml:"keys"`
	Theme ThemeConfig `yaml:"theme"`
}

// InputConfig controls how terminal key events become held keys.
type InputConfig struct {
	HoldMs int `yaml:"hold_ms"`
}

// HoldWindow returns the hold window as a duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMs) * time.Millisecond
}

// KeysConfig lists the terminal key names bound to each action.
// Names follow Bubble Tea's key strings ("left", "enter", "ctrl+c").
type KeysConfig struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Confirm  []string `yaml:"confirm"`
	ForceWin []string `yaml:"force_win"`
	Quit     []string `yaml:"quit"`
	Help     []string `yaml:"help"`
}

// ThemeConfig holds the single-character glyphs for game objects.
type ThemeConfig struct {
	Paddle string `yaml:"paddle"`
	Ball   string `yaml:"ball"`
	Block  string `yaml:"block"`
	Life   string `yaml:"life"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks that every action is bound and every glyph is one rune.
func (c Config) Validate() error {
	if c.Input.HoldMs <= 0 {
		return fmt.Errorf("%w: input.hold_ms must be positive, got %d", ErrInvalid, c.Input.HoldMs)
	}

	bindings := []struct {
		name string
		keys []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"confirm", c.Keys.Confirm},
		{"force_win", c.Keys.ForceWin},
		{"quit", c.Keys.Quit},
		{"help", c.Keys.Help},
	}
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalid, b.name)
		}
	}

	glyphs := []struct {
		name  string
		value string
	}{
		{"paddle", c.Theme.Paddle},
		{"ball", c.Theme.Ball},
		{"block", c.Theme.Block},
		{"life", c.Theme.Life},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%w: theme.%s must be a single character, got %q", ErrInvalid, g.name, g.value)
		}
	}
	return nil
}

// Glyph returns the first rune of a theme value.
func Glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
