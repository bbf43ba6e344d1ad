package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// Must match defaults/breakout.yaml.
func Default() Config {
	return Config{
		Input: InputConfig{
			HoldMs: 150,
		},
		Keys: KeysConfig{
			Left:     []string{"left", "a", "h"},
			Right:    []string{"right", "d", "l"},
			Confirm:  []string{"enter"},
			ForceWin: []string{"v"},
			Quit:     []string{"q", "ctrl+c"},
			Help:     []string{"?"},
		},
		Theme: ThemeConfig{
			Paddle: "=",
			Ball:   "●",
			Block:  "█",
			Life:   "●",
		},
	}
}
