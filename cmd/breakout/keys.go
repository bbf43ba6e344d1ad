package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Shows the key bindings from the effective configuration.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(_ *cobra.Command, _ []string) {
	cfg, source := loadConfig()
	bindings := tui.NewKeyMap(cfg.Keys).All()

	fmt.Printf("Key bindings (from %s):\n", source)
	fmt.Println()

	// Calculate column widths
	maxKeyLen := 4 // "Keys" header
	for _, b := range bindings {
		if n := len(b.Help().Key); n > maxKeyLen {
			maxKeyLen = n
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "Keys", "Action")
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "----", "------")

	for _, b := range bindings {
		fmt.Printf("  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
	}
}
