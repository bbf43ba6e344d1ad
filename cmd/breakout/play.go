package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H    - Move paddle left
  Right/D/L   - Move paddle right
  Enter       - Start, restart after a win or loss
  ?           - Toggle full help
  Q/Ctrl+C    - Quit

Keys can be changed in the config file (see 'breakout config').

Examples:
  breakout play
  breakout play --config ./my-breakout.yaml
  breakout play --log-file /tmp/breakout.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, source := loadConfig()

	// The alt screen owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger(io.Discard, "breakout")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Info("starting game", "config", source, "fps", rt.TickRate, "screen", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH))

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	})
	if runErr != nil {
		logger.Error("game exited", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
