package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRenderScreen(t *testing.T) {
	p := newPalette(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "Score", core.ColorGreen)
	s.DrawText(6, 0, "10", core.ColorWhite)
	s.DrawText(2, 2, "ball", core.ColorRed)

	out := p.RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "Score") || !strings.Contains(lines[0], "10") {
		t.Errorf("first line should contain the HUD, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "ball") {
		t.Errorf("last line should contain the text, got %q", lines[2])
	}
}

func TestPaletteCoversColors(t *testing.T) {
	p := newPalette(nil)
	colors := []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorGreen, core.ColorYellow,
		core.ColorWhite, core.ColorOrange, core.ColorPink, core.ColorGray,
	}
	for _, c := range colors {
		if _, ok := p[c]; !ok {
			t.Errorf("palette has no style for %s", c)
		}
	}
}
