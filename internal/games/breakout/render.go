package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Theme holds the glyphs used to draw game objects.
type Theme struct {
	Paddle rune
	Ball   rune
	Block  rune
	Life   rune
}

// DefaultTheme returns the built-in glyphs.
func DefaultTheme() Theme {
	return Theme{
		Paddle: '=',
		Ball:   '●',
		Block:  '█',
		Life:   '●',
	}
}

// Overlay texts
const (
	TextStart   = "Press ENTER to start"
	TextWin     = "YOU WIN!"
	TextLose    = "GAME OVER"
	TextRestart = "Press ENTER to restart"
)

// projection maps world units onto screen cells.
type projection struct {
	sx, sy float64
}

func newProjection(v View, dst *core.Screen) projection {
	return projection{
		sx: float64(dst.Width()) / float64(v.WorldW),
		sy: float64(dst.Height()) / float64(v.WorldH),
	}
}

func (p projection) x(wx float64) int {
	return int(math.Floor(wx * p.sx))
}

func (p projection) y(wy float64) int {
	return int(math.Floor(wy * p.sy))
}

// rect converts a world rectangle to cells, never smaller than one cell.
func (p projection) rect(r core.RectF) core.Rect {
	x0, y0 := p.x(r.X), p.y(r.Y)
	w := core.Max(1, p.x(r.Right())-x0)
	h := core.Max(1, p.y(r.Bottom())-y0)
	return core.NewRect(x0, y0, w, h)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderView(g.View(), g.theme, dst)
}

// RenderView draws a view into dst, scaling the world to the screen size.
func RenderView(v View, theme Theme, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || v.WorldW <= 0 || v.WorldH <= 0 {
		return
	}

	proj := newProjection(v, dst)

	switch v.Phase {
	case PhaseWon:
		drawCenteredBox(dst, TextWin, core.ColorGreen, v.Score)
		return
	case PhaseLost:
		drawCenteredBox(dst, TextLose, core.ColorRed, v.Score)
		return
	}

	renderBlocks(v, theme, proj, dst)
	renderPaddle(v, theme, proj, dst)
	renderBall(v, theme, proj, dst)
	renderHUD(v, theme, proj, dst)

	if v.Phase == PhaseWaitingToStart {
		dst.DrawTextCentered(proj.y(float64(v.WorldH)/2), TextStart, core.ColorRed)
	}
}

// renderBlocks draws all alive blocks, leaving a gap column between wide ones.
func renderBlocks(v View, theme Theme, proj projection, dst *core.Screen) {
	for row := range Rows {
		for col := range Cols {
			block := v.Blocks[row][col]
			if !block.Alive {
				continue
			}

			cells := proj.rect(block.Rect)
			if cells.W >= 3 {
				cells.W--
			}
			dst.DrawRect(cells, theme.Block, block.Color)
		}
	}
}

func renderPaddle(v View, theme Theme, proj projection, dst *core.Screen) {
	cells := proj.rect(v.Paddle.Rect)
	cells.H = 1
	dst.DrawRect(cells, theme.Paddle, v.Paddle.Color)
}

func renderBall(v View, theme Theme, proj projection, dst *core.Screen) {
	r := v.Ball.Radius * math.Min(proj.sx, proj.sy)
	dst.DrawCircle(v.Ball.Pos.X*proj.sx, v.Ball.Pos.Y*proj.sy, r, theme.Ball, core.ColorYellow)
}

// renderHUD draws the score and one marker per remaining life.
func renderHUD(v View, theme Theme, proj projection, dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", v.Score), core.ColorGreen)

	for i := range v.Lives {
		x := proj.x(float64(v.WorldW - 20 - i*30))
		if x >= dst.Width() {
			x = dst.Width() - 1
		}
		dst.SetCell(x, 0, theme.Life, core.ColorRed)
	}
}

// drawCenteredBox draws an end-of-game message box.
func drawCenteredBox(dst *core.Screen, title string, titleColor core.Color, score int) {
	scoreLine := fmt.Sprintf("Score: %d", score)

	boxW := core.Max(len(title), len(TextRestart)) + 4
	boxH := 7
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)
	dst.DrawTextCentered(boxY+1, title, titleColor)
	dst.DrawTextCentered(boxY+3, scoreLine, core.ColorWhite)
	dst.DrawTextCentered(boxY+5, TextRestart, core.ColorWhite)
}
