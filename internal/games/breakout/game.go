// Package breakout implements the breakout simulation: a paddle deflects a
// ball into a fixed grid of blocks. The package is pure logic; the platform
// supplies frame deltas and input, and displays what Render draws.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the game's top-level mode.
type Phase int

const (
	PhaseWaitingToStart Phase = iota // Paused until the player confirms
	PhasePlaying                     // Simulation advances every frame
	PhaseWon                         // No blocks left, or forced
	PhaseLost                        // No lives left
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaitingToStart:
		return "waiting"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game holds the complete breakout state.
type Game struct {
	runtime core.RuntimeConfig
	theme   Theme

	paddle Paddle
	ball   Ball
	blocks Grid

	score int
	lives int
	phase Phase
}

// New creates a game sized to the runtime's world and resets it.
func New(runtime core.RuntimeConfig) *Game {
	if runtime.WorldW <= 0 || runtime.WorldH <= 0 {
		runtime.WorldW = core.DefaultWorldW
		runtime.WorldH = core.DefaultWorldH
	}
	g := &Game{runtime: runtime, theme: DefaultTheme()}
	g.Reset()
	return g
}

// SetTheme replaces the glyphs used by Render.
func (g *Game) SetTheme(t Theme) {
	g.theme = t
}

func (g *Game) width() float64 {
	return float64(g.runtime.WorldW)
}

func (g *Game) height() float64 {
	return float64(g.runtime.WorldH)
}

// Reset initializes or restarts the game. The whole grid is rebuilt.
func (g *Game) Reset() {
	g.paddle = Paddle{
		Rect: core.RectF{
			X: float64(g.runtime.WorldW/2 - 30),
			Y: g.height() - PaddleOffset,
			W: PaddleWidth,
			H: PaddleHeight,
		},
		Speed: PaddleSpeed,
		Color: core.ColorWhite,
	}

	g.ball = Ball{
		Pos: core.Vec2{
			X: g.paddle.Rect.CenterX(),
			Y: g.paddle.Rect.Y - 10,
		},
		Vel:    core.Vec2{X: BallSpeed, Y: -BallSpeed},
		Radius: BallRadius,
	}

	g.blocks = newGrid(g.width())
	g.score = 0
	g.lives = StartLives
	g.phase = PhaseWaitingToStart
}

// Frame runs one frame of the main loop. Outside of play only the confirm
// key is honored; the frame that confirms does not simulate.
func (g *Game) Frame(delta float64, in core.InputFrame) {
	if g.phase == PhasePlaying {
		g.Step(delta, in)
		return
	}
	if in.JustPressed(core.ActionConfirm) {
		g.Confirm()
	}
}

// Confirm starts play. A finished game is reset first.
func (g *Game) Confirm() {
	if g.phase == PhaseWon || g.phase == PhaseLost {
		g.Reset()
	}
	g.phase = PhasePlaying
}

// Step advances the simulation by delta seconds.
func (g *Game) Step(delta float64, in core.InputFrame) {
	if in.JustPressed(core.ActionForceWin) {
		g.phase = PhaseWon
		return
	}

	g.updatePaddle(delta, in)

	if !g.updateBall(delta) {
		return
	}

	g.resolveBlockCollisions()

	if g.blocks.CountAlive() == 0 {
		g.phase = PhaseWon
	}
}

// updatePaddle moves the paddle from held input and keeps it on screen.
func (g *Game) updatePaddle(delta float64, in core.InputFrame) {
	p := &g.paddle
	if in.Down(core.ActionLeft) {
		p.Rect.X -= p.Speed * delta
	}
	if in.Down(core.ActionRight) {
		p.Rect.X += p.Speed * delta
	}
	p.Rect.X = core.ClampF(p.Rect.X, 0, g.width()-p.Rect.W)
}

// updateBall moves the ball and resolves walls, the bottom edge, and the
// paddle. Returns false if the ball was lost this frame.
func (g *Game) updateBall(delta float64) bool {
	b := &g.ball
	b.Pos = b.Pos.Add(b.Vel.Scale(delta))

	if b.Pos.X+b.Radius > g.width() {
		b.Pos.X = g.width() - b.Radius
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = -b.Vel.Y
	}

	if b.Pos.Y+b.Radius > g.height() {
		g.loseLife()
		return false
	}

	if core.CircleIntersectsRect(b.Pos, b.Radius, g.paddle.Rect) {
		if b.Vel.Y > 0 {
			b.Vel.Y = -b.Vel.Y
		}
		b.Pos.Y = g.paddle.Rect.Y - b.Radius
	}
	return true
}

// loseLife handles the ball leaving through the bottom edge.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseLost
		return
	}

	g.paddle.Rect.X = g.width()/2 - g.paddle.Rect.W/2
	g.paddle.Rect.Y = g.height() - PaddleOffset

	// Relaunches downward, unlike the initial serve
	g.ball.Pos = core.Vec2{
		X: g.paddle.Rect.CenterX(),
		Y: g.paddle.Rect.Y - g.ball.Radius - 2,
	}
	g.ball.Vel = core.Vec2{X: BallSpeed, Y: BallSpeed}
	g.phase = PhaseWaitingToStart
}

// resolveBlockCollisions damages every alive block the ball touches.
func (g *Game) resolveBlockCollisions() {
	for row := range Rows {
		for col := range Cols {
			block := &g.blocks[row][col]
			if !block.Alive || !core.CircleIntersectsRect(g.ball.Pos, g.ball.Radius, block.Rect) {
				continue
			}

			block.HP--
			if block.HP <= 0 {
				block.Alive = false
				g.score += block.Points
			} else {
				block.Color = ColorForHits(block.HP)
			}

			g.ball.Vel.Y = BallSpeed
		}
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lives returns remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// View is a read-only copy of the game state for rendering.
type View struct {
	Paddle Paddle
	Ball   Ball
	Blocks Grid
	Score  int
	Lives  int
	Phase  Phase
	WorldW int
	WorldH int
}

// View returns a copy of the current state. Changes to it do not affect the game.
func (g *Game) View() View {
	return View{
		Paddle: g.paddle,
		Ball:   g.ball,
		Blocks: g.blocks,
		Score:  g.score,
		Lives:  g.lives,
		Phase:  g.phase,
		WorldW: g.runtime.WorldW,
		WorldH: g.runtime.WorldH,
	}
}
