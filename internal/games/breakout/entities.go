package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Grid dimensions.
const (
	Rows = 5
	Cols = 10
)

// Block layout in world units.
const (
	BlockHeight = 23
	BlockGap    = 8
	BlockMargin = 10 // Left edge of the first column
	BlockTop    = 50 // Top edge of the first row
	BlockPoints = 10
)

// Paddle and ball parameters in world units (per second for speeds).
const (
	PaddleWidth  = 90
	PaddleHeight = 12
	PaddleSpeed  = 400
	PaddleOffset = 30 // Distance from the bottom of the screen to the paddle top

	BallRadius = 10
	BallSpeed  = 200

	StartLives = 3
)

// Paddle is the player's bar.
type Paddle struct {
	Rect  core.RectF
	Speed float64
	Color core.Color
}

// Ball is the moving ball. Pos is its center.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Block is a single destructible target in the grid.
type Block struct {
	Rect   core.RectF
	HP     int
	Points int
	Alive  bool
	Color  core.Color
}

// Grid is the fixed row-major block layout.
type Grid [Rows][Cols]Block

// ColorForHits maps remaining hit-points to a block color.
func ColorForHits(hp int) core.Color {
	switch hp {
	case 5:
		return core.ColorWhite
	case 4:
		return core.ColorYellow
	case 3:
		return core.ColorOrange
	case 2:
		return core.ColorRed
	case 1:
		return core.ColorPink
	default:
		return core.ColorGreen
	}
}

// blockWidth returns the width that fits all columns between the side margins.
func blockWidth(worldW float64) float64 {
	return (worldW - 2*BlockMargin - (Cols-1)*BlockGap) / Cols
}

// newGrid builds a fresh grid. Row 0 is the most durable.
func newGrid(worldW float64) Grid {
	var grid Grid
	w := blockWidth(worldW)

	for row := range Rows {
		hp := Rows - row
		for col := range Cols {
			grid[row][col] = Block{
				Rect: core.RectF{
					X: BlockMargin + float64(col)*(w+BlockGap),
					Y: BlockTop + float64(row)*(BlockHeight+BlockGap),
					W: w,
					H: BlockHeight,
				},
				HP:     hp,
				Points: BlockPoints,
				Alive:  true,
				Color:  ColorForHits(hp),
			}
		}
	}
	return grid
}

// CountAlive returns the number of blocks still standing.
func (g *Grid) CountAlive() int {
	count := 0
	for row := range Rows {
		for col := range Cols {
			if g[row][col].Alive {
				count++
			}
		}
	}
	return count
}
