package breakout

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	PaddleX float64
	PaddleY float64

	BallX, BallY   float64
	BallVX, BallVY float64

	Score int
	Lives int
	Phase int

	// Brick states (flattened: row*Cols + col = index)
	// Each block is 2 ints: Alive, HP
	BlockData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blockData := make([]int, Rows*Cols*2)
	for row := range Rows {
		for col := range Cols {
			idx := (row*Cols + col) * 2
			block := g.blocks[row][col]
			if block.Alive {
				blockData[idx] = 1
			}
			blockData[idx+1] = block.HP
		}
	}

	return Snapshot{
		PaddleX:   g.paddle.Rect.X,
		PaddleY:   g.paddle.Rect.Y,
		BallX:     g.ball.Pos.X,
		BallY:     g.ball.Pos.Y,
		BallVX:    g.ball.Vel.X,
		BallVY:    g.ball.Vel.Y,
		Score:     g.score,
		Lives:     g.lives,
		Phase:     int(g.phase),
		BlockData: blockData,
	}
}

// ApplySnapshot restores game state from a snapshot.
// Block rectangles are layout-derived and are not part of the snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.paddle.Rect.X = snap.PaddleX
	g.paddle.Rect.Y = snap.PaddleY
	g.ball.Pos.X = snap.BallX
	g.ball.Pos.Y = snap.BallY
	g.ball.Vel.X = snap.BallVX
	g.ball.Vel.Y = snap.BallVY
	g.score = snap.Score
	g.lives = snap.Lives
	g.phase = Phase(snap.Phase)

	if len(snap.BlockData) == Rows*Cols*2 {
		for row := range Rows {
			for col := range Cols {
				idx := (row*Cols + col) * 2
				block := &g.blocks[row][col]
				block.Alive = snap.BlockData[idx] == 1
				block.HP = snap.BlockData[idx+1]
				block.Color = ColorForHits(block.HP)
			}
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleY)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
