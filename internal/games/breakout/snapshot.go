package breakout

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frames   int
	Score    int
	Lives    int
	GameOver bool
	GameWon  bool

	PaddleX float64
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64

	MoveLeft  bool
	MoveRight bool

	// Block states, flattened row*cols + col; 1 = alive
	BlockData []int
}

// Snapshot returns the current game state as a Snapshot.
func (s *Simulation) Snapshot() Snapshot {
	cols := s.cfg.Blocks.Cols
	blockData := make([]int, s.cfg.Blocks.Rows*cols)
	for row := range s.blocks {
		for col, b := range s.blocks[row] {
			if b.Alive {
				blockData[row*cols+col] = 1
			}
		}
	}

	return Snapshot{
		Frames:    s.frames,
		Score:     s.score,
		Lives:     s.lives,
		GameOver:  s.gameOver,
		GameWon:   s.gameWon,
		PaddleX:   s.paddle.X,
		BallX:     s.ball.X,
		BallY:     s.ball.Y,
		BallDX:    s.ball.DX,
		BallDY:    s.ball.DY,
		MoveLeft:  s.input.MoveLeft,
		MoveRight: s.input.MoveRight,
		BlockData: blockData,
	}
}

// ApplySnapshot restores game state from a snapshot taken from a game with
// the same configuration. Observers are not notified.
func (s *Simulation) ApplySnapshot(snap Snapshot) {
	s.frames = snap.Frames
	s.score = snap.Score
	s.lives = snap.Lives
	s.gameOver = snap.GameOver
	s.gameWon = snap.GameWon

	s.paddle.X = snap.PaddleX
	s.ball.X = snap.BallX
	s.ball.Y = snap.BallY
	s.ball.DX = snap.BallDX
	s.ball.DY = snap.BallDY

	s.input.MoveLeft = snap.MoveLeft
	s.input.MoveRight = snap.MoveRight

	cols := s.cfg.Blocks.Cols
	if len(snap.BlockData) == s.cfg.Blocks.Rows*cols {
		for row := range s.blocks {
			for col := range s.blocks[row] {
				s.blocks[row][col].Alive = snap.BlockData[row*cols+col] == 1
			}
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frames)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.GameWon)

	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)

	h = h*31 + boolBit(snap.MoveLeft)
	h = h*31 + boolBit(snap.MoveRight)

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
