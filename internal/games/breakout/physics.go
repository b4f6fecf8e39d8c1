package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// collisionDetection tests the ball center against every alive block.
// All blocks are checked each frame; each hit flips the vertical velocity.
func (s *Simulation) collisionDetection() {
	for row := range s.blocks {
		for col := range s.blocks[row] {
			b := &s.blocks[row][col]
			if !b.Alive {
				continue
			}
			if !b.Bounds().ContainsOpen(s.ball.X, s.ball.Y) {
				continue
			}

			s.ball.BounceY()
			b.Alive = false
			s.score += s.cfg.Blocks.Points
			s.obs.ScoreChanged(s.score)

			if s.score == s.cfg.MaxScore() {
				s.gameWon = true
			}
		}
	}
}

// movePaddle moves the paddle one step toward the held direction.
// Right wins when both are held.
func (s *Simulation) movePaddle() {
	p := &s.paddle
	maxX := s.width - p.Width

	if s.input.MoveRight && p.X < maxX {
		p.X += p.Step
	} else if s.input.MoveLeft && p.X > 0 {
		p.X -= p.Step
	}

	p.X = core.ClampF(p.X, 0, maxX)
}

// moveBall handles walls, the paddle and the bottom edge using the
// prospective position, then advances the ball. A frame that cleared the
// last block cannot also cost a life.
func (s *Simulation) moveBall() {
	b := &s.ball
	nextX, nextY := b.Next()

	// Side walls
	if nextX > s.width-b.Radius || nextX < b.Radius {
		b.BounceX()
	}

	// Top wall, or the bottom edge where the paddle sits
	if nextY < b.Radius {
		b.BounceY()
	} else if nextY > s.height-b.Radius {
		if s.paddle.Spans(b.X) {
			s.bounceOffPaddle()
		} else if !s.gameWon {
			s.loseLife()
		}
	}

	b.Move()
}

// bounceOffPaddle redirects the ball by where it struck the paddle,
// keeping its speed.
func (s *Simulation) bounceOffPaddle() {
	b := &s.ball
	hitPoint := (b.X - s.paddle.CenterX()) / (s.paddle.Width / 2)
	angle := hitPoint * s.maxBounce
	speed := b.Speed()

	b.DX = speed * math.Sin(angle)
	b.DY = -speed * math.Cos(angle)
}

// loseLife takes a life. The last one ends the game; otherwise the ball is
// served again and the paddle recentered.
func (s *Simulation) loseLife() {
	s.lives--
	s.obs.LivesChanged(s.lives)

	if s.lives <= 0 {
		s.gameOver = true
		return
	}

	s.serveBall()
	s.centerPaddle()
}
