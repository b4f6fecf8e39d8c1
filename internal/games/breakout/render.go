package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/canvas"
	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Draw renders the current state without advancing it. Once the game has
// ended only the banner is drawn.
func (s *Simulation) Draw(dst canvas.Surface) {
	dst.Clear()

	switch {
	case s.gameOver:
		s.drawBanner(dst, s.cfg.Banner.Lost)
		return
	case s.gameWon:
		s.drawBanner(dst, s.cfg.Banner.Won)
		return
	}

	s.drawBlocks(dst)
	s.drawBall(dst)
	s.drawPaddle(dst)
}

func (s *Simulation) drawBlocks(dst canvas.Surface) {
	r := s.cfg.Blocks.Radius
	for row := range s.blocks {
		c := s.cfg.RowColor(row)
		for _, b := range s.blocks[row] {
			if !b.Alive {
				continue
			}
			dst.FillRoundRect(b.X, b.Y, b.Width, b.Height, r, c)
		}
	}
}

func (s *Simulation) drawBall(dst canvas.Surface) {
	dst.FillCircle(s.ball.X, s.ball.Y, s.ball.Radius, s.cfg.Ball.Color)
}

func (s *Simulation) drawPaddle(dst canvas.Surface) {
	p := s.paddle
	dst.FillRoundRect(p.X, p.Y, p.Width, p.Height, s.cfg.Paddle.Radius, s.cfg.Paddle.Color)
}

// drawBanner centers a title with a subtitle one line gap below it.
func (s *Simulation) drawBanner(dst canvas.Surface, text config.BannerText) {
	w, h := dst.Size()
	cx, cy := w/2, h/2
	b := s.cfg.Banner

	dst.DrawText(text.Title, cx, cy, canvas.TextStyle{
		Size:  b.TitleSize,
		Color: text.Color,
		Align: canvas.AlignCenter,
	})
	dst.DrawText(text.Subtitle, cx, cy+b.LineGap, canvas.TextStyle{
		Size:  b.SubtitleSize,
		Color: text.Color,
		Align: canvas.AlignCenter,
	})
}
