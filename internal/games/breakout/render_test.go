package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/canvas"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestDrawPlaying(t *testing.T) {
	s, _ := newTestGame()
	rec := canvas.NewRecorder(800, 600)

	s.Draw(rec)

	if rec.Ops[0].Kind != canvas.OpClear {
		t.Fatalf("first op = %v, want clear", rec.Ops[0].Kind)
	}
	if got := rec.Count(canvas.OpRoundRect); got != 41 {
		t.Errorf("round rects = %d, want 40 blocks + paddle", got)
	}
	if got := rec.Count(canvas.OpCircle); got != 1 {
		t.Errorf("circles = %d, want 1", got)
	}
	if got := rec.Count(canvas.OpText); got != 0 {
		t.Errorf("texts = %d, want none while playing", got)
	}

	first := rec.Ops[1]
	if first.X != 65 || first.Y != 50 || first.W != 80 || first.H != 25 || first.R != 5 {
		t.Errorf("first block op = %+v", first)
	}
	if first.Color != core.ColorCoral {
		t.Errorf("row 0 color = %q, want %q", first.Color, core.ColorCoral)
	}
	if got := rec.Ops[40].Color; got != core.ColorCream {
		t.Errorf("row 4 color = %q, want %q", got, core.ColorCream)
	}

	// Blocks, then ball, then paddle
	ball := rec.Ops[41]
	if ball.Kind != canvas.OpCircle || ball.X != 400 || ball.Y != 550 || ball.R != 8 || ball.Color != core.ColorWhite {
		t.Errorf("ball op = %+v", ball)
	}
	paddle := rec.Ops[42]
	if paddle.Kind != canvas.OpRoundRect || paddle.X != 350 || paddle.Y != 570 ||
		paddle.W != 100 || paddle.H != 15 || paddle.R != 7 || paddle.Color != core.ColorGold {
		t.Errorf("paddle op = %+v", paddle)
	}
}

func TestDrawSkipsDestroyedBlocks(t *testing.T) {
	s, _ := newTestGame()
	s.ball.X, s.ball.Y = 100, 60
	s.collisionDetection()

	rec := canvas.NewRecorder(800, 600)
	s.Draw(rec)

	if got := rec.Count(canvas.OpRoundRect); got != 40 {
		t.Errorf("round rects = %d, want 39 blocks + paddle", got)
	}
}

func TestDrawBanners(t *testing.T) {
	tests := []struct {
		name      string
		lost, won bool
		title     string
		subtitle  string
		color     core.Color
	}{
		{"lost", true, false, "GAME OVER", "Press R to Restart", core.ColorCoral},
		{"won", false, true, "YOU WIN!", "Press R to Play Again", core.ColorTeal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestGame()
			s.gameOver, s.gameWon = tt.lost, tt.won
			rec := canvas.NewRecorder(800, 600)

			s.Draw(rec)

			if len(rec.Ops) != 3 {
				t.Fatalf("ops = %d, want clear + 2 texts", len(rec.Ops))
			}
			title, sub := rec.Ops[1], rec.Ops[2]

			if title.Text != tt.title || title.X != 400 || title.Y != 300 {
				t.Errorf("title = %q at (%v,%v)", title.Text, title.X, title.Y)
			}
			if title.Style.Size != 48 || title.Style.Align != canvas.AlignCenter || title.Color != tt.color {
				t.Errorf("title style = %+v", title.Style)
			}
			if sub.Text != tt.subtitle || sub.X != 400 || sub.Y != 350 {
				t.Errorf("subtitle = %q at (%v,%v)", sub.Text, sub.X, sub.Y)
			}
			if sub.Style.Size != 24 || sub.Style.Align != canvas.AlignCenter || sub.Color != tt.color {
				t.Errorf("subtitle style = %+v", sub.Style)
			}
		})
	}
}

func TestFrameRendersBeforeUpdate(t *testing.T) {
	s, _ := newTestGame()
	rec := canvas.NewRecorder(800, 600)

	s.Frame(rec)

	ball := rec.Ops[41]
	if ball.X != 400 || ball.Y != 550 {
		t.Errorf("drawn ball at (%v,%v), want pre-update (400,550)", ball.X, ball.Y)
	}
	if s.ball.X != 405 || s.ball.Y != 545 {
		t.Errorf("ball after frame = (%v,%v), want (405,545)", s.ball.X, s.ball.Y)
	}
	if s.State().Frames != 1 {
		t.Errorf("frames = %d, want 1", s.State().Frames)
	}
}

func TestFrameAfterGameOverOnlyDrawsBanner(t *testing.T) {
	s, _ := newTestGame()
	s.lives = 1
	s.ball.X, s.ball.Y = 100, 595
	s.ball.DX, s.ball.DY = 5, 5
	s.Step()

	rec := canvas.NewRecorder(800, 600)
	for range 3 {
		s.Frame(rec)
	}

	if rec.Clears != 3 {
		t.Errorf("clears = %d, want one per frame", rec.Clears)
	}
	texts := rec.Texts()
	if len(texts) != 2 || texts[0] != "GAME OVER" {
		t.Errorf("texts = %v, want the game-over banner", texts)
	}
	if s.State().Frames != 1 {
		t.Errorf("frames = %d, terminal frames should not advance", s.State().Frames)
	}
}

func TestDrawOnCellSurface(t *testing.T) {
	s, _ := newTestGame()
	screen := core.NewScreen(80, 24)
	surface := canvas.NewCellSurface(screen, 800, 600)

	s.Draw(surface)

	// The paddle is thinner than a cell and falls back to its center cell
	if c := screen.GetCell(40, 23); c.Color != core.ColorGold {
		t.Errorf("paddle cell color = %q, want %q", c.Color, core.ColorGold)
	}
	// Row 2 covers y 50..75, the first block row
	if c := screen.GetCell(10, 2); c.Color != core.ColorCoral {
		t.Errorf("block cell color = %q, want %q", c.Color, core.ColorCoral)
	}
}
