package canvas

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// 800x600 logical onto 80x24 cells: one cell is 10x25 logical pixels.
func newTestSurface() *CellSurface {
	return NewCellSurface(core.NewScreen(80, 24), 800, 600)
}

func TestCellSurfaceToCell(t *testing.T) {
	s := newTestSurface()

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{9.9, 24.9, 0, 0},
		{10, 25, 1, 1},
		{400, 300, 40, 12},
		{799, 599, 79, 23},
	}

	for _, tc := range tests {
		col, row := s.ToCell(tc.x, tc.y)
		if col != tc.col || row != tc.row {
			t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
		}
	}
}

func TestCellSurfaceFillRoundRect(t *testing.T) {
	s := newTestSurface()
	s.FillRoundRect(65, 50, 80, 25, 5, core.ColorCoral)

	screen := s.Screen()
	for col := 6; col <= 14; col++ {
		cell := screen.GetCell(col, 2)
		if cell.Rune != FillGlyph || cell.Color != core.ColorCoral {
			t.Errorf("cell (%d, 2) = %+v, expected filled coral", col, cell)
		}
	}
	if screen.GetCell(5, 2).Rune != ' ' || screen.GetCell(15, 2).Rune != ' ' {
		t.Error("fill leaked outside the rectangle horizontally")
	}
	if screen.GetCell(10, 3).Rune != ' ' {
		t.Error("fill leaked below the rectangle")
	}
}

func TestCellSurfaceTinyCircleStillVisible(t *testing.T) {
	s := newTestSurface()
	s.FillCircle(400, 550, 8, core.ColorWhite)

	cell := s.Screen().GetCell(40, 22)
	if cell.Rune != BallGlyph || cell.Color != core.ColorWhite {
		t.Errorf("cell (40, 22) = %+v, expected ball glyph", cell)
	}
}

func TestCellSurfaceLargeCircle(t *testing.T) {
	s := newTestSurface()
	s.FillCircle(400, 300, 100, core.ColorTeal)

	if s.Screen().GetCell(40, 12).Rune != FillGlyph {
		t.Error("center cell of a large circle should be filled")
	}
	// Corner of the bounding box lies outside the circle.
	if s.Screen().GetCell(30, 8).Rune != ' ' {
		t.Error("bounding box corner should stay empty")
	}
}

func TestCellSurfaceDrawTextCentered(t *testing.T) {
	s := newTestSurface()
	s.DrawText("GAME OVER", 400, 300, TextStyle{Size: 48, Color: core.ColorCoral, Align: AlignCenter})

	row := s.Screen().Row(11)
	if !strings.Contains(row, "GAME OVER") {
		t.Fatalf("row 11 = %q, expected banner", row)
	}
	if idx := strings.Index(row, "GAME OVER"); idx != 36 {
		t.Errorf("banner starts at column %d, expected 36", idx)
	}
	if s.Screen().GetCell(36, 11).Color != core.ColorCoral {
		t.Error("text color not applied")
	}
}

func TestCellSurfaceClearAndEmptyScreen(t *testing.T) {
	s := newTestSurface()
	s.FillRoundRect(0, 0, 800, 600, 0, core.ColorGold)
	s.Clear()
	if strings.TrimSpace(s.Screen().String()) != "" {
		t.Error("Clear should blank the screen")
	}

	empty := NewCellSurface(core.NewScreen(0, 0), 800, 600)
	empty.FillCircle(10, 10, 5, core.ColorWhite) // Should not panic
	empty.FillRoundRect(0, 0, 80, 25, 5, core.ColorGold)
	if empty.Screen().Width() != 0 {
		t.Error("drawing should not resize an empty screen")
	}
	empty.DrawText("x", 0, 0, TextStyle{})
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(800, 600)
	r.FillCircle(1, 2, 3, core.ColorWhite)
	r.Clear()
	r.FillRoundRect(1, 2, 3, 4, 5, core.ColorGold)
	r.DrawText("hi", 1, 2, TextStyle{Size: 24})

	if r.Clears != 1 {
		t.Errorf("Clears = %d, expected 1", r.Clears)
	}
	if r.Count(OpCircle) != 0 {
		t.Error("Clear should drop earlier ops")
	}
	if r.Count(OpRoundRect) != 1 || r.Count(OpText) != 1 {
		t.Errorf("unexpected ops: %+v", r.Ops)
	}
	if texts := r.Texts(); len(texts) != 1 || texts[0] != "hi" {
		t.Errorf("Texts() = %v", texts)
	}
}
