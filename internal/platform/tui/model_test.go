package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(core.DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	m.now = func() time.Time { return t0 }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func simulation(t *testing.T, m Model) *breakout.Simulation {
	t.Helper()
	sim, ok := m.Session().Game().(*breakout.Simulation)
	if !ok {
		t.Fatalf("session game is %T", m.Session().Game())
	}
	return sim
}

func TestModelHeldKeyMovesPaddle(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	sim := simulation(t, m)
	if sim.Paddle().X != 358 {
		t.Errorf("paddle X = %v, want 358", sim.Paddle().X)
	}

	// No repeat arrives, so the hold expires
	m, _ = update(t, m, TickMsg(t0.Add(time.Second)))
	if sim.Input().MoveRight {
		t.Error("right should be released once the hold expires")
	}
}

func TestModelOppositeKeySwitchesDirection(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	in := simulation(t, m).Input()
	if in.MoveRight || !in.MoveLeft {
		t.Errorf("input = %+v, want only left held", in)
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t)
	for i := range 5 {
		m, _ = update(t, m, TickMsg(t0.Add(time.Duration(i)*16*time.Millisecond)))
	}
	if m.Session().State().Frames != 5 {
		t.Fatalf("frames = %d, want 5", m.Session().State().Frames)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	if m.Session().State().Frames != 0 {
		t.Errorf("frames after restart = %d, want 0", m.Session().State().Frames)
	}
	if m.Session().Round() != 2 {
		t.Errorf("round = %d, want 2", m.Session().Round())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelReleasesHeldKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"focus lost", tea.BlurMsg{}},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t)
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
			sim := simulation(t, m)
			if !sim.Input().MoveLeft {
				t.Fatal("left should be held after a press")
			}

			m, _ = update(t, m, tc.msg)
			if sim.Input().MoveLeft {
				t.Error("left should be released")
			}
		})
	}
}

func TestModelViewShowsHUDAndPlayfield(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(t0))

	view := m.View()
	for _, want := range []string{"BREAKOUT", "Score", "0", "♥♥♥", "restart"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.ContainsRune(m.screen.String(), '█') {
		t.Error("playfield should contain drawn blocks")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(t0))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 38 {
		t.Errorf("screen = %dx%d, want 120x38", m.screen.Width(), m.screen.Height())
	}
	if m.Session().State().Frames != 1 {
		t.Error("resize should not restart the game")
	}
}

func TestModelHelpToggleShrinksPlayfield(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})

	if !m.help.ShowAll {
		t.Fatal("? should expand help")
	}
	if m.screen.Height() != 24-chromeRowsFull {
		t.Errorf("screen height = %d, want %d", m.screen.Height(), 24-chromeRowsFull)
	}
}

func TestHUDTracksObserverUpdates(t *testing.T) {
	m := newTestModel(t)
	hud := m.HUD()

	if hud.Score() != 0 || hud.Lives() != 3 {
		t.Fatalf("initial HUD = %d/%d, want 0/3", hud.Score(), hud.Lives())
	}

	hud.ScoreChanged(120)
	hud.LivesChanged(1)
	view := hud.View()
	if !strings.Contains(view, "120") {
		t.Error("HUD should show the new score")
	}
	if strings.Count(view, "♥") != 1 {
		t.Error("HUD should show one heart")
	}
}
