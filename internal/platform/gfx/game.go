// Package gfx hosts the game in a desktop window using Ebitengine.
package gfx

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/session"
)

// watchedKeys are polled every update. ebiten's key names ("ArrowLeft",
// "A", "R", "Escape") are understood by core.ParseKey.
var watchedKeys = []ebiten.Key{
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyA,
	ebiten.KeyD,
	ebiten.KeyR,
	ebiten.KeyEscape,
	ebiten.KeyQ,
}

// Game implements ebiten.Game around a session.
type Game struct {
	session *session.Session
	surface *Surface
	title   *TitleHUD
	width   int
	height  int
	logger  *log.Logger
}

// NewGame creates a window host running a fresh Breakout session.
func NewGame(rt core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg, err := breakout.ResolveConfig(rt)
	if err != nil {
		return nil, err
	}

	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	title := &TitleHUD{}
	sess, err := session.New(breakout.GameID, rt, title, logger)
	if err != nil {
		return nil, err
	}

	return &Game{
		session: sess,
		surface: NewSurface(cfg.Surface.Width, cfg.Surface.Height, fonts),
		title:   title,
		width:   int(cfg.Surface.Width),
		height:  int(cfg.Surface.Height),
		logger:  logger,
	}, nil
}

// Update turns key transitions into session events.
func (g *Game) Update() error {
	for _, k := range watchedKeys {
		if inpututil.IsKeyJustPressed(k) {
			if core.ParseKey(k.String()) == core.KeyQuit {
				g.logger.Info("window closed by key", "key", k.String())
				return ebiten.Termination
			}
			g.session.KeyDown(k.String())
		}
		if inpututil.IsKeyJustReleased(k) {
			g.session.KeyUp(k.String())
		}
	}

	if g.title.dirty {
		ebiten.SetWindowTitle(g.title.String())
		g.title.dirty = false
	}
	return nil
}

// Draw runs one game frame: the draw callback is the frame scheduler.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.session.Frame(g.surface)
}

// Layout returns the logical surface size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(rt core.RuntimeConfig, scale float64, logger *log.Logger) error {
	g, err := NewGame(rt, logger)
	if err != nil {
		return err
	}
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(float64(g.width)*scale), int(float64(g.height)*scale))
	ebiten.SetWindowTitle(g.title.String())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}

	g.logger.Info("window opened", "width", g.width, "height", g.height, "scale", scale)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gfx: %w", err)
	}
	return nil
}

// TitleHUD shows score and lives in the window title.
type TitleHUD struct {
	score int
	lives int
	dirty bool
}

// ScoreChanged implements core.Observer.
func (t *TitleHUD) ScoreChanged(score int) {
	t.score = score
	t.dirty = true
}

// LivesChanged implements core.Observer.
func (t *TitleHUD) LivesChanged(lives int) {
	t.lives = lives
	t.dirty = true
}

// String returns the window title.
func (t *TitleHUD) String() string {
	return fmt.Sprintf("Breakout  |  Score: %d  |  Lives: %d", t.score, t.lives)
}
