// Package breakout implements a single-screen ball-and-paddle game: a paddle
// keeps a ball in play while it destroys a fixed grid of blocks.
//
// A Simulation owns every entity. Hosts drive it one frame at a time with
// Frame, feed it key events, and receive score/lives updates through a
// core.Observer. Restarting means building a new Simulation.
package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/canvas"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// GameID is the registry identifier for Breakout.
const GameID = "breakout"

// Simulation holds the complete state of one Breakout game.
type Simulation struct {
	cfg config.BreakoutConfig
	obs core.Observer

	// Surface size in logical pixels
	width  float64
	height float64

	// Game objects
	paddle Paddle
	ball   Ball
	blocks [][]Block // [row][col]

	input core.InputState

	// Game state
	score    int
	lives    int
	gameOver bool
	gameWon  bool
	frames   int

	maxBounce float64 // Radians off vertical at the paddle edge
}

// New creates a game from cfg. The observer is immediately told the initial
// score and lives; obs may be nil.
func New(cfg config.BreakoutConfig, obs core.Observer) *Simulation {
	if obs == nil {
		obs = core.NopObserver{}
	}

	s := &Simulation{
		cfg:       cfg,
		obs:       obs,
		width:     cfg.Surface.Width,
		height:    cfg.Surface.Height,
		score:     0,
		lives:     cfg.Gameplay.Lives,
		maxBounce: cfg.Gameplay.MaxBounceAngle * math.Pi / 180,
	}

	s.paddle = Paddle{
		Y:      s.height - cfg.Paddle.BottomOffset,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
		Step:   cfg.Paddle.Step,
	}
	s.centerPaddle()
	s.serveBall()
	s.initBlocks()

	s.obs.ScoreChanged(s.score)
	s.obs.LivesChanged(s.lives)
	return s
}

// initBlocks lays out the grid left-to-right, top-to-bottom.
func (s *Simulation) initBlocks() {
	b := s.cfg.Blocks
	s.blocks = make([][]Block, b.Rows)
	for row := range b.Rows {
		s.blocks[row] = make([]Block, b.Cols)
		for col := range b.Cols {
			s.blocks[row][col] = Block{
				X:      float64(col)*(b.Width+b.Padding) + b.OffsetLeft,
				Y:      float64(row)*(b.Height+b.Padding) + b.OffsetTop,
				Width:  b.Width,
				Height: b.Height,
				Alive:  true,
			}
		}
	}
}

// serveBall places the ball at its start position with the serve velocity.
func (s *Simulation) serveBall() {
	s.ball = Ball{
		X:      s.width / 2,
		Y:      s.height - s.cfg.Ball.StartOffset,
		DX:     s.cfg.Ball.DX,
		DY:     s.cfg.Ball.DY,
		Radius: s.cfg.Ball.Radius,
	}
}

// centerPaddle moves the paddle to the horizontal center.
func (s *Simulation) centerPaddle() {
	s.paddle.X = (s.width - s.paddle.Width) / 2
}

// ID returns the unique identifier for this game.
func (s *Simulation) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (s *Simulation) Title() string {
	return "Breakout"
}

// KeyDown marks a direction key as held. Other keys are ignored.
func (s *Simulation) KeyDown(key string) {
	s.input.Apply(core.ParseKey(key), true)
}

// KeyUp marks a direction key as released. Other keys are ignored.
func (s *Simulation) KeyUp(key string) {
	s.input.Apply(core.ParseKey(key), false)
}

// Frame runs one pass of the loop: render the current state, then advance
// the simulation for the next render.
func (s *Simulation) Frame(dst canvas.Surface) {
	s.Draw(dst)
	s.Step()
}

// Step advances physics by one frame: block collisions, paddle movement,
// ball movement, in that order. It is a no-op once the game has ended.
func (s *Simulation) Step() {
	if s.Terminal() {
		return
	}

	s.collisionDetection()
	s.movePaddle()
	s.moveBall()
	s.frames++
}

// Terminal reports whether the game is won or lost.
func (s *Simulation) Terminal() bool {
	return s.gameOver || s.gameWon
}

// State returns the current game state.
func (s *Simulation) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Lives:    s.lives,
		GameOver: s.gameOver,
		Won:      s.gameWon,
		Frames:   s.frames,
	}
}

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Simulation) Lives() int { return s.lives }

// GameOver reports whether all lives are lost.
func (s *Simulation) GameOver() bool { return s.gameOver }

// GameWon reports whether every block is destroyed.
func (s *Simulation) GameWon() bool { return s.gameWon }

// Paddle returns a copy of the paddle.
func (s *Simulation) Paddle() Paddle { return s.paddle }

// Ball returns a copy of the ball.
func (s *Simulation) Ball() Ball { return s.ball }

// Input returns the held direction keys.
func (s *Simulation) Input() core.InputState { return s.input }

// Block returns a copy of the block at (row, col).
func (s *Simulation) Block(row, col int) Block { return s.blocks[row][col] }

// BlocksAlive counts blocks not yet destroyed.
func (s *Simulation) BlocksAlive() int {
	n := 0
	for _, row := range s.blocks {
		for _, b := range row {
			if b.Alive {
				n++
			}
		}
	}
	return n
}

// Config returns the configuration the game was built from.
func (s *Simulation) Config() config.BreakoutConfig {
	return s.cfg
}

// ResolveConfig loads the game configuration a host asked for and applies
// its difficulty preset.
func ResolveConfig(rt core.RuntimeConfig) (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(rt.ConfigPath)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(rt.Difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Register the game with the registry
func init() {
	registry.Register(GameID, "Breakout", func(rt core.RuntimeConfig, obs core.Observer) (registry.Game, error) {
		cfg, err := ResolveConfig(rt)
		if err != nil {
			return nil, err
		}
		return New(cfg, obs), nil
	})
}
