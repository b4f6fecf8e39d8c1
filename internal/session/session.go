// Package session owns the game a host is currently running and rebuilds
// it when the player asks for a restart.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/canvas"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Session routes host input to a game and replaces the game on restart.
// Not safe for concurrent use; hosts call it from their frame goroutine.
type Session struct {
	gameID string
	rt     core.RuntimeConfig
	obs    core.Observer
	logger *log.Logger

	game     registry.Game
	round    int
	reported bool

	// Direction keys currently down, by host key name
	held map[core.Key]string
}

// New creates a session and starts its first game.
// A nil logger discards output.
func New(gameID string, rt core.RuntimeConfig, obs core.Observer, logger *log.Logger) (*Session, error) {
	if obs == nil {
		obs = core.NopObserver{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		gameID: gameID,
		rt:     rt,
		obs:    core.MultiObserver{obs, traceObserver(logger)},
		logger: logger,
		held:   make(map[core.Key]string),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart discards the current game and starts a new one. Direction keys
// still held are pressed again on the new game. On error the current game
// keeps running.
func (s *Session) Restart() error {
	g, err := registry.Create(s.gameID, s.rt, s.obs)
	if err != nil {
		return err
	}

	if s.game != nil {
		st := s.game.State()
		s.logger.Info("game restarted", "round", s.round, "score", st.Score, "lives", st.Lives)
	}

	s.game = g
	s.round++
	s.reported = false
	for _, name := range s.held {
		g.KeyDown(name)
	}

	s.logger.Debug("game started", "game", s.gameID, "round", s.round)
	return nil
}

// KeyDown handles a key press. The restart key rebuilds the game at any
// time; every other key goes to the game.
func (s *Session) KeyDown(key string) {
	k := core.ParseKey(key)
	if k == core.KeyRestart {
		if err := s.Restart(); err != nil {
			s.logger.Error("restart failed", "error", err)
		}
		return
	}

	if k.Direction() {
		s.held[k] = key
	}
	s.game.KeyDown(key)
}

// KeyUp handles a key release.
func (s *Session) KeyUp(key string) {
	delete(s.held, core.ParseKey(key))
	s.game.KeyUp(key)
}

// Frame runs one frame of the current game and logs its outcome once.
func (s *Session) Frame(dst canvas.Surface) {
	s.game.Frame(dst)
	s.reportOutcome()
}

// Draw renders the current game without advancing it.
func (s *Session) Draw(dst canvas.Surface) {
	s.game.Draw(dst)
}

// State returns the current game's state.
func (s *Session) State() core.GameState {
	return s.game.State()
}

// Game returns the running game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Round returns how many games this session has started.
func (s *Session) Round() int {
	return s.round
}

// traceObserver logs every score and lives update at debug level.
func traceObserver(logger *log.Logger) core.Observer {
	return core.ObserverFuncs{
		OnScore: func(score int) { logger.Debug("score changed", "score", score) },
		OnLives: func(lives int) { logger.Debug("lives changed", "lives", lives) },
	}
}

func (s *Session) reportOutcome() {
	if s.reported {
		return
	}

	st := s.game.State()
	switch {
	case st.Won:
		s.logger.Info("game won", "round", s.round, "score", st.Score, "lives", st.Lives, "frames", st.Frames)
	case st.GameOver:
		s.logger.Info("game over", "round", s.round, "score", st.Score, "frames", st.Frames)
	default:
		return
	}
	s.reported = true
}
