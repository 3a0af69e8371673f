// Package session manages consecutive games for a presentation adapter. Each
// game is a fresh engine; the session only remembers how many were played
// and the best score, in memory.
package session

import (
	"io"
	"log/slog"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
)

type Session struct {
	cfg    config.GameConfig
	seed   uint64
	hooks  tetris.Hooks
	logger *slog.Logger

	engine *tetris.Engine
	games  int
	best   int
}

type Option func(*Session)

// WithHooks forwards engine events to h in addition to the session's own
// bookkeeping.
func WithHooks(h tetris.Hooks) Option {
	return func(s *Session) {
		s.hooks = h
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New starts the first game. A zero seed in cfg is replaced by the clock.
func New(cfg config.GameConfig, opts ...Option) (*Session, error) {
	s := &Session{
		cfg:    cfg,
		seed:   cfg.Seed,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}

	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Engine returns the engine of the current game.
func (s *Session) Engine() *tetris.Engine { return s.engine }

// Games returns how many games have been started, including the current one.
func (s *Session) Games() int { return s.games }

// Best returns the highest final score of a finished game.
func (s *Session) Best() int { return s.best }

// Seed returns the seed the first game was started with. Game n uses Seed()+n-1.
func (s *Session) Seed() uint64 { return s.seed }

// Restart discards the current game and starts a new one.
func (s *Session) Restart() error {
	seed := s.seed + uint64(s.games)
	engine, err := tetris.New(s.cfg.EngineConfig(),
		tetris.WithRandomizer(tetris.NewUniform(seed)),
		tetris.WithHooks(s.engineHooks()),
		tetris.WithLogger(s.logger),
	)
	if err != nil {
		return err
	}

	s.engine = engine
	s.games++
	s.logger.Info("game started", "game", s.games, "seed", seed)
	return nil
}

func (s *Session) engineHooks() tetris.Hooks {
	return tetris.Hooks{
		OnLock: s.hooks.OnLock,
		OnClear: func(rows, score int) {
			s.logger.Debug("rows cleared", "rows", rows, "score", score)
			if s.hooks.OnClear != nil {
				s.hooks.OnClear(rows, score)
			}
		},
		OnGameOver: func(score int) {
			if score > s.best {
				s.best = score
			}
			s.logger.Info("game finished", "game", s.games, "score", score, "best", s.best)
			if s.hooks.OnGameOver != nil {
				s.hooks.OnGameOver(score)
			}
		},
	}
}
