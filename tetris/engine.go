package tetris

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrInvalidConfig is returned by New when the configuration cannot describe
// a playable board.
var ErrInvalidConfig = errors.New("tetris: invalid config")

// PointsPerLine is the score awarded for each cleared row.
const PointsPerLine = 100

// Config holds the construction parameters of an Engine.
type Config struct {
	Width  int
	Height int
	// FallInterval is the number of ticks between gravity steps.
	FallInterval int
}

// DefaultConfig returns a 10x20 board with gravity every 50 ticks.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       20,
		FallInterval: 50,
	}
}

// Validate checks that the I piece fits across the board and that the board
// and fall interval are non-degenerate.
func (c Config) Validate() error {
	if c.Width < 4 {
		return fmt.Errorf("%w: width %d is narrower than the widest piece", ErrInvalidConfig, c.Width)
	}
	if c.Height < 2 {
		return fmt.Errorf("%w: height %d must be at least 2", ErrInvalidConfig, c.Height)
	}
	if c.FallInterval < 1 {
		return fmt.Errorf("%w: fall interval %d must be positive", ErrInvalidConfig, c.FallInterval)
	}
	return nil
}

// State is the engine's position in its two-state lifecycle.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "running"
}

// Hooks are optional callbacks fired synchronously from inside Tick.
type Hooks struct {
	// OnLock runs after a piece has been merged into the board.
	OnLock func(p Piece)
	// OnClear runs when a lock cleared at least one row, with the new score.
	OnClear func(rows, score int)
	// OnGameOver runs once, when the session ends.
	OnGameOver func(score int)
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithRandomizer sets the source of piece kinds. Tests use it to get a
// reproducible sequence.
func WithRandomizer(r Randomizer) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine owns the board and the falling piece and advances the game one tick
// at a time. It is not safe for concurrent use; the caller's loop must be the
// only goroutine touching it.
type Engine struct {
	cfg       Config
	board     *Board
	piece     Piece
	rand      Randomizer
	state     State
	score     int
	fallTimer int
	commands  *Commands
	stats     *statsCollector
	hooks     Hooks
	logger    *slog.Logger
}

// New creates an engine with an empty board and a freshly spawned piece.
// Without WithRandomizer, pieces are drawn from a uniform randomizer with seed 0.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		board:    NewBoard(cfg.Width, cfg.Height),
		commands: newCommands(),
		stats:    newStatsCollector(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.rand == nil {
		e.rand = NewUniform(0)
	}

	e.spawn()
	return e, nil
}

func (e *Engine) Config() Config { return e.cfg }

// Board returns a copy of the settled cells.
func (e *Engine) Board() Snapshot { return e.board.Snapshot() }

// Piece returns a copy of the falling piece.
func (e *Engine) Piece() Piece { return e.piece.Clone() }

func (e *Engine) Score() int { return e.score }

func (e *Engine) State() State { return e.state }

func (e *Engine) IsGameOver() bool { return e.state == GameOver }

func (e *Engine) Stats() Stats { return e.stats.snapshot() }

// Commands returns the input buffer flushed at the start of every Tick.
func (e *Engine) Commands() *Commands { return e.commands }

// MoveLeft shifts the piece one column left unless blocked.
func (e *Engine) MoveLeft() { e.shift(-1, 0) }

// MoveRight shifts the piece one column right unless blocked.
func (e *Engine) MoveRight() { e.shift(1, 0) }

// SoftDrop moves the piece one row down unless blocked. It never locks.
func (e *Engine) SoftDrop() { e.shift(0, 1) }

// HardDrop moves the piece down as far as it will go. The piece locks on the
// next gravity step like any other resting piece.
func (e *Engine) HardDrop() {
	if e.state == GameOver {
		return
	}
	for e.shift(0, 1) {
	}
}

// Rotate turns the piece clockwise in place. A rotation that would collide is
// discarded and the piece keeps its previous orientation.
func (e *Engine) Rotate() {
	if e.state == GameOver {
		return
	}
	rotated := e.piece.Rotated()
	if e.board.Collides(rotated, 0, 0) {
		return
	}
	e.piece = rotated
}

// Apply executes a single command immediately.
func (e *Engine) Apply(cmd Command) {
	switch cmd {
	case CommandMoveLeft:
		e.MoveLeft()
	case CommandMoveRight:
		e.MoveRight()
	case CommandSoftDrop:
		e.SoftDrop()
	case CommandRotate:
		e.Rotate()
	case CommandHardDrop:
		e.HardDrop()
	}
}

// Tick advances the game by one time step: queued commands are applied in
// arrival order, then the fall timer advances and gravity runs once it
// reaches the configured interval.
func (e *Engine) Tick() {
	if e.state == GameOver {
		e.commands.pending = e.commands.pending[:0]
		return
	}

	e.commands.Flush(e)

	e.stats.ticks++
	e.fallTimer++
	if e.fallTimer < e.cfg.FallInterval {
		return
	}
	e.fallTimer = 0
	e.gravity()
}

func (e *Engine) shift(dx, dy int) bool {
	if e.state == GameOver {
		return false
	}
	if e.board.Collides(e.piece, dx, dy) {
		return false
	}
	e.piece.X += dx
	e.piece.Y += dy
	return true
}

func (e *Engine) gravity() {
	e.stats.gravitySteps++

	if !e.board.Collides(e.piece, 0, 1) {
		e.piece.Y++
		return
	}

	e.lock()
}

func (e *Engine) lock() {
	locked := e.piece
	e.board.Merge(locked)

	cleared := e.board.ClearFullRows()
	e.score += cleared * PointsPerLine
	e.stats.recordLock(cleared)

	e.logger.Debug("piece locked", "kind", locked.Kind, "x", locked.X, "y", locked.Y, "cleared", cleared)
	if e.hooks.OnLock != nil {
		e.hooks.OnLock(locked.Clone())
	}
	if cleared > 0 && e.hooks.OnClear != nil {
		e.hooks.OnClear(cleared, e.score)
	}

	e.spawn()
	if e.board.Collides(e.piece, 0, 0) {
		e.state = GameOver
		e.logger.Info("game over", "score", e.score, "locks", e.stats.locks, "lines", e.stats.lines)
		if e.hooks.OnGameOver != nil {
			e.hooks.OnGameOver(e.score)
		}
	}
}

func (e *Engine) spawn() {
	e.piece = Spawn(e.rand, e.cfg.Width)
	e.stats.recordSpawn(e.piece.Kind)
}
