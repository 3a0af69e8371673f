package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, cfg tetris.Config, kinds ...tetris.Kind) *tetris.Engine {
	t.Helper()
	e, err := tetris.New(cfg, tetris.WithRandomizer(tetris.NewSequence(kinds...)))
	require.NoError(t, err)
	return e
}

func tickN(e *tetris.Engine, n int) {
	for range n {
		e.Tick()
	}
}

func TestNew(t *testing.T) {
	e, err := tetris.New(tetris.DefaultConfig())
	require.NoError(t, err)

	board := e.Board()
	assert.Equal(t, 10, board.Width)
	assert.Equal(t, 20, board.Height)
	assert.NotContains(t, board.String(), "#")
	assert.Equal(t, 0, e.Score())
	assert.False(t, e.IsGameOver())
	assert.Equal(t, tetris.Running, e.State())
	assert.Equal(t, 0, e.Piece().Y)
	assert.Equal(t, 1, e.Stats().TotalSpawned())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  tetris.Config
	}{
		{"too narrow", tetris.Config{Width: 3, Height: 20, FallInterval: 50}},
		{"too short", tetris.Config{Width: 10, Height: 1, FallInterval: 50}},
		{"zero interval", tetris.Config{Width: 10, Height: 20, FallInterval: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tetris.New(tt.cfg)
			assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
		})
	}
}

func TestSpawnOPiece(t *testing.T) {
	e := newEngine(t, tetris.DefaultConfig(), tetris.KindO)

	p := e.Piece()
	assert.Equal(t, tetris.KindO, p.Kind)
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 0, p.Y)
}

func TestMoveLeftStopsAtWall(t *testing.T) {
	e := newEngine(t, tetris.DefaultConfig(), tetris.KindI)
	require.Equal(t, 3, e.Piece().X)

	for range 3 {
		e.MoveLeft()
	}
	assert.Equal(t, 0, e.Piece().X)

	e.MoveLeft()
	assert.Equal(t, 0, e.Piece().X)
}

func TestMoveRightStopsAtWall(t *testing.T) {
	e := newEngine(t, tetris.DefaultConfig(), tetris.KindO)

	for range 20 {
		e.MoveRight()
	}
	assert.Equal(t, 8, e.Piece().X)
}

func TestSoftDropStopsAtFloor(t *testing.T) {
	e := newEngine(t, tetris.DefaultConfig(), tetris.KindO)

	for range 30 {
		e.SoftDrop()
	}
	assert.Equal(t, 18, e.Piece().Y)
	assert.Equal(t, 1, e.Stats().TotalSpawned(), "soft drop never locks")
}

func TestRotate(t *testing.T) {
	t.Run("commits when free", func(t *testing.T) {
		e := newEngine(t, tetris.DefaultConfig(), tetris.KindI)
		e.Rotate()

		p := e.Piece()
		assert.Equal(t, 4, p.Mask.Height())
		assert.Equal(t, 3, p.X, "no re-centering")
		assert.Equal(t, 0, p.Y)
	})

	t.Run("discarded against wall", func(t *testing.T) {
		e := newEngine(t, tetris.DefaultConfig(), tetris.KindI)
		e.Rotate()
		for range 10 {
			e.MoveRight()
		}
		require.Equal(t, 9, e.Piece().X)

		before := e.Piece()
		e.Rotate()
		assert.Equal(t, before, e.Piece())
	})

	t.Run("discarded against floor", func(t *testing.T) {
		e := newEngine(t, tetris.DefaultConfig(), tetris.KindI)
		e.HardDrop()
		require.Equal(t, 19, e.Piece().Y)

		e.Rotate()
		assert.Equal(t, 1, e.Piece().Mask.Height())
	})
}

func TestHardDropLocksOnNextGravity(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.FallInterval = 1
	e := newEngine(t, cfg, tetris.KindO)

	e.HardDrop()
	assert.Equal(t, 18, e.Piece().Y)
	assert.NotContains(t, e.Board().String(), "#")

	e.Tick()
	board := e.Board()
	assert.True(t, board.Filled(4, 18))
	assert.True(t, board.Filled(5, 19))
	assert.Equal(t, 0, e.Piece().Y)
	assert.Equal(t, 1, e.Stats().Locks)
}

func TestGravityFollowsFallInterval(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.FallInterval = 5
	e := newEngine(t, cfg, tetris.KindT)

	tickN(e, 4)
	assert.Equal(t, 0, e.Piece().Y)

	e.Tick()
	assert.Equal(t, 1, e.Piece().Y)

	tickN(e, 5)
	assert.Equal(t, 2, e.Piece().Y)
	assert.Equal(t, int64(10), e.Stats().Ticks)
	assert.Equal(t, int64(2), e.Stats().GravitySteps)
}

func TestLineClearAwardsScore(t *testing.T) {
	// An I piece spans a 4 wide board, so every lock clears one row.
	cfg := tetris.Config{Width: 4, Height: 4, FallInterval: 1}

	var cleared, score int
	e, err := tetris.New(cfg,
		tetris.WithRandomizer(tetris.NewSequence(tetris.KindI)),
		tetris.WithHooks(tetris.Hooks{
			OnClear: func(rows, s int) {
				cleared += rows
				score = s
			},
		}),
	)
	require.NoError(t, err)

	tickN(e, 3)
	assert.Equal(t, 3, e.Piece().Y)
	assert.Equal(t, 0, e.Score())

	e.Tick()
	assert.Equal(t, 100, e.Score())
	assert.Equal(t, 1, cleared)
	assert.Equal(t, 100, score)
	assert.NotContains(t, e.Board().String(), "#")

	tickN(e, 4)
	assert.Equal(t, 200, e.Score())
	assert.Equal(t, 2, e.Stats().LinesCleared)
	assert.Equal(t, map[int]int{1: 2}, e.Stats().Clears)
	assert.False(t, e.IsGameOver())
}

func TestGameOver(t *testing.T) {
	// O pieces on a 4x2 board: the first one locks where the second spawns.
	cfg := tetris.Config{Width: 4, Height: 2, FallInterval: 1}

	var overScore = -1
	e, err := tetris.New(cfg,
		tetris.WithRandomizer(tetris.NewSequence(tetris.KindO)),
		tetris.WithHooks(tetris.Hooks{
			OnGameOver: func(score int) { overScore = score },
		}),
	)
	require.NoError(t, err)

	e.Tick()
	require.True(t, e.IsGameOver())
	assert.Equal(t, tetris.GameOver, e.State())
	assert.Equal(t, 0, overScore)

	board := e.Board()
	piece := e.Piece()
	stats := e.Stats()

	e.MoveLeft()
	e.MoveRight()
	e.SoftDrop()
	e.HardDrop()
	e.Rotate()
	e.Commands().Push(tetris.CommandMoveLeft)
	tickN(e, 100)

	assert.Equal(t, board, e.Board())
	assert.Equal(t, piece, e.Piece())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, stats, e.Stats())
	assert.Equal(t, 0, e.Commands().Len())
}

func TestCommandsApplyInArrivalOrder(t *testing.T) {
	e := newEngine(t, tetris.DefaultConfig(), tetris.KindI)

	e.Commands().Push(tetris.CommandRotate)
	for range 4 {
		e.Commands().Push(tetris.CommandMoveLeft)
	}
	e.Commands().Push(tetris.CommandSoftDrop)
	require.Equal(t, 6, e.Commands().Len())

	e.Tick()

	p := e.Piece()
	assert.Equal(t, 0, p.X)
	assert.Equal(t, 1, p.Y)
	assert.Equal(t, 4, p.Mask.Height())
	assert.Equal(t, 0, e.Commands().Len())
}

const goldenOI = "" +
	"...####...\n" +
	"....##....\n" +
	"....##....\n" +
	"...####...\n" +
	"....##....\n" +
	"....##....\n"

func TestGoldenRunWithoutInput(t *testing.T) {
	cfg := tetris.Config{Width: 10, Height: 6, FallInterval: 1}
	e := newEngine(t, cfg, tetris.KindO, tetris.KindI)

	tickN(e, 11)
	assert.False(t, e.IsGameOver())

	e.Tick()
	require.True(t, e.IsGameOver())

	tickN(e, 50)
	assert.Equal(t, goldenOI, e.Board().String())
	assert.Equal(t, 0, e.Score())

	stats := e.Stats()
	assert.Equal(t, int64(12), stats.Ticks)
	assert.Equal(t, 4, stats.Locks)
	assert.Equal(t, 3, stats.Spawned[tetris.KindO])
	assert.Equal(t, 2, stats.Spawned[tetris.KindI])
}

func TestSeededRunsAreDeterministic(t *testing.T) {
	run := func() (string, int, tetris.Stats) {
		cfg := tetris.Config{Width: 10, Height: 20, FallInterval: 2}
		e, err := tetris.New(cfg, tetris.WithRandomizer(tetris.NewUniform(7)))
		require.NoError(t, err)
		for i := range 5000 {
			switch i % 7 {
			case 0:
				e.MoveLeft()
			case 3:
				e.Rotate()
			case 5:
				e.MoveRight()
			}
			e.Tick()
		}
		return e.Board().String(), e.Score(), e.Stats()
	}

	boardA, scoreA, statsA := run()
	boardB, scoreB, statsB := run()

	assert.Equal(t, boardA, boardB)
	assert.Equal(t, scoreA, scoreB)
	assert.Equal(t, statsA, statsB)
	assert.Greater(t, statsA.Locks, 0)
}

func TestPieceIsCopy(t *testing.T) {
	e := newEngine(t, tetris.DefaultConfig(), tetris.KindO)

	p := e.Piece()
	p.Mask[0][0] = false
	p.X = 0

	assert.True(t, e.Piece().Mask[0][0])
	assert.Equal(t, 4, e.Piece().X)
}
