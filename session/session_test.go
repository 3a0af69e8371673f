package session_test

import (
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiny board where a game ends within a few locks
var tiny = config.GameConfig{Width: 4, Height: 2, FallInterval: 1, Seed: 5}

func playOut(e *tetris.Engine) {
	for i := 0; i < 1000 && !e.IsGameOver(); i++ {
		e.Tick()
	}
}

func TestSessionRestart(t *testing.T) {
	var overs []int
	s, err := session.New(tiny, session.WithHooks(tetris.Hooks{
		OnGameOver: func(score int) { overs = append(overs, score) },
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Games())
	assert.Equal(t, uint64(5), s.Seed())

	first := s.Engine()
	playOut(first)
	require.True(t, first.IsGameOver())
	assert.Len(t, overs, 1)

	require.NoError(t, s.Restart())
	assert.Equal(t, 2, s.Games())
	assert.NotSame(t, first, s.Engine())
	assert.False(t, s.Engine().IsGameOver())
}

func TestSessionSeedsAreReproducible(t *testing.T) {
	cfg := config.GameConfig{Width: 10, Height: 20, FallInterval: 1, Seed: 77}

	kinds := func() []tetris.Kind {
		s, err := session.New(cfg)
		require.NoError(t, err)
		var out []tetris.Kind
		for range 3 {
			out = append(out, s.Engine().Piece().Kind)
			require.NoError(t, s.Restart())
		}
		return out
	}

	assert.Equal(t, kinds(), kinds())
}

func TestSessionTracksBest(t *testing.T) {
	cfg := config.GameConfig{Width: 4, Height: 4, FallInterval: 1, Seed: 1}
	s, err := session.New(cfg)
	require.NoError(t, err)

	playOut(s.Engine())
	require.True(t, s.Engine().IsGameOver())
	best := s.Best()
	assert.Equal(t, s.Engine().Score(), best)

	require.NoError(t, s.Restart())
	assert.Equal(t, best, s.Best(), "restart keeps the best score")
}

func TestSessionZeroSeedUsesClock(t *testing.T) {
	cfg := tiny
	cfg.Seed = 0
	s, err := session.New(cfg)
	require.NoError(t, err)
	assert.NotZero(t, s.Seed())
}

func TestSessionInvalidConfig(t *testing.T) {
	_, err := session.New(config.GameConfig{Width: 1, Height: 20, FallInterval: 1})
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}
