package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (count int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = max(peak, sample[0], -sample[0])
		}
		count += n
		if !ok {
			return count, peak
		}
	}
}

func newTestPlayer(volume float64) (*Player, *[]beep.Streamer) {
	played := &[]beep.Streamer{}
	p := NewPlayer(volume)
	p.enabled = true
	p.play = func(s beep.Streamer) { *played = append(*played, s) }
	return p, played
}

func TestMelodyLength(t *testing.T) {
	s, err := melody(10*time.Millisecond, 440, 880)
	require.NoError(t, err)

	n, peak := drain(s)
	assert.Equal(t, 2*sampleRate.N(10*time.Millisecond), n)
	assert.Greater(t, peak, 0.5)
}

func TestMelodyRejectsAliasedFrequency(t *testing.T) {
	_, err := melody(time.Millisecond, float64(sampleRate))
	assert.Error(t, err)
}

func TestPlayerSilentUntilInit(t *testing.T) {
	p := NewPlayer(0.5)
	assert.NotPanics(t, func() {
		p.PlayLock()
		p.PlayClear(2)
		p.PlayGameOver()
		p.Close()
	})
}

func TestPlayClearNoteCount(t *testing.T) {
	note := sampleRate.N(clearLength)

	tests := []struct {
		rows  int
		notes int
	}{
		{1, 1},
		{2, 2},
		{4, 4},
		{9, 4},
		{0, 1},
	}

	for _, tt := range tests {
		p, played := newTestPlayer(1)
		p.PlayClear(tt.rows)
		require.Len(t, *played, 1)

		n, _ := drain((*played)[0])
		assert.Equal(t, tt.notes*note, n, "rows=%d", tt.rows)
	}
}

func TestVolumeScalesOutput(t *testing.T) {
	p, played := newTestPlayer(0.25)
	p.PlayLock()
	require.Len(t, *played, 1)

	_, peak := drain((*played)[0])
	assert.InDelta(t, 0.25, peak, 0.01)
}

func TestHooksChain(t *testing.T) {
	p, played := newTestPlayer(1)

	var locks, clears, overs int
	hooks := p.Hooks(tetris.Hooks{
		OnLock:     func(tetris.Piece) { locks++ },
		OnClear:    func(int, int) { clears++ },
		OnGameOver: func(int) { overs++ },
	})

	hooks.OnLock(tetris.Piece{})
	hooks.OnClear(2, 200)
	hooks.OnGameOver(200)

	assert.Equal(t, 1, locks)
	assert.Equal(t, 1, clears)
	assert.Equal(t, 1, overs)
	assert.Len(t, *played, 3)

	assert.NotPanics(t, func() {
		bare := p.Hooks(tetris.Hooks{})
		bare.OnLock(tetris.Piece{})
		bare.OnClear(1, 100)
		bare.OnGameOver(100)
	})
}
