// Package sound plays short synthesized cues for game events.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/tetris"
)

const sampleRate = beep.SampleRate(44100)

// clearNotes rises with the number of rows cleared at once: C5 E5 G5 C6.
var clearNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// gameOverNotes falls G4 E4 C4.
var gameOverNotes = []float64{392.00, 329.63, 261.63}

const (
	lockFreq     = 220.0
	lockLength   = 40 * time.Millisecond
	clearLength  = 70 * time.Millisecond
	gameOverNote = 180 * time.Millisecond
)

// Player turns engine events into tones. Until Init succeeds every Play call
// is a no-op, so a missing audio device never stops the game.
type Player struct {
	mu      sync.Mutex
	volume  float64
	enabled bool
	play    func(beep.Streamer)
}

// NewPlayer creates a silent player. Volume is in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{volume: volume}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	p.play = func(s beep.Streamer) { speaker.Play(s) }
	p.enabled = true
	return nil
}

// Close silences the player and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.enabled = false
}

func (p *Player) PlayLock() {
	p.playNotes(lockLength, lockFreq)
}

// PlayClear plays one rising note per cleared row.
func (p *Player) PlayClear(rows int) {
	rows = min(max(rows, 1), len(clearNotes))
	p.playNotes(clearLength, clearNotes[:rows]...)
}

func (p *Player) PlayGameOver() {
	p.playNotes(gameOverNote, gameOverNotes...)
}

// Hooks returns engine hooks that play the matching cue and then call next.
func (p *Player) Hooks(next tetris.Hooks) tetris.Hooks {
	return tetris.Hooks{
		OnLock: func(piece tetris.Piece) {
			p.PlayLock()
			if next.OnLock != nil {
				next.OnLock(piece)
			}
		},
		OnClear: func(rows, score int) {
			p.PlayClear(rows)
			if next.OnClear != nil {
				next.OnClear(rows, score)
			}
		},
		OnGameOver: func(score int) {
			p.PlayGameOver()
			if next.OnGameOver != nil {
				next.OnGameOver(score)
			}
		},
	}
}

func (p *Player) playNotes(length time.Duration, freqs ...float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}

	streamer, err := melody(length, freqs...)
	if err != nil {
		return
	}
	p.play(&effects.Gain{Streamer: streamer, Gain: p.volume - 1})
}

// melody chains one sine tone of the given length per frequency.
func melody(length time.Duration, freqs ...float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sampleRate, f)
		if err != nil {
			return nil, err
		}
		notes = append(notes, beep.Take(sampleRate.N(length), tone))
	}
	return beep.Seq(notes...), nil
}
