package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

const (
	// repeatDelay is how many frames a held key waits before auto-repeat.
	repeatDelay = 10
	shiftRate   = 3
	dropRate    = 2
)

// shouldRepeat reports whether a key held for duration frames fires this
// frame: once on press, then every rate frames after the delay.
func shouldRepeat(duration, rate int) bool {
	if duration == 1 {
		return true
	}
	return duration > repeatDelay && (duration-repeatDelay)%rate == 0
}

// InputSystem translates keyboard state into engine commands.
type InputSystem struct {
	Session *session.Session
	Pause   *loop.Pause
	Overlay *debugui.Overlay
	Quit    bool
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.Quit = true
		return
	}

	if s.Overlay != nil && s.Overlay.Input.WantCaptureKeyboard {
		return
	}

	e := s.Session.Engine()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && e.IsGameOver() {
		if err := s.Session.Restart(); err != nil {
			slog.Error("restart failed", "error", err)
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.Pause.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.Pause.Step()
	}

	if s.Pause.Paused && !inpututil.IsKeyJustPressed(ebiten.KeyN) {
		return
	}

	cmds := e.Commands()
	if shouldRepeat(inpututil.KeyPressDuration(ebiten.KeyLeft), shiftRate) {
		cmds.Push(tetris.CommandMoveLeft)
	}
	if shouldRepeat(inpututil.KeyPressDuration(ebiten.KeyRight), shiftRate) {
		cmds.Push(tetris.CommandMoveRight)
	}
	if shouldRepeat(inpututil.KeyPressDuration(ebiten.KeyDown), dropRate) {
		cmds.Push(tetris.CommandSoftDrop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		cmds.Push(tetris.CommandRotate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cmds.Push(tetris.CommandHardDrop)
	}
}
