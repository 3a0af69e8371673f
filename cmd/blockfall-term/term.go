package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

// action is what a key press asks of the terminal front-end.
type action int

const (
	actionNone action = iota
	actionCommand
	actionPause
	actionStep
	actionRestart
	actionQuit
)

// keyAction maps a key event to an action and, for actionCommand, the engine
// command to queue.
func keyAction(ev *tcell.EventKey) (action, tetris.Command) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionCommand, tetris.CommandMoveLeft
	case tcell.KeyRight:
		return actionCommand, tetris.CommandMoveRight
	case tcell.KeyDown:
		return actionCommand, tetris.CommandSoftDrop
	case tcell.KeyUp:
		return actionCommand, tetris.CommandRotate
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return actionCommand, tetris.CommandHardDrop
		case 'x':
			return actionCommand, tetris.CommandRotate
		case 'p':
			return actionPause, 0
		case 'n':
			return actionStep, 0
		case 'r':
			return actionRestart, 0
		case 'q':
			return actionQuit, 0
		}
	}
	return actionNone, 0
}

// InputSystem drains pending terminal events without blocking.
type InputSystem struct {
	Events  <-chan tcell.Event
	Session *session.Session
	Pause   *loop.Pause
	Quit    func()
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	for {
		select {
		case ev := <-s.Events:
			s.handle(ev)
		default:
			return
		}
	}
}

func (s *InputSystem) handle(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	e := s.Session.Engine()
	act, cmd := keyAction(key)
	switch act {
	case actionCommand:
		if !s.Pause.Paused {
			e.Commands().Push(cmd)
		}
	case actionPause:
		s.Pause.Toggle()
	case actionStep:
		s.Pause.Step()
	case actionRestart:
		if e.IsGameOver() {
			if err := s.Session.Restart(); err != nil {
				slog.Error("restart failed", "error", err)
			}
		}
	case actionQuit:
		s.Quit()
	}
}

// EngineSystem advances the current engine one tick unless paused.
type EngineSystem struct {
	Session *session.Session
	Pause   *loop.Pause
}

func (s *EngineSystem) Execute(frame *loop.Frame) {
	if s.Pause.Advance() {
		s.Session.Engine().Tick()
	}
}

// Each board cell is two terminal columns wide so blocks look square.
const cellWidth = 2

var (
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	textStyle   = tcell.StyleDefault
)

func cellStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// RenderSystem redraws the whole screen every frame.
type RenderSystem struct {
	Screen  tcell.Screen
	Session *session.Session
	Pause   *loop.Pause
}

func (s *RenderSystem) Execute(frame *loop.Frame) {
	s.Screen.Clear()
	e := s.Session.Engine()
	drawBoard(s.Screen, e.Board())
	if !e.IsGameOver() {
		drawPiece(s.Screen, e.Piece())
	}

	hudX := e.Config().Width*cellWidth + 4
	lines := []string{
		fmt.Sprintf("Score: %d", e.Score()),
		fmt.Sprintf("Best:  %d", max(s.Session.Best(), e.Score())),
		fmt.Sprintf("Games: %d", s.Session.Games()),
		fmt.Sprintf("Lines: %d", e.Stats().LinesCleared),
		"",
	}
	switch {
	case e.IsGameOver():
		lines = append(lines, "GAME OVER - press r")
	case s.Pause.Paused:
		lines = append(lines, "PAUSED (n to step)")
	}
	for i, line := range lines {
		drawText(s.Screen, hudX, i, line, textStyle)
	}

	s.Screen.Show()
}

func drawBlock(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		screen.SetContent(1+x*cellWidth+i, y, r, nil, style)
	}
}

func drawBoard(screen tcell.Screen, board tetris.Snapshot) {
	right := 1 + board.Width*cellWidth
	for y, row := range board.Cells {
		screen.SetContent(0, y, '|', nil, borderStyle)
		screen.SetContent(right, y, '|', nil, borderStyle)
		for x, cell := range row {
			if cell.Filled {
				drawBlock(screen, x, y, '█', cellStyle(cell.Color))
			} else {
				drawBlock(screen, x, y, '.', emptyStyle)
			}
		}
	}
	for x := 0; x <= right; x++ {
		screen.SetContent(x, board.Height, '-', nil, borderStyle)
	}
}

func drawPiece(screen tcell.Screen, p tetris.Piece) {
	style := cellStyle(p.Color)
	for _, pt := range p.Cells() {
		if pt.Y >= 0 {
			drawBlock(screen, pt.X, pt.Y, '█', style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
