package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
)

// Game implements ebiten.Game. Every Update runs the scheduler once, which
// reads input, advances the engine one tick and, with the overlay enabled,
// builds the ImGui frame.
type Game struct {
	session   *session.Session
	scheduler *loop.Scheduler
	pause     *loop.Pause
	input     *InputSystem
	layout    layout

	overlay *debugui.Overlay
	imgui   *debugui_ebiten.ImguiBackend
}

func NewGame(cfg *config.Config, sess *session.Session) *Game {
	g := &Game{
		session:   sess,
		scheduler: loop.NewScheduler(),
		pause:     &loop.Pause{},
		layout:    newLayout(cfg.Display.CellSize, cfg.Game.Width, cfg.Game.Height, cfg.Display.Debug),
	}

	g.input = &InputSystem{Session: sess, Pause: g.pause}
	g.scheduler.Register(g.input)
	g.scheduler.Register(&EngineSystem{Session: sess, Pause: g.pause})

	width, height := g.layout.screenSize()
	if cfg.Display.Debug {
		g.imgui = debugui_ebiten.NewImguiBackend("blockfall (debug)", width, height)
		g.overlay = debugui.NewOverlay(
			debugui.NewPerformanceStats(g.scheduler, 120),
			debugui.NewEngineInspector(sess.Engine, g.pause),
		)
		g.input.Overlay = g.overlay
		g.scheduler.RegisterNamed("DebugUISystem", loop.SystemFunc(func(*loop.Frame) {
			g.overlay.Render()
		}))
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("blockfall")
	}

	return g
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.Frame(func() { g.scheduler.Once(1.0 / float64(ebiten.TPS())) })
	} else {
		g.scheduler.Once(1.0 / float64(ebiten.TPS()))
	}

	if g.input.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	e := g.session.Engine()
	g.drawBoard(screen, e.Board())
	if !e.IsGameOver() {
		g.drawPiece(screen, e.Piece())
	}
	g.drawHUD(screen, e)

	if g.imgui != nil {
		g.imgui.DrawOver(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.layout.screenSize()
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
