package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// EngineInspector shows the live engine state and offers pause and
// single-step controls.
type EngineInspector struct {
	engine func() *tetris.Engine
	pause  *loop.Pause
}

// NewEngineInspector inspects whatever engine the getter returns, so the
// window follows restarts.
func NewEngineInspector(engine func() *tetris.Engine, pause *loop.Pause) *EngineInspector {
	return &EngineInspector{engine: engine, pause: pause}
}

// clearRows returns the clear histogram as sorted "rows: count" lines.
func clearRows(stats tetris.Stats) []string {
	keys := make([]int, 0, len(stats.Clears))
	for rows := range stats.Clears {
		keys = append(keys, rows)
	}
	sort.Ints(keys)

	lines := make([]string, len(keys))
	for i, rows := range keys {
		lines[i] = fmt.Sprintf("%d row(s): %d", rows, stats.Clears[rows])
	}
	return lines
}

func (ei *EngineInspector) Render() {
	e := ei.engine()
	if e == nil {
		return
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 380), imgui.CondOnce)
	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if e.IsGameOver() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else if ei.pause.Paused {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	if ei.pause.Paused {
		if imgui.Button("Resume") {
			ei.pause.Toggle()
		}
		imgui.SameLine()
		if imgui.Button("1 Tick") {
			ei.pause.Step()
		}
	} else if imgui.Button("Pause") {
		ei.pause.Toggle()
	}

	imgui.Separator()

	cfg := e.Config()
	piece := e.Piece()
	stats := e.Stats()

	imgui.Text(fmt.Sprintf("Board: %dx%d, gravity every %d ticks", cfg.Width, cfg.Height, cfg.FallInterval))
	imgui.Text(fmt.Sprintf("Score: %d", e.Score()))
	imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d), %dx%d", piece.Kind, piece.X, piece.Y, piece.Mask.Width(), piece.Mask.Height()))
	imgui.Text(fmt.Sprintf("Ticks: %d  Gravity steps: %d", stats.Ticks, stats.GravitySteps))
	imgui.Text(fmt.Sprintf("Locks: %d  Lines: %d", stats.Locks, stats.LinesCleared))
	imgui.Text(fmt.Sprintf("Queued commands: %d", e.Commands().Len()))

	if imgui.TreeNodeStr("Spawned Pieces") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for kind, count := range stats.Spawned {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(tetris.Kind(kind).String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Line Clears") {
		for _, line := range clearRows(stats) {
			imgui.BulletText(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}
