package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	gridColor       = color.RGBA{40, 40, 40, 255}
	borderColor     = color.RGBA{200, 200, 200, 255}
)

func (g *Game) drawCell(screen *ebiten.Image, x, y int, c color.Color) {
	sx, sy := g.layout.cellOrigin(x, y)
	size := float32(g.layout.cellSize - 1)
	vector.DrawFilledRect(screen, sx, sy, size, size, c, false)
}

func (g *Game) drawBoard(screen *ebiten.Image, board tetris.Snapshot) {
	for y, row := range board.Cells {
		for x, cell := range row {
			if cell.Filled {
				g.drawCell(screen, x, y, cell.Color)
			} else {
				g.drawCell(screen, x, y, gridColor)
			}
		}
	}

	ox, oy := g.layout.cellOrigin(0, 0)
	w, h := g.layout.boardSize()
	vector.StrokeRect(screen, ox-2, oy-2, float32(w)+3, float32(h)+3, 1, borderColor, false)
}

func (g *Game) drawPiece(screen *ebiten.Image, p tetris.Piece) {
	for _, pt := range p.Cells() {
		if pt.Y < 0 {
			continue
		}
		g.drawCell(screen, pt.X, pt.Y, p.Color)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, e *tetris.Engine) {
	x, y := g.layout.hudOrigin()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", e.Score()), x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best:  %d", max(g.session.Best(), e.Score())), x, y+16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Games: %d", g.session.Games()), x, y+32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", e.Stats().LinesCleared), x, y+48)

	switch {
	case e.IsGameOver():
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R", x, y+80)
	case g.pause.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED (N to step)", x, y+80)
	}

	ebitenutil.DebugPrintAt(screen, "arrows move/rotate\nspace hard drop\np pause  q quit", x, y+120)
}
