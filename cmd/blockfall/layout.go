package main

const (
	margin     = 30
	panelWidth = 200
	// debugWidth leaves room on the left for the ImGui windows.
	debugWidth = 380
)

// layout maps board cells to screen pixels.
type layout struct {
	cellSize int
	cols     int
	rows     int
	offsetX  int
	offsetY  int
}

func newLayout(cellSize, cols, rows int, debug bool) layout {
	l := layout{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		offsetX:  margin,
		offsetY:  margin,
	}
	if debug {
		l.offsetX += debugWidth
	}
	return l
}

// cellOrigin returns the top-left pixel of board cell (x, y).
func (l layout) cellOrigin(x, y int) (float32, float32) {
	return float32(l.offsetX + x*l.cellSize), float32(l.offsetY + y*l.cellSize)
}

func (l layout) boardSize() (int, int) {
	return l.cols * l.cellSize, l.rows * l.cellSize
}

// hudOrigin is where the score panel starts, right of the board.
func (l layout) hudOrigin() (int, int) {
	w, _ := l.boardSize()
	return l.offsetX + w + margin, l.offsetY
}

func (l layout) screenSize() (int, int) {
	w, h := l.boardSize()
	return l.offsetX + w + margin + panelWidth, h + 2*l.offsetY
}
