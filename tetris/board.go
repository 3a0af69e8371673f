package tetris

import (
	"image/color"
	"strings"
)

// Cell is a single grid square. The zero value is empty.
type Cell struct {
	Filled bool
	Color  color.RGBA
}

// Board is the grid of settled cells, Height rows of Width cells, row 0 at the top.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		rows:   make([][]Cell, height),
	}
	for y := range b.rows {
		b.rows[y] = make([]Cell, width)
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Cell returns the cell at (x, y). Coordinates outside the grid read as empty.
func (b *Board) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.rows[y][x]
}

// Set overwrites the cell at (x, y). Out of range coordinates are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if b.inBounds(x, y) {
		b.rows[y][x] = c
	}
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Collides reports whether p, translated by (dx, dy), would leave the side
// walls, pass the floor, or overlap a settled cell. Cells above row 0 are only
// checked against the walls.
func (b *Board) Collides(p Piece, dx, dy int) bool {
	for y, row := range p.Mask {
		for x, filled := range row {
			if !filled {
				continue
			}

			ax := p.X + x + dx
			ay := p.Y + y + dy

			if ax < 0 || ax >= b.width || ay >= b.height {
				return true
			}

			if ay >= 0 && b.rows[ay][ax].Filled {
				return true
			}
		}
	}

	return false
}

// Merge bakes p into the grid using the piece color. The caller must have
// validated the position; cells outside the grid are dropped.
func (b *Board) Merge(p Piece) {
	for _, pt := range p.Cells() {
		b.Set(pt.X, pt.Y, Cell{Filled: true, Color: p.Color})
	}
}

// ClearFullRows removes every completely filled row, shifts the rows above it
// down and fills the top with empty rows. It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	write := b.height - 1
	for read := b.height - 1; read >= 0; read-- {
		if b.rowFull(read) {
			continue
		}
		b.rows[write] = b.rows[read]
		write--
	}

	cleared := write + 1
	for y := 0; y < cleared; y++ {
		b.rows[y] = make([]Cell, b.width)
	}

	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.rows[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// Snapshot returns a deep copy of the grid.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Width:  b.width,
		Height: b.height,
		Cells:  make([][]Cell, b.height),
	}
	for y := range b.rows {
		s.Cells[y] = make([]Cell, b.width)
		copy(s.Cells[y], b.rows[y])
	}
	return s
}

// Snapshot is a read-only copy of the board handed to presentation code.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// Filled reports whether (x, y) is occupied.
func (s Snapshot) Filled(x, y int) bool {
	if y < 0 || y >= s.Height || x < 0 || x >= s.Width {
		return false
	}
	return s.Cells[y][x].Filled
}

// String renders the grid one row per line, '#' for filled and '.' for empty.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow((s.Width + 1) * s.Height)
	for _, row := range s.Cells {
		for _, c := range row {
			if c.Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
