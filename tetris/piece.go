package tetris

import "image/color"

// Point is a cell coordinate on the board, row 0 at the top.
type Point struct {
	X, Y int
}

// Piece is the live falling piece. X and Y locate the top-left corner of the
// mask's bounding box in board coordinates.
type Piece struct {
	Kind  Kind
	Mask  Mask
	Color color.RGBA
	X     int
	Y     int
}

// Spawn creates a piece of the kind chosen by r, centered horizontally over a
// board of the given width and resting on row 0.
func Spawn(r Randomizer, boardWidth int) Piece {
	return NewPiece(r.Next(), boardWidth)
}

// NewPiece creates a piece of a specific kind at its spawn position.
func NewPiece(kind Kind, boardWidth int) Piece {
	shape := ShapeOf(kind)
	return Piece{
		Kind:  shape.Kind,
		Mask:  shape.Mask,
		Color: shape.Color,
		X:     boardWidth/2 - shape.Mask.Width()/2,
		Y:     0,
	}
}

// Rotate returns m turned 90 degrees clockwise. The input is not modified.
func Rotate(m Mask) Mask {
	h, w := m.Height(), m.Width()
	rotated := make(Mask, w)
	for i := range rotated {
		rotated[i] = make([]bool, h)
		for j := range rotated[i] {
			rotated[i][j] = m[h-1-j][i]
		}
	}
	return rotated
}

// Rotated returns a copy of the piece with its mask rotated clockwise.
// The bounding box keeps its top-left corner.
func (p Piece) Rotated() Piece {
	p.Mask = Rotate(p.Mask)
	return p
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Clone returns a copy of the piece that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Mask = p.Mask.Clone()
	return p
}

// Cells returns the absolute board coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for y, row := range p.Mask {
		for x, filled := range row {
			if filled {
				cells = append(cells, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return cells
}
