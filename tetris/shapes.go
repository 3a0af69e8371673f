// Package tetris implements the game-state engine of a falling-block puzzle:
// the grid, the pieces, collision, rotation, line clearing and the tick driven
// state machine. Rendering and input belong to the caller, which drives the
// Engine one tick at a time and reads its state back for display.
package tetris

import "image/color"

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies one of the seven piece shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// NumKinds is the number of entries in the shape catalog.
const NumKinds = 7

// Mask marks the occupied cells of a piece's bounding box, indexed [row][col].
type Mask [][]bool

// Width returns the number of columns in the mask.
func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows in the mask.
func (m Mask) Height() int {
	return len(m)
}

// Clone returns a deep copy of the mask.
func (m Mask) Clone() Mask {
	out := make(Mask, len(m))
	for i := range m {
		out[i] = make([]bool, len(m[i]))
		copy(out[i], m[i])
	}
	return out
}

// Equal reports whether both masks have the same dimensions and cells.
func (m Mask) Equal(other Mask) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for i := range m {
		for _, filled := range m[i] {
			if filled {
				n++
			}
		}
	}
	return n
}

// Shape is a catalog entry: a kind, its spawn mask and its fixed color.
type Shape struct {
	Kind  Kind
	Mask  Mask
	Color color.RGBA
}

var (
	Cyan    = color.RGBA{0, 255, 255, 255}
	Yellow  = color.RGBA{255, 255, 0, 255}
	Magenta = color.RGBA{255, 0, 255, 255}
	Orange  = color.RGBA{255, 165, 0, 255}
	Blue    = color.RGBA{0, 0, 255, 255}
	Green   = color.RGBA{0, 255, 0, 255}
	Red     = color.RGBA{255, 0, 0, 255}
)

var catalog = [NumKinds]Shape{
	{Kind: KindI, Color: Cyan, Mask: Mask{
		{true, true, true, true},
	}},
	{Kind: KindO, Color: Yellow, Mask: Mask{
		{true, true},
		{true, true},
	}},
	{Kind: KindT, Color: Magenta, Mask: Mask{
		{true, true, true},
		{false, true, false},
	}},
	{Kind: KindL, Color: Orange, Mask: Mask{
		{true, true, true},
		{true, false, false},
	}},
	{Kind: KindJ, Color: Blue, Mask: Mask{
		{true, true, true},
		{false, false, true},
	}},
	{Kind: KindS, Color: Green, Mask: Mask{
		{true, true, false},
		{false, true, true},
	}},
	{Kind: KindZ, Color: Red, Mask: Mask{
		{false, true, true},
		{true, true, false},
	}},
}

// Catalog returns the seven shapes in kind order. The masks are copies.
func Catalog() []Shape {
	shapes := make([]Shape, NumKinds)
	for i, s := range catalog {
		shapes[i] = ShapeOf(s.Kind)
	}
	return shapes
}

// ShapeOf returns the catalog entry for kind. It panics on an unknown kind.
func ShapeOf(kind Kind) Shape {
	if kind < 0 || kind >= NumKinds {
		panic("tetris: unknown kind " + kind.String())
	}
	s := catalog[kind]
	s.Mask = s.Mask.Clone()
	return s
}
