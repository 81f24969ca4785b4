// Package mouse models the mouse's position on the half-integer lattice
// and its eight-way heading. It carries no behavior beyond reset: the
// movement state machine lives in package simulation.
package mouse

import "github.com/hadak-labs/micromouse-sim/direction"

// SemiPosition is a coordinate on the 2W×2H half-integer lattice.
type SemiPosition struct {
	X, Y int
}

// ToCell returns the cell index (X/2, Y/2). For an (odd,odd) position that
// is the cell containing it; an even coordinate (wall midpoint or lattice
// node) maps to the cell on its east or north side, which is out of bounds
// at X=2W or Y=2H.
func (p SemiPosition) ToCell() (x, y int) {
	return p.X / 2, p.Y / 2
}

// Mouse is a pure data carrier: a lattice position and a heading.
type Mouse struct {
	pos     SemiPosition
	heading direction.Semi
}

// New returns a mouse at its reset position and heading.
func New() *Mouse {
	m := &Mouse{}
	m.Reset()
	return m
}

// Reset restores the mouse to (1,1), heading north -- the center of cell
// (0,0), the default starting cell.
func (m *Mouse) Reset() {
	m.pos = SemiPosition{X: 1, Y: 1}
	m.heading = direction.N
}

func (m *Mouse) Position() SemiPosition      { return m.pos }
func (m *Mouse) SetPosition(p SemiPosition)  { m.pos = p }
func (m *Mouse) Heading() direction.Semi     { return m.heading }
func (m *Mouse) SetHeading(h direction.Semi) { m.heading = h }
