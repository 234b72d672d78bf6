// Package hex addresses the cells of a pointy-top hexagonal tiling.
// Rows are counted by Downs; odd rows sit half a cell to the left of even
// ones, so the physical column of a cell is Rights - 0.5 on odd rows.
package hex

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/talgya/hexgrid/internal/lattice"
)

// Position is the offset-row coordinate of a cell center.
// Raw pairs are canonical: no two pairs name the same cell.
type Position struct {
	Rights int `json:"rights"`
	Downs  int `json:"downs"`
}

// Unit directions, plus the origin.
var (
	Origin    = Position{Rights: 0, Downs: 0}
	Right     = Position{Rights: 1, Downs: 0}
	DownRight = Position{Rights: 1, Downs: 1}
	DownLeft  = Position{Rights: 0, Downs: 1}
	Left      = Position{Rights: -1, Downs: 0}
	UpLeft    = Position{Rights: 0, Downs: -1}
	UpRight   = Position{Rights: 1, Downs: -1}
)

// Directions lists the six neighbor offsets clockwise from Right.
var Directions = [6]Position{Right, DownRight, DownLeft, Left, UpLeft, UpRight}

// New returns the position at (rights, downs).
func New(rights, downs int) Position {
	return Position{Rights: rights, Downs: downs}
}

// FromHalves returns the cell whose center lies halfX half-widths right of
// the origin column on row downs. halfX and downs must share parity.
func FromHalves(halfX, downs int) Position {
	return Position{Rights: (halfX + downs&1) / 2, Downs: downs}
}

// Halves returns the column of the cell center counted in half widths.
// It always has the same parity as Downs.
func (p Position) Halves() int {
	return 2*p.Rights - p.Downs&1
}

// Add translates p by o.
func (p Position) Add(o Position) Position {
	x := p.HorizontalDistance(Origin).Add(o.HorizontalDistance(Origin))
	downs := p.Downs + o.Downs
	return Position{Rights: x.Ceil(), Downs: downs}
}

// Sub returns the offset from o to p.
func (p Position) Sub(o Position) Position {
	x := p.HorizontalDistance(o)
	return Position{Rights: x.Ceil(), Downs: p.Downs - o.Downs}
}

// Neg mirrors p through the origin.
func (p Position) Neg() Position {
	return Origin.Sub(p)
}

// Scale repeats the offset p k times.
func (p Position) Scale(k int) Position {
	return FromHalves(p.Halves()*k, p.Downs*k)
}

// Mul is Scale for any integer type.
func Mul[N constraints.Integer](p Position, k N) Position {
	return p.Scale(int(k))
}

// HorizontalDistance returns how far p lies right of o.
func (p Position) HorizontalDistance(o Position) HorizontalDistance {
	return fromHalves(p.Halves() - o.Halves())
}

// VerticalDistance returns how many rows p lies below o.
func (p Position) VerticalDistance(o Position) int {
	return p.Downs - o.Downs
}

// Comparisons use right and down as the positive axes.

func (p Position) IsLeftOf(o Position) bool       { return p.HorizontalDistance(o).Sign() < 0 }
func (p Position) IsLeftOrEqual(o Position) bool  { return p.HorizontalDistance(o).Sign() <= 0 }
func (p Position) IsRightOf(o Position) bool      { return p.HorizontalDistance(o).Sign() > 0 }
func (p Position) IsRightOrEqual(o Position) bool { return p.HorizontalDistance(o).Sign() >= 0 }
func (p Position) IsAbove(o Position) bool        { return p.VerticalDistance(o) < 0 }
func (p Position) IsAboveOrEqual(o Position) bool { return p.VerticalDistance(o) <= 0 }
func (p Position) IsBelow(o Position) bool        { return p.VerticalDistance(o) > 0 }
func (p Position) IsBelowOrEqual(o Position) bool { return p.VerticalDistance(o) >= 0 }

// Neighbors returns the six adjacent cells in Directions order.
func (p Position) Neighbors() [6]Position {
	var result [6]Position
	for i, dir := range Directions {
		result[i] = p.Add(dir)
	}
	return result
}

// axial converts to axial (q, r) so that cube distance applies.
func (p Position) axial() (q, r int) {
	return (p.Halves() - p.Downs) / 2, p.Downs
}

// Distance returns the number of steps between two cells.
func Distance(a, b Position) int {
	aq, ar := a.axial()
	bq, br := b.axial()
	dq, dr := aq-bq, ar-br
	return (lattice.Abs(dq) + lattice.Abs(dr) + lattice.Abs(dq+dr)) / 2
}

// Center returns the cell center in plane coordinates, one unit per cell
// width, y growing downward.
func (p Position) Center() (x, y float64) {
	return float64(p.Halves()) / 2, float64(p.Downs) * math.Sqrt(3) / 2
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Rights, p.Downs)
}
