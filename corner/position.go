// Package corner addresses the vertices of a hex tiling.
//
// Vertices sit on a lattice two columns per cell width and three rows per
// cell row, with the cell at the hex origin centered on (1, 1). A raw pair
// is a vertex when rights+downs is even and downs mod 3 is not 1; the
// residue of downs picks the Kind. Every vertex is shared by up to three
// cells, so tables store it once, under a single owner cell.
package corner

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/talgya/hexgrid/grid"
	"github.com/talgya/hexgrid/hex"
	"github.com/talgya/hexgrid/internal/lattice"
)

// Position is a vertex, or a cell center while doing arithmetic.
type Position struct {
	rights int
	downs  int
	kind   Kind
}

func at(rights, downs int) Position {
	p := Position{rights: rights, downs: downs, kind: Kind(lattice.Mod(downs, 3))}
	if lattice.Checks && lattice.Mod(rights+downs, 2) != 0 {
		panic(fmt.Sprintf("corner: (%d, %d) is off the lattice", rights, downs))
	}
	return p
}

// Corners of the cell at the hex origin, clockwise from the top.
var (
	Top         = at(1, -1)
	TopRight    = at(2, 0)
	BottomRight = at(2, 2)
	Bottom      = at(1, 3)
	BottomLeft  = at(0, 2)
	TopLeft     = at(0, 0)
)

// Steps between adjacent vertices. A Low vertex moves along the High steps
// and lands on a High vertex; a High vertex moves along the Center steps
// and lands on a Low one.
var (
	StepUpLeft  = at(-1, -1) // High
	StepUpRight = at(1, -1)  // High
	StepDown    = at(0, 2)   // High

	StepDownLeft  = at(-1, 1) // Center
	StepDownRight = at(1, 1)  // Center
	StepUp        = at(0, -2) // Center
)

// New validates a raw pair and returns the vertex it names.
func New(rights, downs int) (Position, error) {
	if lattice.Mod(rights+downs, 2) != 0 || lattice.Mod(downs, 3) == 1 {
		return Position{}, fmt.Errorf("corner (%d, %d): %w", rights, downs, grid.ErrInvalidPosition)
	}
	return at(rights, downs), nil
}

// Of returns the six vertices of h, clockwise from the top.
func Of(h hex.Position) [6]Position {
	return [6]Position{
		Top.Translate(h),
		TopRight.Translate(h),
		BottomRight.Translate(h),
		Bottom.Translate(h),
		BottomLeft.Translate(h),
		TopLeft.Translate(h),
	}
}

// CenterOf returns the Center-kind position of h.
func CenterOf(h hex.Position) Position {
	return at(h.Halves()+1, 3*h.Downs+1)
}

func (p Position) Rights() int { return p.rights }
func (p Position) Downs() int  { return p.downs }
func (p Position) Kind() Kind  { return p.kind }

// AsLow returns p when it is a Low vertex.
func (p Position) AsLow() (Position, bool) { return p, p.kind == Low }

// AsHigh returns p when it is a High vertex.
func (p Position) AsHigh() (Position, bool) { return p, p.kind == High }

// Add sums two positions. The result kind depends only on the operand
// kinds: Low+High is High, High+High and Low+Center are Center.
func (p Position) Add(o Position) Position {
	return Position{rights: p.rights + o.rights, downs: p.downs + o.downs, kind: sumKind[p.kind][o.kind]}
}

// Sub returns p - o.
func (p Position) Sub(o Position) Position {
	return Position{rights: p.rights - o.rights, downs: p.downs - o.downs, kind: diffKind[p.kind][o.kind]}
}

// Scale repeats a Low offset k times. Other kinds would leave their
// lattice, so scaling them panics.
func (p Position) Scale(k int) Position {
	if p.kind != Low {
		panic(fmt.Sprintf("corner: cannot scale %v", p))
	}
	return Position{rights: p.rights * k, downs: p.downs * k, kind: Low}
}

// Mul is Scale for any integer type.
func Mul[N constraints.Integer](p Position, k N) Position {
	return p.Scale(int(k))
}

// Translate moves p by a whole cell offset, keeping its kind.
func (p Position) Translate(h hex.Position) Position {
	return Position{rights: p.rights + h.Halves(), downs: p.downs + 3*h.Downs, kind: p.kind}
}

// Hex returns the cell centered on p. It reports false unless p is a
// Center position, which is what High+High and Low+Center sums produce.
func (p Position) Hex() (hex.Position, bool) {
	if p.kind != Center {
		return hex.Position{}, false
	}
	return hex.FromHalves(p.rights-1, (p.downs-1)/3), true
}

// Owner returns the cell that stores p: the cell whose top-left vertex is a
// Low p, or whose bottom-left vertex is a High p.
func (p Position) Owner() hex.Position {
	var c Position
	switch p.kind {
	case Low:
		c = p.Add(StepDownRight)
	case High:
		c = p.Add(StepUpRight)
	default:
		panic(fmt.Sprintf("corner: %v has no owner", p))
	}
	h, ok := c.Hex()
	if !ok {
		panic(fmt.Sprintf("corner: owner of %v resolved to %v", p, c))
	}
	return h
}

// slot is p's index in its owner's pair of stored vertices.
func (p Position) slot() int {
	switch p.kind {
	case Low:
		return 0
	case High:
		return 1
	default:
		panic(fmt.Sprintf("corner: %v is not stored", p))
	}
}

// Touching returns the cells meeting at p.
func (p Position) Touching() [3]hex.Position {
	o := p.Owner()
	if p.kind == Low {
		return [3]hex.Position{o, o.Add(hex.Left), o.Add(hex.UpLeft)}
	}
	return [3]hex.Position{o, o.Add(hex.Left), o.Add(hex.DownLeft)}
}

// Neighbors returns the three vertices one side away from p.
func (p Position) Neighbors() [3]Position {
	switch p.kind {
	case Low:
		return [3]Position{p.Add(StepUpLeft), p.Add(StepUpRight), p.Add(StepDown)}
	case High:
		return [3]Position{p.Add(StepDownLeft), p.Add(StepDownRight), p.Add(StepUp)}
	default:
		panic(fmt.Sprintf("corner: %v has no neighbors", p))
	}
}

// HorizontalDistance returns how far p lies right of o.
func (p Position) HorizontalDistance(o Position) hex.HorizontalDistance {
	return hex.HalfWidths(p.rights - o.rights)
}

// VerticalDistance returns how far p lies below o, in thirds of a row.
func (p Position) VerticalDistance(o Position) int {
	return p.downs - o.downs
}

func (p Position) String() string {
	return fmt.Sprintf("%v(%d, %d)", p.kind, p.rights, p.downs)
}
