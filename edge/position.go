// Package edge addresses the sides of a hex tiling.
//
// Edge midpoints sit on a lattice four columns per cell width and two rows
// per cell row, with the cell at the hex origin centered on (1, 1). A raw
// pair is an edge when both coordinates are even, or both are odd and their
// sum is a multiple of four. Every side is shared by two cells, so tables
// store it once, under a single owner cell.
package edge

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/talgya/hexgrid/corner"
	"github.com/talgya/hexgrid/grid"
	"github.com/talgya/hexgrid/hex"
	"github.com/talgya/hexgrid/internal/lattice"
)

// Position is a side, or a cell center while doing arithmetic.
type Position struct {
	rights int
	downs  int
	kind   Kind
}

func kindOf(rights, downs int) Kind {
	return Kind(rights&1 | lattice.Mod(rights+downs, 4)/2<<1)
}

func at(rights, downs int) Position {
	if lattice.Checks && (rights-downs)&1 != 0 {
		panic(fmt.Sprintf("edge: (%d, %d) is off the lattice", rights, downs))
	}
	return Position{rights: rights, downs: downs, kind: kindOf(rights, downs)}
}

// Sides of the cell at the hex origin, clockwise from the top right. Side i
// joins corners i and i+1 of corner.Of.
var (
	TopRight    = at(2, 0)
	Right       = at(3, 1)
	BottomRight = at(2, 2)
	BottomLeft  = at(0, 2)
	Left        = at(-1, 1)
	TopLeft     = at(0, 0)
)

// Steps that change an edge's kind, grouped by the kind they carry.
var (
	StepDownRight = at(1, 1)   // Negative
	StepUpLeft    = at(-1, -1) // Negative
	StepRight     = at(2, 0)   // Odd
	StepLeft      = at(-2, 0)  // Odd
	StepUpRight   = at(1, -1)  // Positive
	StepDownLeft  = at(-1, 1)  // Positive
)

// New validates a raw pair and returns the side it names.
func New(rights, downs int) (Position, error) {
	even := rights&1 == 0 && downs&1 == 0
	odd := rights&1 == 1 && downs&1 == 1 && lattice.Mod(rights+downs, 4) == 0
	if !even && !odd {
		return Position{}, fmt.Errorf("edge (%d, %d): %w", rights, downs, grid.ErrInvalidPosition)
	}
	return at(rights, downs), nil
}

// Of returns the six sides of h, clockwise from the top right.
func Of(h hex.Position) [6]Position {
	return [6]Position{
		TopRight.Translate(h),
		Right.Translate(h),
		BottomRight.Translate(h),
		BottomLeft.Translate(h),
		Left.Translate(h),
		TopLeft.Translate(h),
	}
}

// CenterOf returns the Negative-kind position of h.
func CenterOf(h hex.Position) Position {
	return at(2*h.Halves()+1, 2*h.Downs+1)
}

// Between returns the side joining two adjacent corners. Center-kind
// corners join no sides.
func Between(a, b corner.Position) (Position, bool) {
	if !a.Kind().Stored() || !b.Kind().Stored() {
		return Position{}, false
	}
	adjacent := false
	for _, n := range a.Neighbors() {
		if n == b {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return Position{}, false
	}
	return at(a.Rights()+b.Rights()-1, (a.Downs()+b.Downs()+1)/3), true
}

// Around returns the three sides meeting at c.
func Around(c corner.Position) [3]Position {
	var out [3]Position
	for i, n := range c.Neighbors() {
		e, ok := Between(c, n)
		if !ok {
			panic(fmt.Sprintf("edge: %v and its neighbor %v share no side", c, n))
		}
		out[i] = e
	}
	return out
}

func (p Position) Rights() int { return p.rights }
func (p Position) Downs() int  { return p.downs }
func (p Position) Kind() Kind  { return p.kind }

// AsEven returns p when it is an Even side.
func (p Position) AsEven() (Position, bool) { return p, p.kind == Even }

// AsOdd returns p when it is an Odd side.
func (p Position) AsOdd() (Position, bool) { return p, p.kind == Odd }

// AsPositive returns p when it is a Positive side.
func (p Position) AsPositive() (Position, bool) { return p, p.kind == Positive }

// Add sums two positions; kinds combine by XOR.
func (p Position) Add(o Position) Position {
	return Position{rights: p.rights + o.rights, downs: p.downs + o.downs, kind: sumKind[p.kind][o.kind]}
}

// Sub returns p - o. Under XOR, difference and sum kinds agree.
func (p Position) Sub(o Position) Position {
	return Position{rights: p.rights - o.rights, downs: p.downs - o.downs, kind: sumKind[p.kind][o.kind]}
}

// Scale repeats an Even offset k times and panics for other kinds.
func (p Position) Scale(k int) Position {
	if p.kind != Even {
		panic(fmt.Sprintf("edge: cannot scale %v", p))
	}
	return Position{rights: p.rights * k, downs: p.downs * k, kind: Even}
}

// Mul is Scale for any integer type.
func Mul[N constraints.Integer](p Position, k N) Position {
	return p.Scale(int(k))
}

// Translate moves p by a whole cell offset, keeping its kind.
func (p Position) Translate(h hex.Position) Position {
	return Position{rights: p.rights + 2*h.Halves(), downs: p.downs + 2*h.Downs, kind: p.kind}
}

// Hex returns the cell centered on p, or false unless p is Negative.
func (p Position) Hex() (hex.Position, bool) {
	if p.kind != Negative {
		return hex.Position{}, false
	}
	return hex.FromHalves((p.rights-1)/2, (p.downs-1)/2), true
}

// Owner returns the cell that stores p: the one whose top-left, left or
// bottom-left side it is.
func (p Position) Owner() hex.Position {
	var c Position
	switch p.kind {
	case Even:
		c = p.Add(StepDownRight)
	case Positive:
		c = p.Add(StepRight)
	case Odd:
		c = p.Add(StepUpRight)
	default:
		panic(fmt.Sprintf("edge: %v has no owner", p))
	}
	h, ok := c.Hex()
	if !ok {
		panic(fmt.Sprintf("edge: owner of %v resolved to %v", p, c))
	}
	return h
}

func (p Position) slot() int {
	switch p.kind {
	case Even:
		return 0
	case Positive:
		return 1
	case Odd:
		return 2
	default:
		panic(fmt.Sprintf("edge: %v is not stored", p))
	}
}

// Touching returns the two cells p separates.
func (p Position) Touching() [2]hex.Position {
	o := p.Owner()
	switch p.kind {
	case Even:
		return [2]hex.Position{o, o.Add(hex.UpLeft)}
	case Positive:
		return [2]hex.Position{o, o.Add(hex.Left)}
	default:
		return [2]hex.Position{o, o.Add(hex.DownLeft)}
	}
}

// Endpoints returns the two corners p joins, upper one first.
func (p Position) Endpoints() [2]corner.Position {
	o := p.Owner()
	switch p.kind {
	case Even:
		return [2]corner.Position{corner.Top.Translate(o), corner.TopLeft.Translate(o)}
	case Positive:
		return [2]corner.Position{corner.TopLeft.Translate(o), corner.BottomLeft.Translate(o)}
	default:
		return [2]corner.Position{corner.BottomLeft.Translate(o), corner.Bottom.Translate(o)}
	}
}

// HorizontalDistance returns how far p lies right of o, in quarter widths.
func (p Position) HorizontalDistance(o Position) int {
	return p.rights - o.rights
}

// VerticalDistance returns how far p lies below o, in half rows.
func (p Position) VerticalDistance(o Position) int {
	return p.downs - o.downs
}

func (p Position) String() string {
	return fmt.Sprintf("%v(%d, %d)", p.kind, p.rights, p.downs)
}
