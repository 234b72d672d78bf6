package corner

import (
	"iter"

	"github.com/talgya/hexgrid/hex"
)

// Pair is a Low vertex and the High vertex one side after it along a ring.
type Pair struct {
	Low  Position
	High Position
}

type ringSide struct {
	toHigh Position // High step from the Low vertex
	toLow  Position // Center step from the High vertex to the next Low one
	runs   int
}

// Ring walks the vertices on the outline of a hex-shaped region, the same
// region hex.NewRing outlines, two at a time. It starts at the top-left
// vertex of the anchor cell and runs clockwise back to it.
type Ring struct {
	low   Position
	sides [6]ringSide
	side  int
	taken int
}

// NewRing returns the vertex ring around the region anchored at anchor.
// A region with longest < shortest or shortest < 1 yields nothing.
func NewRing(anchor hex.Position, shortest, longest int) *Ring {
	r := &Ring{low: TopLeft.Translate(anchor), side: 6}
	if shortest < 1 || longest < shortest {
		return r
	}
	slant := longest - shortest
	r.sides = [6]ringSide{
		{StepUpRight, StepDownRight, shortest},
		{StepDown, StepDownRight, slant},
		{StepDown, StepDownLeft, slant + 1},
		{StepUpLeft, StepDownLeft, shortest - 1},
		{StepUpLeft, StepUp, slant + 1},
		{StepUpRight, StepUp, slant},
	}
	r.side = 0
	return r
}

// RingLen returns how many pairs a vertex ring with these extents yields.
func RingLen(shortest, longest int) int {
	if shortest < 1 || longest < shortest {
		return 0
	}
	return 2*shortest + 1 + 4*(longest-shortest)
}

// Next returns the next pair, or false once the ring is closed.
func (r *Ring) Next() (Pair, bool) {
	for r.side < len(r.sides) && r.taken == r.sides[r.side].runs {
		r.side++
		r.taken = 0
	}
	if r.side == len(r.sides) {
		return Pair{}, false
	}
	s := r.sides[r.side]
	p := Pair{Low: r.low, High: r.low.Add(s.toHigh)}
	r.low = p.High.Add(s.toLow)
	r.taken++
	return p, true
}

// Nth skips n pairs and returns the one after them.
func (r *Ring) Nth(n int) (Pair, bool) {
	for ; n > 0; n-- {
		if _, ok := r.Next(); !ok {
			return Pair{}, false
		}
	}
	return r.Next()
}

// All drains the ring as a sequence.
func (r *Ring) All() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for {
			p, ok := r.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Len returns how many pairs remain.
func (r *Ring) Len() int {
	n := 0
	for i := r.side; i < len(r.sides); i++ {
		n += r.sides[i].runs
	}
	if r.side < len(r.sides) {
		n -= r.taken
	}
	return n
}
