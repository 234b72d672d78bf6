package hex

import "iter"

// Ring walks the outline of a hex-shaped region whose top row holds
// shortest cells and whose widest row holds longest cells. It starts at
// the anchor, the leftmost cell of the top row, and runs clockwise:
// Right, DownRight, DownLeft, Left, UpLeft, UpRight.
type Ring struct {
	next  Position
	runs  [6]int
	side  int
	taken int
}

// NewRing returns a ring anchored at anchor. A region with
// longest < shortest or shortest < 1 yields nothing.
func NewRing(anchor Position, shortest, longest int) *Ring {
	r := &Ring{next: anchor.Sub(Right), side: len(Directions)}
	if shortest < 1 || longest < shortest {
		return r
	}
	slant := longest - shortest
	r.runs = [6]int{
		shortest,
		slant,
		slant,
		shortest - 1,
		slant,
		max(slant-1, 0),
	}
	if slant == 0 {
		// A single row: the walk back along it would revisit every cell.
		r.runs[3] = 0
	}
	r.side = 0
	return r
}

// RingLen returns how many positions a ring with these extents yields.
func RingLen(shortest, longest int) int {
	if shortest < 1 || longest < shortest {
		return 0
	}
	if longest == shortest {
		return shortest
	}
	return 4*longest - 2*shortest - 2
}

// Next returns the next position on the ring, or false once the walk ends.
func (r *Ring) Next() (Position, bool) {
	for r.side < len(r.runs) && r.taken == r.runs[r.side] {
		r.side++
		r.taken = 0
	}
	if r.side == len(r.runs) {
		return Position{}, false
	}
	r.next = r.next.Add(Directions[r.side])
	r.taken++
	return r.next, true
}

// All drains the ring as a sequence.
func (r *Ring) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for {
			p, ok := r.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Len returns how many positions remain.
func (r *Ring) Len() int {
	n := 0
	for i := r.side; i < len(r.runs); i++ {
		n += r.runs[i]
	}
	if r.side < len(r.runs) {
		n -= r.taken
	}
	return n
}
