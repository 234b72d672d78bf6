package hex

import "iter"

// Spiral covers a hex-shaped region ring by ring, outermost first. Each
// inner ring shrinks by one cell on the short rows and two on the long
// row, and starts one step right of where the previous ring ended. When
// the inner top row would be empty, the walk drops one more row and goes
// on with a single-cell top row, so wide regions are covered too.
type Spiral struct {
	ring     *Ring
	last     Position
	shortest int
	longest  int
	started  bool
}

// NewSpiral returns a spiral over the region anchored at the origin.
func NewSpiral(shortest, longest int) *Spiral {
	return NewSpiralAt(Origin, shortest, longest)
}

// NewSpiralAt returns a spiral whose outer ring is anchored at anchor.
func NewSpiralAt(anchor Position, shortest, longest int) *Spiral {
	return &Spiral{
		ring:     NewRing(anchor, shortest, longest),
		shortest: shortest,
		longest:  longest,
	}
}

// SpiralLen returns how many positions a spiral with these extents yields.
func SpiralLen(shortest, longest int) int {
	n := 0
	for shortest > 0 && longest >= shortest {
		n += RingLen(shortest, longest)
		shortest, longest, _ = inner(shortest, longest)
	}
	return n
}

// inner returns the extents of the region left inside a ring. lower is
// set when that region's top row is empty and it starts a row further
// down, with a single cell.
func inner(shortest, longest int) (s, l int, lower bool) {
	s, l = shortest-1, longest-2
	if s == 0 && l > 0 {
		return 1, l, true
	}
	return s, l, false
}

// Next returns the next position, or false once every ring is spent.
func (s *Spiral) Next() (Position, bool) {
	for {
		if p, ok := s.ring.Next(); ok {
			s.last = p
			s.started = true
			return p, true
		}
		if !s.started {
			return Position{}, false
		}
		var lower bool
		s.shortest, s.longest, lower = inner(s.shortest, s.longest)
		if s.shortest <= 0 || s.longest < s.shortest {
			return Position{}, false
		}
		anchor := s.last.Add(Right)
		if lower {
			anchor = anchor.Add(DownLeft)
		}
		s.ring = NewRing(anchor, s.shortest, s.longest)
	}
}

// All drains the spiral as a sequence.
func (s *Spiral) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Len returns how many positions remain.
func (s *Spiral) Len() int {
	if s.shortest <= 0 || s.longest < s.shortest {
		return 0
	}
	is, il, _ := inner(s.shortest, s.longest)
	return s.ring.Len() + SpiralLen(is, il)
}

// Orbit pairs each position of a spiral over (shortest, longest) with the
// next value from values. It stops when either side runs out.
func Orbit[T any](values iter.Seq[T], shortest, longest int) iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		s := NewSpiral(shortest, longest)
		for v := range values {
			p, ok := s.Next()
			if !ok || !yield(p, v) {
				return
			}
		}
	}
}

// Fill stores every pair of seq into t and returns how many were stored.
// It stops at the first position outside the table.
func Fill[T any](t *Table[T], seq iter.Seq2[Position, T]) (int, error) {
	n := 0
	for p, v := range seq {
		if err := t.Set(p, v); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
