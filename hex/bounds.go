package hex

import (
	"fmt"
	"iter"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hexgrid/grid"
	"github.com/talgya/hexgrid/internal/lattice"
)

// Bounds is the smallest rectangle of cells, by physical column and row,
// holding every position passed to Expand. The top-left and bottom-right
// cells are its extremes; everything between them, inclusive, is inside.
// NewBounds().ExpandAll(seq) always holds the origin; Enclose(seq) holds
// only what seq yields.
type Bounds struct {
	topLeft     Position
	bottomRight Position
}

// NewBounds returns a region holding only the origin.
func NewBounds() Bounds {
	return NewBoundsAt(Origin)
}

// NewBoundsAt returns a region holding only p.
func NewBoundsAt(p Position) Bounds {
	return Bounds{topLeft: p, bottomRight: p}
}

// Enclose folds Expand over positions, seeding the region with the first
// one. An empty sequence yields NewBounds().
func Enclose(positions iter.Seq[Position]) Bounds {
	var b Bounds
	first := true
	for p := range positions {
		if first {
			b = NewBoundsAt(p)
			first = false
			continue
		}
		b.Expand(p)
	}
	if first {
		return NewBounds()
	}
	return b
}

// ExpandAll calls Expand with every position of seq and reports whether
// any of them grew the region.
func (b *Bounds) ExpandAll(positions iter.Seq[Position]) bool {
	grew := false
	for p := range positions {
		if b.Expand(p) {
			grew = true
		}
	}
	return grew
}

// TopLeft returns the upper left extreme.
func (b Bounds) TopLeft() Position { return b.topLeft }

// BottomRight returns the lower right extreme.
func (b Bounds) BottomRight() Position { return b.bottomRight }

// Length is the horizontal extent in whole widths, rounded up.
func (b Bounds) Length() int {
	return b.bottomRight.HorizontalDistance(b.topLeft).Ceil()
}

// Width is the vertical extent in rows.
func (b Bounds) Width() int {
	return b.bottomRight.VerticalDistance(b.topLeft)
}

// Columns is the row stride of the index. One more than Length, so the last
// cell of a row never shares an index with the first cell of the next.
func (b Bounds) Columns() int { return b.Length() + 1 }

// Rows is the number of rows inside.
func (b Bounds) Rows() int { return b.Width() + 1 }

// Capacity is the number of index slots the region needs.
func (b Bounds) Capacity() int { return b.Rows() * b.Columns() }

// Contains reports whether p is inside the region.
func (b Bounds) Contains(p Position) bool {
	return p.IsRightOrEqual(b.topLeft) &&
		p.IsBelowOrEqual(b.topLeft) &&
		p.IsLeftOrEqual(b.bottomRight) &&
		p.IsAboveOrEqual(b.bottomRight)
}

// Expand grows the region by the least amount that takes in p, keeping
// everything already inside. It reports whether the region changed.
func (b *Bounds) Expand(p Position) bool {
	if b.Contains(p) {
		return false
	}
	before := *b

	movedLeft, movedRight := false, false
	switch {
	case p.IsLeftOf(b.topLeft):
		shift := p.HorizontalDistance(b.topLeft).Abs().Ceil()
		b.topLeft = b.topLeft.Add(Left.Scale(shift))
		movedLeft = true
	case p.IsRightOf(b.bottomRight):
		shift := p.HorizontalDistance(b.bottomRight).Abs().Ceil()
		b.bottomRight = b.bottomRight.Add(Right.Scale(shift))
		movedRight = true
	}

	// A single row step moves half a width, so an odd number of rows needs
	// one diagonal step. It leans toward p when this call already pushed that
	// side out, and outward otherwise.
	switch {
	case p.IsAbove(b.topLeft):
		dv := b.topLeft.VerticalDistance(p)
		b.topLeft = b.topLeft.Add(UpLeft.Add(UpRight).Scale(dv / 2))
		if dv%2 == 1 {
			if movedLeft {
				b.topLeft = b.topLeft.Add(UpRight)
			} else {
				b.topLeft = b.topLeft.Add(UpLeft)
			}
		}
	case p.IsBelow(b.bottomRight):
		dv := p.VerticalDistance(b.bottomRight)
		b.bottomRight = b.bottomRight.Add(DownLeft.Add(DownRight).Scale(dv / 2))
		if dv%2 == 1 {
			if movedRight {
				b.bottomRight = b.bottomRight.Add(DownLeft)
			} else {
				b.bottomRight = b.bottomRight.Add(DownRight)
			}
		}
	}

	if lattice.Checks && (!b.Contains(p) || !b.Contains(before.topLeft) || !b.Contains(before.bottomRight)) {
		panic(fmt.Sprintf("hex: expand %v from %v lost a position, got %v", p, before, *b))
	}
	grid.Logger().Debug("bounds expanded", "position", p, "from", before, "to", *b)
	return true
}

// OwnerBounds returns the region holding every cell that owns a corner or
// edge of a cell in b. Features are owned by the cell itself or by its
// UpRight, Right or DownRight neighbor.
func (b Bounds) OwnerBounds() Bounds {
	owners := b
	owners.Expand(b.topLeft.Add(UpRight))
	owners.Expand(b.bottomRight.Add(Right))
	owners.Expand(b.bottomRight.Add(Right).Add(DownLeft))
	return owners
}

// All yields every position inside the region, row by row, left to right.
func (b Bounds) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		left, right := b.topLeft.Halves(), b.bottomRight.Halves()
		for downs := b.topLeft.Downs; downs <= b.bottomRight.Downs; downs++ {
			x := left
			if lattice.Mod(x-downs, 2) != 0 {
				x++
			}
			for ; x <= right; x += 2 {
				if !yield(FromHalves(x, downs)) {
					return
				}
			}
		}
	}
}

// Count returns the number of positions inside.
func (b Bounds) Count() int {
	n := 0
	for range b.All() {
		n++
	}
	return n
}

// Index returns the dense slot of p, or false when p is outside.
func (b Bounds) Index(p Position) (int, bool) {
	if !b.Contains(p) {
		return 0, false
	}
	downs := p.VerticalDistance(b.topLeft)
	rights := p.HorizontalDistance(b.topLeft).Ceil()
	return downs*b.Columns() + rights, true
}

func (b Bounds) String() string {
	return fmt.Sprintf("Bounds(%v..%v, %s slots)", b.topLeft, b.bottomRight, humanize.Comma(int64(b.Capacity())))
}
