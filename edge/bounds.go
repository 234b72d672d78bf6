package edge

import (
	"fmt"
	"iter"

	"github.com/talgya/hexgrid/hex"
	"github.com/talgya/hexgrid/internal/lattice"
)

// owned lists, in slot order, the sides a cell stores.
var owned = [3]Position{TopLeft, Left, BottomLeft}

// Bounds is the set of sides belonging to at least one cell of a board
// region, together with the region of cells that own them.
type Bounds struct {
	board  hex.Bounds
	owners hex.Bounds
}

// NewBounds derives side bounds from a board region.
func NewBounds(board hex.Bounds) Bounds {
	return Bounds{board: board, owners: board.OwnerBounds()}
}

func (b Bounds) Board() hex.Bounds  { return b.board }
func (b Bounds) Owners() hex.Bounds { return b.owners }

// Contains reports whether p is a side of some cell on the board.
func (b Bounds) Contains(p Position) bool {
	if !p.kind.Stored() {
		return false
	}
	for _, h := range p.Touching() {
		if b.board.Contains(h) {
			if lattice.Checks && !b.owners.Contains(p.Owner()) {
				panic(fmt.Sprintf("edge: owner of %v outside %v", p, b.owners))
			}
			return true
		}
	}
	return false
}

// Index returns the dense slot of p, or false when p is outside.
func (b Bounds) Index(p Position) (int, bool) {
	if !b.Contains(p) {
		return 0, false
	}
	i, ok := b.owners.Index(p.Owner())
	if !ok {
		return 0, false
	}
	return 3*i + p.slot(), true
}

// Capacity is the number of index slots the sides need.
func (b Bounds) Capacity() int { return 3 * b.owners.Capacity() }

// All yields every side inside, by owner row then slot.
func (b Bounds) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for o := range b.owners.All() {
			for _, e := range owned {
				e = e.Translate(o)
				if b.Contains(e) && !yield(e) {
					return
				}
			}
		}
	}
}

// Count returns the number of sides inside.
func (b Bounds) Count() int {
	n := 0
	for range b.All() {
		n++
	}
	return n
}

func (b Bounds) String() string {
	return fmt.Sprintf("EdgeBounds(board %v..%v)", b.board.TopLeft(), b.board.BottomRight())
}
