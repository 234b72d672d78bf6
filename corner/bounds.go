package corner

import (
	"fmt"
	"iter"

	"github.com/talgya/hexgrid/hex"
	"github.com/talgya/hexgrid/internal/lattice"
)

// Bounds is the set of vertices belonging to at least one cell of a board
// region. It also tracks the wider region of cells that own them.
type Bounds struct {
	board  hex.Bounds
	owners hex.Bounds
}

// NewBounds derives vertex bounds from a board region.
func NewBounds(board hex.Bounds) Bounds {
	return Bounds{board: board, owners: board.OwnerBounds()}
}

// Board returns the cell region the vertices belong to.
func (b Bounds) Board() hex.Bounds { return b.board }

// Owners returns the cell region covering every owner cell.
func (b Bounds) Owners() hex.Bounds { return b.owners }

// Contains reports whether p is a vertex of some cell on the board. The
// owner region alone is not enough: it also covers cells whose vertices
// touch nothing on the board.
func (b Bounds) Contains(p Position) bool {
	if !p.kind.Stored() {
		return false
	}
	for _, h := range p.Touching() {
		if b.board.Contains(h) {
			if lattice.Checks && !b.owners.Contains(p.Owner()) {
				panic(fmt.Sprintf("corner: owner of %v outside %v", p, b.owners))
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
	return 2*i + p.slot(), true
}

// Capacity is the number of index slots the vertices need.
func (b Bounds) Capacity() int { return 2 * b.owners.Capacity() }

// All yields every vertex inside, by owner row then Low before High.
func (b Bounds) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for o := range b.owners.All() {
			for _, c := range [2]Position{TopLeft.Translate(o), BottomLeft.Translate(o)} {
				if b.Contains(c) && !yield(c) {
					return
				}
			}
		}
	}
}

// Count returns the number of vertices inside.
func (b Bounds) Count() int {
	n := 0
	for range b.All() {
		n++
	}
	return n
}

func (b Bounds) String() string {
	return fmt.Sprintf("CornerBounds(board %v..%v)", b.board.TopLeft(), b.board.BottomRight())
}
