package edge

import (
	"fmt"
	"iter"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hexgrid/grid"
	"github.com/talgya/hexgrid/hex"
)

type slot[T any] struct {
	value T
	ok    bool
}

// cell holds the top-left, left and bottom-left side of an owner cell.
type cell[T any] [3]slot[T]

// Table stores at most one value per side of a board region.
type Table[T any] struct {
	bounds Bounds
	cells  *hex.Table[cell[T]]
	count  int
}

// NewTable allocates an empty table over b.
func NewTable[T any](b Bounds) *Table[T] {
	t := &Table[T]{
		bounds: b,
		cells:  hex.NewTable[cell[T]](b.owners),
	}
	for o := range b.owners.All() {
		if err := t.cells.Set(o, cell[T]{}); err != nil {
			panic(fmt.Sprintf("edge: owner %v rejected by its own bounds: %v", o, err))
		}
	}
	return t
}

// Bounds returns the side region the table covers.
func (t *Table[T]) Bounds() Bounds { return t.bounds }

func (t *Table[T]) at(p Position) *slot[T] {
	if !t.bounds.Contains(p) {
		return nil
	}
	c := t.cells.Ref(p.Owner())
	if c == nil {
		panic(fmt.Sprintf("edge: no storage for owner of %v", p))
	}
	return &c[p.slot()]
}

// Get returns the value at p, reporting false for misses of any kind.
func (t *Table[T]) Get(p Position) (T, bool) {
	s := t.at(p)
	if s == nil || !s.ok {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Ref returns a pointer to the stored value at p, or nil.
func (t *Table[T]) Ref(p Position) *T {
	s := t.at(p)
	if s == nil || !s.ok {
		return nil
	}
	return &s.value
}

// Lookup is Get with the reason for a miss.
func (t *Table[T]) Lookup(p Position) (T, error) {
	var zero T
	s := t.at(p)
	if s == nil {
		return zero, grid.NewPositionError(grid.Edge, "lookup", p, grid.ErrOutOfBounds)
	}
	if !s.ok {
		return zero, grid.NewPositionError(grid.Edge, "lookup", p, grid.ErrNoData)
	}
	return s.value, nil
}

// MustGet returns the value at p and panics when there is none.
func (t *Table[T]) MustGet(p Position) T {
	v, err := t.Lookup(p)
	if err != nil {
		panic(err)
	}
	return v
}

// Set stores v at p, rejecting sides outside the region.
func (t *Table[T]) Set(p Position, v T) error {
	s := t.at(p)
	if s == nil {
		grid.Logger().Debug("edge table write rejected", "position", p, "bounds", t.bounds)
		return grid.NewPositionError(grid.Edge, "set", p, grid.ErrOutOfBounds)
	}
	if !s.ok {
		t.count++
	}
	s.value, s.ok = v, true
	return nil
}

// Delete clears p and reports whether a value was there.
func (t *Table[T]) Delete(p Position) bool {
	s := t.at(p)
	if s == nil || !s.ok {
		return false
	}
	var zero T
	s.value, s.ok = zero, false
	t.count--
	return true
}

// Len returns the number of stored values.
func (t *Table[T]) Len() int { return t.count }

// All yields the stored values in Bounds.All order.
func (t *Table[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for o, c := range t.cells.All() {
			for i, e := range owned {
				if !c[i].ok {
					continue
				}
				if !yield(e.Translate(o), c[i].value) {
					return
				}
			}
		}
	}
}

func (t *Table[T]) String() string {
	return fmt.Sprintf("EdgeTable(%s of %s filled)",
		humanize.Comma(int64(t.count)), humanize.Comma(int64(t.bounds.Count())))
}
