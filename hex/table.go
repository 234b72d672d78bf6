package hex

import (
	"fmt"
	"iter"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hexgrid/grid"
)

type slot[T any] struct {
	value T
	ok    bool
}

// Table stores at most one value per cell of a fixed region in a dense
// slice. The region is copied in at construction and never changes.
type Table[T any] struct {
	bounds Bounds
	slots  []slot[T]
	count  int
}

// NewTable allocates an empty table over b.
func NewTable[T any](b Bounds) *Table[T] {
	t := &Table[T]{
		bounds: b,
		slots:  make([]slot[T], b.Capacity()),
	}
	grid.Logger().Debug("hex table allocated", "bounds", b, "slots", len(t.slots))
	return t
}

// Bounds returns the region the table covers.
func (t *Table[T]) Bounds() Bounds { return t.bounds }

// Contains reports whether p is inside the table's region.
func (t *Table[T]) Contains(p Position) bool { return t.bounds.Contains(p) }

func (t *Table[T]) at(p Position) *slot[T] {
	i, ok := t.bounds.Index(p)
	if !ok {
		return nil
	}
	if i < 0 || i >= len(t.slots) {
		panic(fmt.Sprintf("hex: index %d of %v outside %d slots", i, p, len(t.slots)))
	}
	return &t.slots[i]
}

// Get returns the value at p. It reports false when p is outside the region
// or nothing has been stored there.
func (t *Table[T]) Get(p Position) (T, bool) {
	s := t.at(p)
	if s == nil || !s.ok {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Ref returns a pointer to the stored value at p, or nil. The pointer stays
// valid for the life of the table.
func (t *Table[T]) Ref(p Position) *T {
	s := t.at(p)
	if s == nil || !s.ok {
		return nil
	}
	return &s.value
}

// Lookup is Get with the reason for a miss: grid.ErrOutOfBounds or
// grid.ErrNoData, wrapped in a *grid.PositionError.
func (t *Table[T]) Lookup(p Position) (T, error) {
	var zero T
	s := t.at(p)
	if s == nil {
		return zero, grid.NewPositionError(grid.Hex, "lookup", p, grid.ErrOutOfBounds)
	}
	if !s.ok {
		return zero, grid.NewPositionError(grid.Hex, "lookup", p, grid.ErrNoData)
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

// Set stores v at p. Positions outside the region are rejected and leave
// the table untouched.
func (t *Table[T]) Set(p Position, v T) error {
	s := t.at(p)
	if s == nil {
		grid.Logger().Debug("hex table write rejected", "position", p, "bounds", t.bounds)
		return grid.NewPositionError(grid.Hex, "set", p, grid.ErrOutOfBounds)
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

// All yields the stored values row by row.
func (t *Table[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for p := range t.bounds.All() {
			s := t.at(p)
			if !s.ok {
				continue
			}
			if !yield(p, s.value) {
				return
			}
		}
	}
}

// Positions yields the positions holding a value.
func (t *Table[T]) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for p := range t.All() {
			if !yield(p) {
				return
			}
		}
	}
}

func (t *Table[T]) String() string {
	return fmt.Sprintf("Table(%v..%v, %s of %s filled)",
		t.bounds.topLeft, t.bounds.bottomRight,
		humanize.Comma(int64(t.count)), humanize.Comma(int64(len(t.slots))))
}
