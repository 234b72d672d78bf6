package corner

import (
	"errors"
	"fmt"
)

// ErrRingExhausted is returned when placements run past the end of a ring.
var ErrRingExhausted = errors.New("corner ring exhausted")

// PlaceAlong picks one side of the ring per gap, skipping gap/2 pairs
// before each. An odd gap toggles an offset; while it is on, the pick
// straddles two pairs, taking the High vertex of one and the Low vertex of
// the next.
func PlaceAlong(r *Ring, gaps []int) ([]Pair, error) {
	placed := make([]Pair, 0, len(gaps))
	offset := false
	for i, gap := range gaps {
		if gap < 0 {
			return placed, fmt.Errorf("placement %d: negative gap %d", i, gap)
		}
		if gap%2 == 1 {
			offset = !offset
		}
		first, ok := r.Nth(gap / 2)
		if !ok {
			return placed, fmt.Errorf("placement %d of %d: %w", i+1, len(gaps), ErrRingExhausted)
		}
		if !offset {
			placed = append(placed, first)
			continue
		}
		next, ok := r.Next()
		if !ok {
			return placed, fmt.Errorf("placement %d of %d: %w", i+1, len(gaps), ErrRingExhausted)
		}
		placed = append(placed, Pair{Low: next.Low, High: first.High})
	}
	return placed, nil
}
