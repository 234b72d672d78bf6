package hex

import "fmt"

// Layout describes a hex-shaped board by the length of its top row and
// of its widest row.
type Layout struct {
	Shortest int `json:"shortest"`
	Longest  int `json:"longest"`
}

// BaseLayout is the 19-cell board: rows of 3, 4, 5, 4, 3.
func BaseLayout() Layout {
	return Layout{Shortest: 3, Longest: 5}
}

// ExpansionLayout is the 30-cell board: rows of 3, 4, 5, 6, 5, 4, 3.
func ExpansionLayout() Layout {
	return Layout{Shortest: 3, Longest: 6}
}

// Validate checks that the layout describes a non-empty board.
func (l Layout) Validate() error {
	if l.Shortest < 1 {
		return fmt.Errorf("layout %dx%d: shortest row must be positive", l.Shortest, l.Longest)
	}
	if l.Longest < l.Shortest {
		return fmt.Errorf("layout %dx%d: longest row shorter than shortest", l.Shortest, l.Longest)
	}
	return nil
}

// Size returns the number of cells a spiral over the layout visits.
func (l Layout) Size() int {
	return SpiralLen(l.Shortest, l.Longest)
}

// Spiral returns a fresh walk over the board, anchored at the origin.
func (l Layout) Spiral() *Spiral {
	return NewSpiral(l.Shortest, l.Longest)
}

// Outline returns the outer ring of the board.
func (l Layout) Outline() *Ring {
	return NewRing(Origin, l.Shortest, l.Longest)
}

// Bounds returns the smallest region holding the whole board.
func (l Layout) Bounds() Bounds {
	return Enclose(l.Spiral().All())
}
