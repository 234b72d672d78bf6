package hex

import (
	"strconv"

	"github.com/talgya/hexgrid/internal/lattice"
)

// HorizontalDistance is a horizontal offset measured in hex widths.
// Odd rows sit half a cell left, so the offset between two positions can
// land on a half step. Shifted(n) stands for n - 0.5; Unshifted(n) for n.
// All arithmetic stays in integers until Ceil or Float64 collapses it.
type HorizontalDistance struct {
	n       int
	shifted bool
}

// Unshifted returns the whole distance n.
func Unshifted(n int) HorizontalDistance { return HorizontalDistance{n: n} }

// Shifted returns the distance n - 0.5.
func Shifted(n int) HorizontalDistance { return HorizontalDistance{n: n, shifted: true} }

// HalfWidths returns the distance spanning n half widths. Corner and edge
// lattices count columns this way.
func HalfWidths(n int) HorizontalDistance { return fromHalves(n) }

// fromHalves builds a distance from a count of half widths.
func fromHalves(h int) HorizontalDistance {
	return HorizontalDistance{n: lattice.FloorDiv(h+1, 2), shifted: h&1 == 1}
}

// halves returns the distance counted in half widths.
func (d HorizontalDistance) halves() int {
	if d.shifted {
		return 2*d.n - 1
	}
	return 2 * d.n
}

// IsShifted reports whether the distance carries the half-step correction.
func (d HorizontalDistance) IsShifted() bool { return d.shifted }

// Add sums two distances. Two shifted values cancel into an unshifted one.
func (d HorizontalDistance) Add(o HorizontalDistance) HorizontalDistance {
	return fromHalves(d.halves() + o.halves())
}

// Sub returns d - o.
func (d HorizontalDistance) Sub(o HorizontalDistance) HorizontalDistance {
	return fromHalves(d.halves() - o.halves())
}

// Plus adds whole widths without touching the shift.
func (d HorizontalDistance) Plus(k int) HorizontalDistance {
	d.n += k
	return d
}

// Mul scales the distance by k. A shifted value stays shifted only for odd k.
func (d HorizontalDistance) Mul(k int) HorizontalDistance {
	return fromHalves(d.halves() * k)
}

// Neg returns -d.
func (d HorizontalDistance) Neg() HorizontalDistance {
	return fromHalves(-d.halves())
}

// Abs returns |d|.
func (d HorizontalDistance) Abs() HorizontalDistance {
	if d.halves() < 0 {
		return d.Neg()
	}
	return d
}

// Sign returns -1, 0 or +1.
func (d HorizontalDistance) Sign() int {
	switch h := d.halves(); {
	case h < 0:
		return -1
	case h > 0:
		return 1
	default:
		return 0
	}
}

// Ceil rounds up to whole widths.
func (d HorizontalDistance) Ceil() int { return d.n }

// Float64 returns the exact value.
func (d HorizontalDistance) Float64() float64 { return float64(d.halves()) / 2 }

// Compare returns -1, 0 or +1 as d is less than, equal to or greater than o.
func (d HorizontalDistance) Compare(o HorizontalDistance) int {
	return d.Sub(o).Sign()
}

func (d HorizontalDistance) String() string {
	return strconv.FormatFloat(d.Float64(), 'f', -1, 64)
}
