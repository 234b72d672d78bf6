package hex

import (
	"math"
	"testing"
)

func area(r int) []Position {
	var out []Position
	for d := -r; d <= r; d++ {
		for x := -r; x <= r; x++ {
			out = append(out, New(x, d))
		}
	}
	return out
}

func TestHalvesRoundTrip(t *testing.T) {
	for _, p := range area(5) {
		if got := FromHalves(p.Halves(), p.Downs); got != p {
			t.Errorf("FromHalves(%d, %d) = %v, want %v", p.Halves(), p.Downs, got, p)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	for _, a := range area(4) {
		for _, d := range Directions {
			if got := a.Add(d).Sub(d); got != a {
				t.Errorf("(%v + %v) - %v = %v", a, d, d, got)
			}
		}
		for _, b := range area(2) {
			if got := a.Sub(b).Add(b); got != a {
				t.Errorf("(%v - %v) + %v = %v", a, b, b, got)
			}
		}
	}
}

func TestDirectionsAreUnitSteps(t *testing.T) {
	for _, p := range []Position{Origin, New(2, 1), New(-3, -1), New(0, -2)} {
		px, py := p.Center()
		for _, n := range p.Neighbors() {
			nx, ny := n.Center()
			if d := math.Hypot(nx-px, ny-py); math.Abs(d-1) > 1e-9 {
				t.Errorf("%v -> %v spans %v, want 1", p, n, d)
			}
			if got := Distance(p, n); got != 1 {
				t.Errorf("Distance(%v, %v) = %d, want 1", p, n, got)
			}
		}
	}
}

func TestNegativeRows(t *testing.T) {
	if got := Origin.Add(UpLeft); got != New(0, -1) {
		t.Errorf("Origin + UpLeft = %v, want (0, -1)", got)
	}
	if got := New(0, -1).Add(DownRight); got != Origin {
		t.Errorf("(0, -1) + DownRight = %v, want origin", got)
	}
	if got := New(0, -1).Add(DownLeft); got != Left {
		t.Errorf("(0, -1) + DownLeft = %v, want %v", got, Left)
	}
	if got := New(0, -1).HorizontalDistance(Origin); got != Shifted(0) {
		t.Errorf("h((0, -1), origin) = %v, want -0.5", got)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	for _, a := range area(3) {
		for _, b := range area(3) {
			ab, ba := a.HorizontalDistance(b), b.HorizontalDistance(a)
			if ab != ba.Neg() || ab.Float64() != -ba.Float64() {
				t.Errorf("h(%v, %v) = %v, h(%v, %v) = %v", a, b, ab, b, a, ba)
			}
			if !ab.IsShifted() && ab.Ceil() != -ba.Ceil() {
				t.Errorf("ceil h(%v, %v) = %d, want %d", a, b, ab.Ceil(), -ba.Ceil())
			}
			if a.VerticalDistance(b) != -b.VerticalDistance(a) {
				t.Errorf("vertical distance between %v and %v is not symmetric", a, b)
			}
			if Distance(a, b) != Distance(b, a) {
				t.Errorf("Distance(%v, %v) is not symmetric", a, b)
			}
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name string
		got  Position
		want Position
	}{
		{"down right twice", DownRight.Scale(2), New(1, 2)},
		{"up left negated", UpLeft.Scale(-1), DownRight},
		{"down left thrice", DownLeft.Scale(3), New(-1, 3)},
		{"generic int8", Mul(Right, int8(3)), New(3, 0)},
		{"generic uint", Mul(UpRight, uint(2)), New(1, -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
	for _, d := range Directions {
		if got := d.Neg().Add(d); got != Origin {
			t.Errorf("-%v + %v = %v", d, d, got)
		}
	}
}

func TestComparisons(t *testing.T) {
	odd := New(0, 1)
	if !odd.IsLeftOf(Origin) || odd.IsRightOrEqual(Origin) {
		t.Errorf("%v should be left of origin", odd)
	}
	if !DownRight.IsRightOf(Origin) || !DownRight.IsBelow(Origin) {
		t.Errorf("%v should be right of and below origin", DownRight)
	}
	if !Origin.IsLeftOrEqual(Origin) || !Origin.IsAboveOrEqual(Origin) || Origin.IsAbove(Origin) {
		t.Error("origin comparisons with itself are wrong")
	}
	if !UpRight.IsAbove(Origin) || !Left.IsBelowOrEqual(Origin) {
		t.Error("vertical comparisons are wrong")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Origin, New(2, 0), 2},
		{Origin, New(0, 2), 2},
		{Origin, New(1, 2), 2},
		{Origin, New(2, 2), 3},
		{New(-1, 2), New(3, 2), 4},
		{New(0, -3), New(0, 3), 6},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
