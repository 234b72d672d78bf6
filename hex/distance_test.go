package hex

import (
	"math"
	"testing"
)

func TestHorizontalDistanceAlgebra(t *testing.T) {
	tests := []struct {
		name string
		got  HorizontalDistance
		want HorizontalDistance
	}{
		{"unshifted plus unshifted", Unshifted(2).Add(Unshifted(3)), Unshifted(5)},
		{"shifted plus shifted", Shifted(2).Add(Shifted(3)), Unshifted(4)},
		{"unshifted plus shifted", Unshifted(2).Add(Shifted(3)), Shifted(5)},
		{"shifted plus unshifted", Shifted(2).Add(Unshifted(3)), Shifted(5)},
		{"shifted minus unshifted", Shifted(1).Sub(Unshifted(1)), Shifted(0)},
		{"unshifted minus shifted", Unshifted(1).Sub(Shifted(1)), Shifted(1)},
		{"shifted minus shifted", Shifted(3).Sub(Shifted(1)), Unshifted(2)},
		{"neg shifted", Shifted(0).Neg(), Shifted(1)},
		{"abs negative shifted", Shifted(0).Abs(), Shifted(1)},
		{"abs positive shifted", Shifted(2).Abs(), Shifted(2)},
		{"abs negative unshifted", Unshifted(-4).Abs(), Unshifted(4)},
		{"shifted times even", Shifted(1).Mul(2), Unshifted(1)},
		{"shifted times odd", Shifted(1).Mul(3), Shifted(2)},
		{"negative shifted times odd", Shifted(0).Mul(3), Shifted(-1)},
		{"shifted times negative", Shifted(1).Mul(-1), Shifted(0)},
		{"plus keeps shift", Shifted(1).Plus(2), Shifted(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestHorizontalDistanceMatchesFloat(t *testing.T) {
	var values []HorizontalDistance
	for n := -5; n <= 5; n++ {
		values = append(values, Unshifted(n), Shifted(n))
	}
	for _, a := range values {
		if got, want := float64(a.Ceil()), math.Ceil(a.Float64()); got != want {
			t.Errorf("%v.Ceil() = %v, want %v", a, got, want)
		}
		if got, want := a.Abs().Float64(), math.Abs(a.Float64()); got != want {
			t.Errorf("%v.Abs() = %v, want %v", a, got, want)
		}
		for k := -3; k <= 3; k++ {
			if got, want := a.Mul(k).Float64(), a.Float64()*float64(k); got != want {
				t.Errorf("%v.Mul(%d) = %v, want %v", a, k, got, want)
			}
		}
		for _, b := range values {
			if got, want := a.Add(b).Float64(), a.Float64()+b.Float64(); got != want {
				t.Errorf("%v + %v = %v, want %v", a, b, got, want)
			}
			if got, want := a.Sub(b).Float64(), a.Float64()-b.Float64(); got != want {
				t.Errorf("%v - %v = %v, want %v", a, b, got, want)
			}
			if got := a.Add(b).Sub(b); got != a {
				t.Errorf("(%v + %v) - %v = %v", a, b, b, got)
			}
		}
	}
}

func TestHorizontalDistanceSign(t *testing.T) {
	tests := []struct {
		d    HorizontalDistance
		want int
	}{
		{Shifted(0), -1},
		{Shifted(1), 1},
		{Unshifted(0), 0},
		{Unshifted(-2), -1},
	}
	for _, tt := range tests {
		if got := tt.d.Sign(); got != tt.want {
			t.Errorf("%v.Sign() = %d, want %d", tt.d, got, tt.want)
		}
	}
	if Shifted(1).Compare(Unshifted(1)) != -1 {
		t.Error("0.5 should compare below 1")
	}
}

func TestHorizontalDistanceString(t *testing.T) {
	if got := Shifted(0).String(); got != "-0.5" {
		t.Errorf("Shifted(0).String() = %q, want -0.5", got)
	}
	if got := Unshifted(3).String(); got != "3" {
		t.Errorf("Unshifted(3).String() = %q, want 3", got)
	}
}
