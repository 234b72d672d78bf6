package corner

import (
	"errors"
	"testing"

	"github.com/talgya/hexgrid/grid"
	"github.com/talgya/hexgrid/hex"
	"github.com/talgya/hexgrid/internal/lattice"
)

func cells(r int) []hex.Position {
	var out []hex.Position
	for d := -r; d <= r; d++ {
		for x := -r; x <= r; x++ {
			out = append(out, hex.New(x, d))
		}
	}
	return out
}

var steps = []Position{StepUpLeft, StepUpRight, StepDown, StepDownLeft, StepDownRight, StepUp}

func TestNew(t *testing.T) {
	tests := []struct {
		r, d int
		want Kind
		ok   bool
	}{
		{0, 0, Low, true},
		{1, -1, High, true},
		{1, 3, Low, true},
		{-2, 2, High, true},
		{1, 1, 0, false},
		{1, 0, 0, false},
		{0, -2, 0, false},
	}
	for _, tt := range tests {
		p, err := New(tt.r, tt.d)
		if !tt.ok {
			if !errors.Is(err, grid.ErrInvalidPosition) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidPosition", tt.r, tt.d, err)
			}
			continue
		}
		if err != nil || p.Kind() != tt.want {
			t.Errorf("New(%d, %d) = %v, %v, want kind %v", tt.r, tt.d, p, err, tt.want)
		}
	}
}

func TestKindConversionIsExclusive(t *testing.T) {
	for _, h := range cells(3) {
		for _, c := range Of(h) {
			_, low := c.AsLow()
			_, high := c.AsHigh()
			if low == high {
				t.Errorf("%v: AsLow=%v AsHigh=%v, want exactly one", c, low, high)
			}
			if got := Kind(lattice.Mod(c.Downs(), 3)); got != c.Kind() {
				t.Errorf("%v carries kind %v, lattice says %v", c, c.Kind(), got)
			}
		}
	}
}

func TestOfAlternatesKinds(t *testing.T) {
	for i, c := range Of(hex.Origin) {
		want := High
		if i%2 == 1 {
			want = Low
		}
		if c.Kind() != want {
			t.Errorf("corner %d of origin is %v, want %v", i, c, want)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	for _, h := range cells(2) {
		for _, a := range Of(h) {
			for _, d := range steps {
				got := a.Add(d).Sub(d)
				if got != a {
					t.Errorf("(%v + %v) - %v = %v", a, d, d, got)
				}
			}
		}
	}
}

func TestKindTablesMatchLattice(t *testing.T) {
	probes := append(steps, TopLeft, TopRight, Bottom, Top, CenterOf(hex.Origin), CenterOf(hex.DownLeft))
	for _, a := range probes {
		for _, b := range probes {
			sum, diff := a.Add(b), a.Sub(b)
			if want := Kind(lattice.Mod(sum.Downs(), 3)); sum.Kind() != want {
				t.Errorf("%v + %v tagged %v, want %v", a, b, sum.Kind(), want)
			}
			if want := Kind(lattice.Mod(diff.Downs(), 3)); diff.Kind() != want {
				t.Errorf("%v - %v tagged %v, want %v", a, b, diff.Kind(), want)
			}
		}
	}
}

func TestClosingPairsPromoteToHex(t *testing.T) {
	if h, ok := TopLeft.Add(StepDownRight).Hex(); !ok || h != hex.Origin {
		t.Errorf("TopLeft + StepDownRight = %v, %v, want origin", h, ok)
	}
	if h, ok := Top.Add(StepUpRight).Hex(); !ok || h != hex.UpRight {
		t.Errorf("Top + StepUpRight = %v, %v, want %v", h, ok, hex.UpRight)
	}
	if _, ok := TopLeft.Add(Top).Hex(); ok {
		t.Error("Low + High should stay a vertex")
	}
	for _, h := range cells(3) {
		if got, ok := CenterOf(h).Hex(); !ok || got != h {
			t.Errorf("CenterOf(%v).Hex() = %v, %v", h, got, ok)
		}
	}
}

func TestOwnerAndTouching(t *testing.T) {
	for _, h := range cells(3) {
		owners := map[hex.Position]bool{
			h: true, h.Add(hex.UpRight): true, h.Add(hex.Right): true, h.Add(hex.DownRight): true,
		}
		for _, c := range Of(h) {
			if !owners[c.Owner()] {
				t.Errorf("%v of %v owned by %v", c, h, c.Owner())
			}
			touching := c.Touching()
			found := false
			for _, o := range touching {
				if o == h {
					found = true
				}
				inOf := false
				for _, back := range Of(o) {
					if back == c {
						inOf = true
					}
				}
				if !inOf {
					t.Errorf("%v touches %v but is not one of its corners", c, o)
				}
			}
			if !found {
				t.Errorf("%v of %v does not touch it", c, h)
			}
		}
	}
	if TopLeft.Owner() != hex.Origin || BottomLeft.Owner() != hex.Origin {
		t.Error("the origin should own its top-left and bottom-left corners")
	}
}

func TestNeighborsFollowOutline(t *testing.T) {
	for _, h := range cells(2) {
		around := Of(h)
		for i, c := range around {
			next := around[(i+1)%len(around)]
			adjacent := false
			for _, n := range c.Neighbors() {
				if n == next {
					adjacent = true
				}
			}
			if !adjacent {
				t.Errorf("%v and %v around %v are not neighbors", c, next, h)
			}
		}
	}
}

func TestScale(t *testing.T) {
	if got := TopRight.Scale(2); got != at(4, 0) || got.Kind() != Low {
		t.Errorf("TopRight.Scale(2) = %v", got)
	}
	if got := Mul(Bottom, int64(-1)); got != at(-1, -3) {
		t.Errorf("Mul(Bottom, -1) = %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("scaling a High offset should panic")
		}
	}()
	StepDown.Scale(2)
}

func TestDistances(t *testing.T) {
	if got := TopRight.HorizontalDistance(TopLeft); got != hex.Unshifted(1) {
		t.Errorf("width of a cell = %v, want 1", got)
	}
	if got := Top.HorizontalDistance(TopLeft); got != hex.Shifted(1) {
		t.Errorf("top apex offset = %v, want 0.5", got)
	}
	if got := Bottom.VerticalDistance(Top); got != 4 {
		t.Errorf("cell height = %d thirds, want 4", got)
	}
}
