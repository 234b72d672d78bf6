package hex

import (
	"slices"
	"testing"
)

func TestRingLen(t *testing.T) {
	tests := []struct {
		shortest, longest int
		want              int
	}{
		{3, 5, 12},
		{3, 6, 16},
		{2, 3, 6},
		{2, 4, 10},
		{1, 2, 4},
		{1, 1, 1},
		{4, 4, 4},
		{0, 3, 0},
		{3, 2, 0},
	}
	for _, tt := range tests {
		got := slices.Collect(NewRing(Origin, tt.shortest, tt.longest).All())
		if len(got) != tt.want {
			t.Errorf("ring(%d, %d) yielded %d, want %d", tt.shortest, tt.longest, len(got), tt.want)
		}
		if n := RingLen(tt.shortest, tt.longest); n != tt.want {
			t.Errorf("RingLen(%d, %d) = %d, want %d", tt.shortest, tt.longest, n, tt.want)
		}
	}
}

func TestRingBaseOutline(t *testing.T) {
	want := []Position{
		New(0, 0), New(1, 0), New(2, 0),
		New(3, 1), New(3, 2),
		New(3, 3), New(2, 4),
		New(1, 4), New(0, 4),
		New(0, 3), New(-1, 2),
		New(0, 1),
	}
	got := slices.Collect(NewRing(Origin, 3, 5).All())
	if !slices.Equal(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}
}

func TestRingIsClosedLoop(t *testing.T) {
	for _, ext := range [][2]int{{3, 5}, {3, 6}, {2, 3}, {1, 2}, {4, 9}} {
		anchor := New(-2, 3)
		got := slices.Collect(NewRing(anchor, ext[0], ext[1]).All())
		if got[0] != anchor {
			t.Errorf("ring%v starts at %v, want %v", ext, got[0], anchor)
		}
		seen := make(map[Position]bool)
		for i, p := range got {
			if seen[p] {
				t.Errorf("ring%v repeats %v", ext, p)
			}
			seen[p] = true
			next := got[(i+1)%len(got)]
			if Distance(p, next) != 1 {
				t.Errorf("ring%v jumps from %v to %v", ext, p, next)
			}
		}
	}
}

func TestRingLenCountsDown(t *testing.T) {
	r := NewRing(Origin, 3, 6)
	for want := 16; want > 0; want-- {
		if got := r.Len(); got != want {
			t.Fatalf("Len() = %d, want %d", got, want)
		}
		if _, ok := r.Next(); !ok {
			t.Fatalf("ring ended with %d left", want)
		}
	}
	if _, ok := r.Next(); ok || r.Len() != 0 {
		t.Error("ring should be exhausted")
	}
}
