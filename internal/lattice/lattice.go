// Package lattice has the integer helpers shared by the coordinate
// packages. Go's / and % truncate toward zero, which breaks row parity and
// kind classification for negative coordinates, so everything here floors.
package lattice

// FloorDiv returns a/b rounded toward negative infinity. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Mod returns a mod b in [0, b). b must be positive.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Abs returns |a|.
func Abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
