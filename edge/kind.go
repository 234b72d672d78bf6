package edge

import "fmt"

// Kind says which orientation an edge has. Even edges slope up to the right
// on a cell's upper left and lower right, Odd edges slope down to the right,
// Positive edges are vertical. Negative marks cell centers and only appears
// mid-arithmetic.
type Kind uint8

// Kinds combine like two bits under XOR: bit 0 is the rights parity and
// bit 1 is (rights+downs)/2 mod 2.
const (
	Even     Kind = 0b00 // Top-left and bottom-right sides
	Positive Kind = 0b01 // Left and right sides
	Odd      Kind = 0b10 // Top-right and bottom-left sides
	Negative Kind = 0b11 // Cell centers; never stored
)

func (k Kind) String() string {
	switch k {
	case Even:
		return "Even"
	case Odd:
		return "Odd"
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Stored reports whether positions of this kind can live in a table.
func (k Kind) Stored() bool { return k < Negative }

var sumKind = [4][4]Kind{
	Even:     {Even: Even, Positive: Positive, Odd: Odd, Negative: Negative},
	Positive: {Even: Positive, Positive: Even, Odd: Negative, Negative: Odd},
	Odd:      {Even: Odd, Positive: Negative, Odd: Even, Negative: Positive},
	Negative: {Even: Negative, Positive: Odd, Odd: Positive, Negative: Even},
}
