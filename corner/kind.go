package corner

import "fmt"

// Kind says which sub-lattice a corner sits on. Low corners are the upper
// vertices of a cell's flat sides, High corners the lower ones. Center
// marks cell centers and only appears mid-arithmetic.
type Kind uint8

const (
	Low    Kind = iota // Top-left, top-right and bottom vertices of a cell
	Center             // Cell centers; never stored
	High               // Top, bottom-left and bottom-right vertices of a cell
)

func (k Kind) String() string {
	switch k {
	case Low:
		return "Low"
	case Center:
		return "Center"
	case High:
		return "High"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Stored reports whether positions of this kind can live in a table.
func (k Kind) Stored() bool { return k == Low || k == High }

// Kinds add like residues mod 3, Low being 0, Center 1 and High 2.
var (
	sumKind = [3][3]Kind{
		Low:    {Low: Low, Center: Center, High: High},
		Center: {Low: Center, Center: High, High: Low},
		High:   {Low: High, Center: Low, High: Center},
	}
	diffKind = [3][3]Kind{
		Low:    {Low: Low, Center: High, High: Center},
		Center: {Low: Center, Center: Low, High: High},
		High:   {Low: High, Center: Center, High: Low},
	}
)
