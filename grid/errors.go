// Package grid holds what the hex, corner and edge packages share:
// the coordinate family tags, lookup errors and the library logger.
package grid

import (
	"errors"
	"fmt"
)

// Family names one of the three interlocking coordinate spaces.
type Family uint8

const (
	Hex    Family = iota // Cell centers
	Corner               // Vertices where three cells meet
	Edge                 // Sides shared by two cells
)

// String returns the lower-case family name.
func (f Family) String() string {
	switch f {
	case Hex:
		return "hex"
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	default:
		return fmt.Sprintf("family(%d)", uint8(f))
	}
}

var (
	// ErrOutOfBounds is returned when a position lies outside a region.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrNoData is returned when a slot inside a region holds nothing.
	ErrNoData = errors.New("no data at position")
	// ErrInvalidPosition is returned when a raw pair is not on the lattice.
	ErrInvalidPosition = errors.New("invalid position")
)

// PositionError records a failed operation on a single position.
type PositionError struct {
	Family   Family
	Op       string
	Position fmt.Stringer
	Err      error
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s %s %v: %v", e.Family, e.Op, e.Position, e.Err)
}

func (e *PositionError) Unwrap() error { return e.Err }

// NewPositionError is shorthand for building a *PositionError.
func NewPositionError(f Family, op string, p fmt.Stringer, err error) *PositionError {
	return &PositionError{Family: f, Op: op, Position: p, Err: err}
}
