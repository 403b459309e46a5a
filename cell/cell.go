package cell

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrUnsupportedSymbol indicates a rune outside the 6-dot Braille pattern range.
var ErrUnsupportedSymbol = errors.New("cell: symbol is not a 6-dot Braille pattern")

// Unicode Braille pattern block boundaries.
const (
	patternBase  = 0x2800 // U+2800 BRAILLE PATTERN BLANK
	sixDotLast   = 0x283F // last pattern using dots 1..6 only
	eightDotLast = 0x28FF // last pattern of the full 8-dot block
)

// Cell is one Braille cell as a packed dot mask: bit k-1 set means dot k
// is raised. Dots 1..3 run down the left column, dots 4..6 down the right.
// Bits 7 and 8 are reserved for 8-dot cells and never set by Decode.
//
// The zero value is Blank (no raised dots).
type Cell uint8

// Blank is the empty cell — a Braille space.
const Blank Cell = 0

// Rows and Cols give the fixed 2×3 grid shape of a 6-dot cell.
const (
	Rows = 3
	Cols = 2
)

// Decode converts a Unicode Braille pattern rune into a Cell.
//
// Only the 6-dot page (U+2800..U+283F) is accepted. Runes from the 8-dot
// remainder of the block, and any rune outside the block, return
// ErrUnsupportedSymbol wrapped with the offending rune.
func Decode(r rune) (Cell, error) {
	switch {
	case r >= patternBase && r <= sixDotLast:
		return Cell(r - patternBase), nil
	case r > sixDotLast && r <= eightDotLast:
		return Blank, fmt.Errorf("cell: 8-dot pattern %q (%U): %w", r, r, ErrUnsupportedSymbol)
	default:
		return Blank, fmt.Errorf("cell: rune %q (%U): %w", r, r, ErrUnsupportedSymbol)
	}
}

// Rune re-encodes the cell as its Unicode Braille pattern.
// For every valid Cell c, Decode(c.Rune()) == c.
func (c Cell) Rune() rune {
	return rune(patternBase + int32(c))
}

// Dot reports whether the slot at (row, col) is raised, with rows 0..2
// top-down and columns 0..1 left-right. Out-of-range coordinates are
// simply not raised.
func (c Cell) Dot(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false
	}
	return c&(1<<(col*Rows+row)) != 0
}

// Count returns the number of raised dots.
func (c Cell) Count() int {
	return bits.OnesCount8(uint8(c))
}

// IsBlank reports whether no dot is raised.
func (c Cell) IsBlank() bool {
	return c == Blank
}

// String renders the cell as its Unicode pattern, handy in logs and tests.
func (c Cell) String() string {
	return string(c.Rune())
}
