// Package cell defines the Braille cell value type and its Unicode decoding.
//
// What:
//
//   - Cell packs the six dot flags of one Braille cell into a uint8 bitmask,
//     following the standard dot numbering (1,2,3 down the left column,
//     4,5,6 down the right).
//   - Decode maps a Unicode Braille pattern rune (U+2800..U+283F) to a Cell;
//     Rune maps back. The two operations are exact inverses on that range.
//   - Dot(row, col) answers "is this slot raised?" in grid terms
//     (rows 0..2 top-down, columns 0..1 left-right).
//
// Why:
//
//   - A fixed-size bitmask makes an invalid dot matrix unrepresentable:
//     there is no slice to be the wrong length and nothing to validate at
//     use sites.
//   - The Unicode Braille block encodes dot k as bit k-1 of the codepoint
//     offset, so decoding is a range check plus a subtraction — no table.
//
// Errors:
//
//   - ErrUnsupportedSymbol: the rune is not a 6-dot Braille pattern.
//     Eight-dot patterns (U+2840..U+28FF) are recognized but rejected;
//     the top two Cell bits stay reserved for them.
//
// Complexity: all operations are O(1), allocation-free.
package cell
