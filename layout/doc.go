// Package layout places Braille cells on the plate: it turns an ordered
// cell sequence into absolute 2D dot coordinates plus a bounding extent.
//
// What:
//
//   - Arrange walks lines of cells in reading order and emits one
//     DotSlot per dot position (raised or not), each carrying its
//     absolute (x, y) in millimeters.
//   - The extent is the substrate footprint: the longest line's cells
//     plus the margin on all four sides. Empty input clamps to a
//     one-cell, one-line plate rather than a degenerate sliver.
//
// Why:
//
//   - Every coordinate is computed as index × pitch plus constant
//     offsets — never as a running sum — so output is bit-identical
//     across runs and free of floating-point drift.
//   - Slots are ordered like Braille numbers the dots: down the left
//     column, then down the right. X is therefore non-decreasing within
//     a line, and Y non-increasing across lines (line 1 sits at the top
//     of the plate, which is +Y).
//
// Errors:
//
//   - dims.ErrBadStandard (passed through): the dimension table failed
//     validation.
//
// Complexity: O(cells) time and memory; pure function of its inputs.
package layout
