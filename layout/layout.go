package layout

import (
	"fmt"

	"github.com/katalvlaran/braille3d/cell"
	"github.com/katalvlaran/braille3d/dims"
)

// DotSlot is one potential dot position on the plate.
//
// Fields:
//   - Cell   — global cell index in reading order, starting at 0.
//   - Row    — 0..2, top-down within the cell.
//   - Col    — 0..1, left-right within the cell.
//   - Raised — whether this slot carries a dot.
//   - X, Y   — absolute center position in millimeters; the plate's
//     lower-left corner is the origin, Y grows upward.
type DotSlot struct {
	Cell   int
	Row    int
	Col    int
	Raised bool
	X, Y   float64
}

// Plan is the full placement of a text: every dot slot plus the
// substrate footprint that contains them.
type Plan struct {
	Slots  []DotSlot
	Width  float64
	Height float64
	Cells  int
	Lines  int
	Raised int
}

// Arrange computes the absolute position of every dot slot of the given
// cell lines under the given dimension standard.
//
// Placement: cell i of line j occupies a CellPitch × LinePitch box; the
// 2×3 dot grid is centered in that box exactly as the upstream
// generator does it. Line 0 is the top line. Every coordinate is an
// exact multiple-of-pitch expression, so Arrange is deterministic to
// the bit.
//
// Empty input (no lines, or only empty lines) yields a Plan with no
// slots and the extent clamped to a single cell on a single line.
func Arrange(lines [][]cell.Cell, std dims.Standard) (Plan, error) {
	if err := std.Validate(); err != nil {
		return Plan{}, fmt.Errorf("layout: %w", err)
	}

	// Dot grid centering offsets within a cell box, from the box's
	// lower-left corner. The top dot row sits at yOffset.
	xOffset := 0.5 * (std.CellPitch - std.DotPitchX*(cell.Cols-1))
	yOffset := std.LinePitch - 0.5*(std.LinePitch-std.DotPitchY*(cell.Rows-1))

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	lineCount := len(lines)

	// Clamp the footprint so an empty text still yields a plate.
	extentCells, extentLines := maxLen, lineCount
	if extentCells == 0 {
		extentCells = 1
	}
	if extentLines == 0 {
		extentLines = 1
	}

	p := Plan{
		Width:  2*std.Margin + float64(extentCells)*std.CellPitch,
		Height: 2*std.Margin + float64(extentLines)*std.LinePitch,
		Lines:  lineCount,
	}

	cellIndex := 0
	for j, line := range lines {
		// Line 0 renders at the top of the plate.
		lineBase := std.Margin + float64(lineCount-1-j)*std.LinePitch
		for i, c := range line {
			cellBase := std.Margin + float64(i)*std.CellPitch
			for col := 0; col < cell.Cols; col++ {
				for row := 0; row < cell.Rows; row++ {
					raised := c.Dot(row, col)
					p.Slots = append(p.Slots, DotSlot{
						Cell:   cellIndex,
						Row:    row,
						Col:    col,
						Raised: raised,
						X:      cellBase + xOffset + float64(col)*std.DotPitchX,
						Y:      lineBase + yOffset - float64(row)*std.DotPitchY,
					})
					if raised {
						p.Raised++
					}
				}
			}
			cellIndex++
		}
	}
	p.Cells = cellIndex

	return p, nil
}
