package cell_test

import (
	"testing"

	"github.com/katalvlaran/braille3d/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecode_RoundTrip verifies Decode and Rune are exact inverses over
// the whole 6-dot page.
func TestDecode_RoundTrip(t *testing.T) {
	for r := rune(0x2800); r <= 0x283F; r++ {
		c, err := cell.Decode(r)
		require.NoError(t, err, "rune %U must decode", r)
		assert.Equal(t, r, c.Rune(), "rune %U must round-trip", r)
	}
}

// TestDecode_Unsupported verifies rejection of 8-dot patterns and
// non-Braille runes.
func TestDecode_Unsupported(t *testing.T) {
	for _, r := range []rune{0x2840, 0x28FF, 'a', ' ', '⠀' - 1, '😀'} {
		_, err := cell.Decode(r)
		assert.ErrorIs(t, err, cell.ErrUnsupportedSymbol, "rune %U must be rejected", r)
	}
}

// TestCell_Dot checks the grid view against the standard dot numbering:
// dot 1 = (0,0), dot 2 = (1,0), dot 3 = (2,0), dot 4 = (0,1),
// dot 5 = (1,1), dot 6 = (2,1).
func TestCell_Dot(t *testing.T) {
	// ⠓ is dots 1,2,5 — the letter "h".
	h, err := cell.Decode('⠓')
	require.NoError(t, err)

	raised := [][2]int{{0, 0}, {1, 0}, {1, 1}}
	for row := 0; row < cell.Rows; row++ {
		for col := 0; col < cell.Cols; col++ {
			want := false
			for _, rc := range raised {
				if rc[0] == row && rc[1] == col {
					want = true
				}
			}
			assert.Equal(t, want, h.Dot(row, col), "slot (%d,%d)", row, col)
		}
	}
	assert.Equal(t, 3, h.Count())
}

// TestCell_DotOutOfRange verifies out-of-range slots read as flat.
func TestCell_DotOutOfRange(t *testing.T) {
	full := cell.Cell(0x3F) // all six dots
	assert.False(t, full.Dot(-1, 0))
	assert.False(t, full.Dot(3, 0))
	assert.False(t, full.Dot(0, 2))
	assert.Equal(t, 6, full.Count())
}

// TestCell_Blank pins the zero value as the Braille space.
func TestCell_Blank(t *testing.T) {
	assert.True(t, cell.Blank.IsBlank())
	assert.Equal(t, rune(0x2800), cell.Blank.Rune())
	assert.Equal(t, 0, cell.Blank.Count())

	one, err := cell.Decode('⠁')
	assert.NoError(t, err)
	assert.False(t, one.IsBlank())
}
