package dims_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/braille3d/dims"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpec800_Values pins the published Specification 800 constants.
func TestSpec800_Values(t *testing.T) {
	s := dims.Spec800()
	assert.Equal(t, "spec800", s.Name)
	assert.Equal(t, 1.44, s.DotDiameter)
	assert.Equal(t, 0.48, s.DotHeight)
	assert.Equal(t, 2.340, s.DotPitchX)
	assert.Equal(t, 2.340, s.DotPitchY)
	assert.Equal(t, 6.2, s.CellPitch)
	assert.Equal(t, 10.0, s.LinePitch)
	assert.NoError(t, s.Validate())
}

// TestMarburg_Valid verifies the alternate table passes its own checks.
func TestMarburg_Valid(t *testing.T) {
	s := dims.Marburg()
	assert.Equal(t, "marburg", s.Name)
	assert.NoError(t, s.Validate())
}

// TestValidate_Rejects covers non-positive and inconsistent dimensions.
func TestValidate_Rejects(t *testing.T) {
	zero := dims.Spec800()
	zero.DotHeight = 0
	assert.ErrorIs(t, zero.Validate(), dims.ErrBadStandard, "zero height must fail")

	negative := dims.Spec800()
	negative.Margin = -1
	assert.ErrorIs(t, negative.Validate(), dims.ErrBadStandard, "negative margin must fail")

	crowded := dims.Spec800()
	crowded.DotDiameter = 3.0 // wider than the 2.34 dot pitch
	assert.ErrorIs(t, crowded.Validate(), dims.ErrBadStandard, "dots wider than pitch must fail")
}

// TestLoad_YAML round-trips a custom standard through a YAML file.
func TestLoad_YAML(t *testing.T) {
	const doc = `name: jumbo
dot_diameter_mm: 1.8
dot_height_mm: 0.6
dot_pitch_x_mm: 2.8
dot_pitch_y_mm: 2.8
cell_pitch_mm: 7.0
line_pitch_mm: 11.0
margin_mm: 4.0
thickness_mm: 2.5
`
	path := filepath.Join(t.TempDir(), "jumbo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := dims.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jumbo", s.Name)
	assert.Equal(t, 7.0, s.CellPitch)
	assert.Equal(t, 0.6, s.DotHeight)
}

// TestLoad_Invalid verifies both unreadable files and bad tables fail.
func TestLoad_Invalid(t *testing.T) {
	_, err := dims.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "missing file must fail")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: bad\ndot_height_mm: -1\n"), 0o644))
	_, err = dims.Load(path)
	assert.ErrorIs(t, err, dims.ErrBadStandard, "invalid table must fail validation")
}
