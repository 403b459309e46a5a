package dims

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadStandard indicates an invalid or inconsistent dimension table.
var ErrBadStandard = errors.New("dims: invalid dimension standard")

// Standard is a named set of physical Braille dimensions, in millimeters.
//
// Fields:
//   - DotDiameter — dot diameter at its base.
//   - DotHeight   — dot relief height above the substrate.
//   - DotPitchX   — horizontal center-to-center distance of dots in a cell.
//   - DotPitchY   — vertical center-to-center distance of dots in a cell.
//   - CellPitch   — distance between corresponding dots of adjacent cells.
//   - LinePitch   — distance between corresponding dots of adjacent lines.
//   - Margin      — flat border around the dotted area on all four sides.
//   - Thickness   — substrate slab thickness.
type Standard struct {
	Name        string  `yaml:"name"`
	DotDiameter float64 `yaml:"dot_diameter_mm"`
	DotHeight   float64 `yaml:"dot_height_mm"`
	DotPitchX   float64 `yaml:"dot_pitch_x_mm"`
	DotPitchY   float64 `yaml:"dot_pitch_y_mm"`
	CellPitch   float64 `yaml:"cell_pitch_mm"`
	LinePitch   float64 `yaml:"line_pitch_mm"`
	Margin      float64 `yaml:"margin_mm"`
	Thickness   float64 `yaml:"thickness_mm"`
}

// Spec800 returns the default dimension table: the National Library
// Service "Specification 800" sizing for embossed Braille.
// Margin and Thickness are not part of the published specification; they
// are this package's substrate defaults.
func Spec800() Standard {
	return Standard{
		Name:        "spec800",
		DotDiameter: 1.44,
		DotHeight:   0.48,
		DotPitchX:   2.340,
		DotPitchY:   2.340,
		CellPitch:   6.2,
		LinePitch:   10.0,
		Margin:      3.0,
		Thickness:   2.0,
	}
}

// Marburg returns the Marburg Medium dimension table, the sizing most
// European embossers use.
func Marburg() Standard {
	return Standard{
		Name:        "marburg",
		DotDiameter: 1.6,
		DotHeight:   0.5,
		DotPitchX:   2.5,
		DotPitchY:   2.5,
		CellPitch:   6.0,
		LinePitch:   10.0,
		Margin:      3.0,
		Thickness:   2.0,
	}
}

// Load reads a Standard from a YAML file and validates it.
func Load(path string) (Standard, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Standard{}, fmt.Errorf("dims: read %s: %w", path, err)
	}

	var s Standard
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return Standard{}, fmt.Errorf("dims: parse %s: %w", path, err)
	}
	if err = s.Validate(); err != nil {
		return Standard{}, fmt.Errorf("dims: %s: %w", path, err)
	}

	return s, nil
}

// Validate checks that every dimension is positive and that dots fit
// inside their pitch. Returns nil or an error wrapping ErrBadStandard.
func (s Standard) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"dot_diameter_mm", s.DotDiameter},
		{"dot_height_mm", s.DotHeight},
		{"dot_pitch_x_mm", s.DotPitchX},
		{"dot_pitch_y_mm", s.DotPitchY},
		{"cell_pitch_mm", s.CellPitch},
		{"line_pitch_mm", s.LinePitch},
		{"margin_mm", s.Margin},
		{"thickness_mm", s.Thickness},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrBadStandard, f.name, f.value)
		}
	}
	if s.DotDiameter > s.DotPitchX || s.DotDiameter > s.DotPitchY {
		return fmt.Errorf("%w: dot diameter %v exceeds dot pitch (%v, %v)",
			ErrBadStandard, s.DotDiameter, s.DotPitchX, s.DotPitchY)
	}

	return nil
}
