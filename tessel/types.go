package tessel

import (
	"errors"
	"fmt"
)

var (
	// ErrBadResolution indicates tessellation options that cannot
	// produce a valid surface.
	ErrBadResolution = errors.New("tessel: invalid tessellation resolution")

	// ErrBadProfile indicates an unknown Profile value.
	ErrBadProfile = errors.New("tessel: unknown dot profile")
)

// Profile selects the dot bump shape.
//
//   - Cone — apex + base ring, Segments lateral triangles. Open at the
//     base (it rests on the substrate), minimal triangle count.
//   - Dome — tapered cylinder with a closed base disc and a rounded
//     cap; higher fidelity at a higher face count.
type Profile int

const (
	// Cone is the default bump: one apex over a base ring.
	Cone Profile = iota

	// Dome is the tapered-cylinder bump of the upstream generator.
	Dome
)

// Options configures dot tessellation.
//
// Fields:
//   - Segments   — vertices per ring (radial resolution), minimum 3.
//   - Profile    — Cone or Dome.
//   - TaperRings — Dome only: rings in the rounded cap region.
//   - Taper      — Dome only: fraction of the height at which the
//     straight wall ends and the cap begins; must lie in (0, 1).
type Options struct {
	Segments   int
	Profile    Profile
	TaperRings int
	Taper      float64
}

// DefaultOptions returns the default tessellation: a 10-segment cone,
// with the dome parameters preset to the upstream generator's values
// (5 taper rings, taper at 0.75 of the height) for callers that switch
// the profile.
func DefaultOptions() Options {
	return Options{
		Segments:   10,
		Profile:    Cone,
		TaperRings: 5,
		Taper:      0.75,
	}
}

// validateOptions rejects resolutions that cannot form a surface.
func validateOptions(o Options) error {
	if o.Profile != Cone && o.Profile != Dome {
		return fmt.Errorf("%w: %d", ErrBadProfile, o.Profile)
	}
	if o.Segments < 3 {
		return fmt.Errorf("%w: Segments must be at least 3, got %d", ErrBadResolution, o.Segments)
	}
	if o.Profile == Dome {
		if o.TaperRings < 1 {
			return fmt.Errorf("%w: Dome needs TaperRings >= 1, got %d", ErrBadResolution, o.TaperRings)
		}
		if o.Taper <= 0 || o.Taper >= 1 {
			return fmt.Errorf("%w: Dome needs Taper in (0,1), got %v", ErrBadResolution, o.Taper)
		}
	}

	return nil
}
