package mesh

import (
	"fmt"
	"io"
	"strings"
)

// WriteOBJ serializes the mesh as a minimal Wavefront OBJ stream:
// comment lines first, then one "v x y z" line per vertex at fixed
// 3-decimal precision, then one "f ..." line per face with 1-based
// indices. Output is byte-identical for identical meshes.
//
// WriteOBJ does not validate; run Validate first if the mesh origin is
// untrusted.
func WriteOBJ(w io.Writer, m Mesh) error {
	if m.Comment != "" {
		for _, line := range strings.Split(m.Comment, "\n") {
			if _, err := fmt.Fprintf(w, "# %s\n", line); err != nil {
				return fmt.Errorf("mesh: write comment: %w", err)
			}
		}
	}
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(w, "v %.3f %.3f %.3f\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("mesh: write vertex: %w", err)
		}
	}
	var sb strings.Builder
	for _, f := range m.Faces {
		sb.Reset()
		sb.WriteByte('f')
		for _, idx := range f {
			fmt.Fprintf(&sb, " %d", idx+1)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("mesh: write face: %w", err)
		}
	}

	return nil
}
