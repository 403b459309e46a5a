package mesh

import (
	"errors"
	"fmt"
)

// ErrBadFace indicates a face with too few, repeated, or out-of-range
// vertex indices.
var ErrBadFace = errors.New("mesh: invalid face")

// Vertex is a point in model space. Units are millimeters.
type Vertex struct {
	X, Y, Z float64
}

// Face is an ordered list of 0-based indices into a vertex list. A valid
// face has at least three distinct indices; winding is counter-clockwise
// seen from outside the surface.
type Face []int

// Patch is a self-contained local mesh produced by one generator. Its
// faces index its own Vertices slice only.
type Patch struct {
	Vertices []Vertex
	Faces    []Face
}

// Mesh is the assembled model: one global vertex list, one face list,
// and the provenance comment emitted ahead of the geometry.
type Mesh struct {
	Comment  string
	Vertices []Vertex
	Faces    []Face
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int { return len(m.Vertices) }

// FaceCount returns the number of faces.
func (m Mesh) FaceCount() int { return len(m.Faces) }

// Builder concatenates patches into a single globally-indexed Mesh.
// Append order defines the global numbering; the builder never alters
// geometry, it only offsets face indices. The zero value is ready to use.
type Builder struct {
	comment  string
	vertices []Vertex
	faces    []Face
}

// SetComment sets the provenance comment of the final mesh.
func (b *Builder) SetComment(comment string) {
	b.comment = comment
}

// Append merges a patch, offsetting its face indices by the number of
// vertices already collected.
func (b *Builder) Append(p Patch) {
	offset := len(b.vertices)
	b.vertices = append(b.vertices, p.Vertices...)
	for _, f := range p.Faces {
		global := make(Face, len(f))
		for i, idx := range f {
			global[i] = idx + offset
		}
		b.faces = append(b.faces, global)
	}
}

// Build returns the assembled mesh.
func (b *Builder) Build() Mesh {
	return Mesh{
		Comment:  b.comment,
		Vertices: b.vertices,
		Faces:    b.faces,
	}
}

// Validate checks that every face has at least three indices, that each
// index lies within [0, len(m.Vertices)), and that no index repeats
// within a face. Returns nil or an error wrapping ErrBadFace.
func Validate(m Mesh) error {
	n := len(m.Vertices)
	for fi, f := range m.Faces {
		if len(f) < 3 {
			return fmt.Errorf("%w: face %d has %d indices", ErrBadFace, fi, len(f))
		}
		seen := make(map[int]struct{}, len(f))
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrBadFace, fi, idx, n)
			}
			if _, dup := seen[idx]; dup {
				return fmt.Errorf("%w: face %d repeats vertex %d", ErrBadFace, fi, idx)
			}
			seen[idx] = struct{}{}
		}
	}

	return nil
}
