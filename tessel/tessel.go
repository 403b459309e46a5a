package tessel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/braille3d/dims"
	"github.com/katalvlaran/braille3d/mesh"
)

// Dot tessellates one raised dot centered at (x, y) on the substrate
// top plane. The base ring sits exactly at z = 0 and the apex at the
// standard's DotHeight. The returned patch is local: its faces index
// its own vertices only.
//
// Cone patches contain Segments+1 vertices and Segments faces; Dome
// patches contain (TaperRings+2)·Segments+2 vertices and
// 2·Segments·(TaperRings+2) faces.
func Dot(x, y float64, std dims.Standard, opts Options) (mesh.Patch, error) {
	if err := validateOptions(opts); err != nil {
		return mesh.Patch{}, err
	}
	if err := std.Validate(); err != nil {
		return mesh.Patch{}, fmt.Errorf("tessel: %w", err)
	}

	radius := std.DotDiameter / 2
	if opts.Profile == Dome {
		return domeDot(x, y, radius, std.DotHeight, opts), nil
	}

	return coneDot(x, y, radius, std.DotHeight, opts.Segments), nil
}

// Substrate builds the backing slab for the given footprint: 8 vertices
// and 6 quads, top face at z = 0, bottom face at z = −Thickness.
func Substrate(width, height float64, std dims.Standard) mesh.Patch {
	t := std.Thickness

	return mesh.Patch{
		Vertices: []mesh.Vertex{
			{X: 0, Y: 0, Z: -t},
			{X: width, Y: 0, Z: -t},
			{X: width, Y: height, Z: -t},
			{X: 0, Y: height, Z: -t},
			{X: 0, Y: 0, Z: 0},
			{X: width, Y: 0, Z: 0},
			{X: width, Y: height, Z: 0},
			{X: 0, Y: height, Z: 0},
		},
		Faces: []mesh.Face{
			{4, 5, 6, 7}, // top
			{3, 2, 1, 0}, // bottom
			{0, 1, 5, 4},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 0, 4, 7},
		},
	}
}

// ring returns n vertices on a circle of the given radius around (x, y)
// at elevation z, starting at 12 o'clock and walking clockwise seen
// from above.
func ring(x, y, radius, z float64, n int) []mesh.Vertex {
	out := make([]mesh.Vertex, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := float64(i) * step
		out[i] = mesh.Vertex{X: x + radius*math.Sin(a), Y: y + radius*math.Cos(a), Z: z}
	}

	return out
}

// coneDot builds the minimal bump: base ring, single apex, n lateral
// triangles. The base stays open — it rests on the substrate.
func coneDot(x, y, radius, height float64, n int) mesh.Patch {
	p := mesh.Patch{
		Vertices: append(ring(x, y, radius, 0, n), mesh.Vertex{X: x, Y: y, Z: height}),
	}
	apex := n
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p.Faces = append(p.Faces, mesh.Face{j, i, apex})
	}

	return p
}

// domeDot builds the tapered-cylinder bump: closed base disc, straight
// wall up to taper·height, cosine-shrinking cap rings, flat apex cap.
func domeDot(x, y, radius, height float64, o Options) mesh.Patch {
	n, rings := o.Segments, o.TaperRings
	wallTop := o.Taper * height
	capRise := height - wallTop

	var p mesh.Patch

	// Base disc, facing down.
	p.Vertices = append(p.Vertices, mesh.Vertex{X: x, Y: y, Z: 0})
	p.Vertices = append(p.Vertices, ring(x, y, radius, 0, n)...)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p.Faces = append(p.Faces, mesh.Face{1 + i, 1 + j, 0})
	}

	// Straight wall.
	p.Vertices = append(p.Vertices, ring(x, y, radius, wallTop, n)...)
	p.Faces = append(p.Faces, stitch(len(p.Vertices)-n, len(p.Vertices)-2*n, n)...)

	// Tapering cap rings; the last ring reaches full height, so the
	// apex cap closes flat, like the upstream generator.
	for k := 1; k <= rings; k++ {
		shrink := math.Cos(float64(k) * (math.Pi / 2) / float64(rings+1))
		z := wallTop + capRise*math.Sin(float64(k)*(math.Pi/2)/float64(rings))
		p.Vertices = append(p.Vertices, ring(x, y, radius*shrink, z, n)...)
		p.Faces = append(p.Faces, stitch(len(p.Vertices)-n, len(p.Vertices)-2*n, n)...)
	}

	// Apex cap, flipped to face up.
	p.Vertices = append(p.Vertices, mesh.Vertex{X: x, Y: y, Z: height})
	apex := len(p.Vertices) - 1
	base := apex - n
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p.Faces = append(p.Faces, mesh.Face{base + j, base + i, apex})
	}

	return p
}

// stitch joins two same-size vertex rings with two triangles per
// segment; upper and lower are the rings' first vertex indices.
func stitch(upper, lower, n int) []mesh.Face {
	out := make([]mesh.Face, 0, 2*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		out = append(out,
			mesh.Face{upper + i, upper + j, lower + j},
			mesh.Face{lower + j, lower + i, upper + i},
		)
	}

	return out
}
