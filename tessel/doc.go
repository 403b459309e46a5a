// Package tessel generates the local meshes of the model: one bump per
// raised dot, and the substrate slab they sit on.
//
// What:
//
//   - Dot tessellates a single raised dot at its planar position, base
//     ring exactly at z = 0 (the substrate top), apex at the standard's
//     relief height. Two profiles:
//
//     Cone — one apex plus a base ring of Segments vertices, with
//     Segments lateral triangles. The minimal closed lateral surface:
//     cheap, and a printed dot only needs to feel raised and rounded at
//     the tip, not be geometrically exact.
//
//     Dome — a tapered cylinder: base disc, straight wall up to
//     Taper × height, then TaperRings cosine-shrinking rings and an
//     apex cap. Heavier, closer to a real embossed dot.
//
//   - Substrate builds the backing slab: 8 vertices and 6 quads, top
//     face at z = 0, bottom at z = −Thickness, footprint
//     [0, width] × [0, height].
//
// Seam note: dot base rings are coincident with the substrate top plane
// but share no vertices with it. The surfaces touch without being
// welded; slicers treat the coincident shells as one solid in practice,
// and keeping generators independent means the assembler only ever
// renumbers.
//
// Errors:
//
//   - ErrBadResolution: Segments < 3, or a Dome with TaperRings < 1 or
//     Taper outside (0, 1).
//
// Complexity: O(Segments × rings) per dot; constant for the substrate.
package tessel
