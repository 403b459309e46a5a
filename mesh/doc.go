// Package mesh holds the polygon mesh model, the global index
// bookkeeping, and the Wavefront OBJ serializer.
//
// What:
//
//   - Vertex is an (x, y, z) triple in millimeters.
//   - Face is an ordered list of at least three vertex indices (0-based
//     internally; the OBJ writer emits them 1-based). Triangles and
//     quads both occur: dot bumps are triangulated, the substrate keeps
//     its six quads.
//   - Patch is a generator-local mesh (its faces index its own
//     vertices). Builder appends patches, offsetting each patch's face
//     indices by the vertices already collected, so append order defines
//     the global numbering.
//   - Validate checks every face references distinct, in-range vertices.
//   - WriteOBJ emits comment lines, "v x y z" lines at fixed 3-decimal
//     precision, then "f i j k ..." lines — byte-identical for identical
//     meshes.
//
// Why:
//
//   - Generators stay independent: they never see global indices, and
//     the assembler never rewrites geometry — it only renumbers.
//
// Errors:
//
//   - ErrBadFace: a face has fewer than three indices, repeats an index,
//     or references a vertex outside the global list.
//
// Complexity: Append is O(len(patch)); Validate and WriteOBJ are linear
// in the mesh size.
package mesh
