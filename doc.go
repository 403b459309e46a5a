// Package braille3d turns a line of text into a tactile, 3D-printable
// model of its Braille transliteration — from Unicode Braille patterns
// to a watertight-ish Wavefront OBJ mesh of raised dots on a flat plate.
//
// 🚀 What is braille3d?
//
//	A small, deterministic toolkit that brings together:
//		• Cell decoding: Unicode Braille patterns (U+2800..U+283F) → 2×3 dot matrices
//		• Dimension tables: Specification 800 & Marburg Medium, YAML-loadable
//		• Layout planning: exact multiple-of-pitch dot placement, no drift
//		• Dot tessellation: cone or tapered-dome bumps at fixed resolution
//		• Substrate generation: the backing plate the dots sit on
//		• Mesh assembly & OBJ serialization with a provenance comment
//
// ✨ Why braille3d?
//
//   - Deterministic – byte-identical output for identical input, always
//   - Honest failures – unsupported symbols abort, nothing is dropped silently
//   - Pure Go – no cgo; the liblouis adapter shells out to its CLI tools
//   - Explicit configuration – dimension standards travel as values, never globals
//
// Under the hood, everything is organized into concern-sized subpackages:
//
//	cell/     — the packed 6-dot Cell value type and Unicode decoding
//	dims/     — named physical dimension standards (mm)
//	translit/ — text ↔ Braille collaborators: liblouis adapter & fallback table
//	layout/   — cells → absolute dot coordinates + bounding extent
//	tessel/   — dot bumps and the substrate slab as local meshes
//	mesh/     — global vertex/face bookkeeping and the OBJ writer
//	convert/  — the one-shot text → OBJ pipeline
//
// Quick ASCII example:
//
//	    "hi"  →  ⠓⠊  →   ● ·   · ●
//	                      ● ●   ● ·
//	                      · ·   · ·    → braille.obj
//
// Dive into README-worthy examples in convert/example_test.go and the
// runnable program under examples/.
//
//	go get github.com/katalvlaran/braille3d
package braille3d
