// Package convert runs the whole pipeline: text in, Wavefront OBJ mesh
// out.
//
// What:
//
//	Convert(text, opts) chains the stages in order:
//
//	  transliterate → decode cells → plan layout → tessellate dots
//	  → generate substrate → assemble → validate
//
//	and stamps the result with a provenance comment recording the input
//	text, its Braille transliteration, and — when the transliterator can
//	back-translate — the round-trip text, each as a quoted string. The
//	back-translation is always computed from the exact symbol string the
//	mesh was built from, never re-derived from the input.
//
// Why:
//
//   - Failure is total: any unsupported symbol or unavailable collaborator
//     aborts the conversion with no partial output. For an accessibility
//     tool, an incomplete Braille plate is worse than none.
//   - Empty input is not a failure: it produces a substrate-only plate
//     with the footprint clamped to one cell.
//   - Determinism: identical text + options yield byte-identical OBJ
//     streams.
//
// Errors (all via errors.Is):
//
//   - ErrNoTransliterator            — Options.Trans is nil.
//   - translit.ErrUnavailable        — external tools missing.
//   - translit.ErrUnsupportedText    — fallback table gap.
//   - cell.ErrUnsupportedSymbol      — transliterator emitted a rune
//     outside the 6-dot page.
//   - tessel.ErrBadResolution, dims.ErrBadStandard, mesh.ErrBadFace —
//     configuration or assembly defects.
//
// Complexity: O(dots × segments); single-threaded and allocation-bounded
// by the output size.
package convert
