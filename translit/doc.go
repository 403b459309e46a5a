// Package translit defines the text → Braille transliteration boundary
// and its two implementations.
//
// What:
//
//   - Transliterator turns plain text into a string of Unicode Braille
//     pattern runes, one per cell, with '\n' preserved as the line
//     separator.
//   - BackTranslator is the optional reverse capability, used only to
//     document round-trip fidelity in the output's provenance comment.
//     Discover it with a type assertion.
//   - Louis delegates both directions to the liblouis command-line tools
//     (lou_translate --forward / --backward), the same external
//     collaborator the upstream toolchain used. Preferred.
//   - Fallback is an intentionally minimal internal table: letters,
//     capital and number indicators, digits, space, comma, period, and
//     the "for"/"and"/"the" word signs. It implements Translate only,
//     and it is for emergencies — its output is uncontracted and
//     probably wrong for anything beyond trivial phrases.
//
// Why:
//
//   - Transliteration accuracy is an accessibility concern: nothing in
//     this package falls back silently. Louis reports ErrUnavailable
//     when the tools are missing; switching to Fallback is always the
//     caller's explicit decision.
//
// Errors:
//
//   - ErrUnavailable: the external transliteration tools cannot be
//     found or executed.
//   - ErrUnsupportedText: the fallback table has no mapping for a rune;
//     the error names the rune and its position.
package translit
