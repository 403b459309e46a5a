// Package dims holds the physical dimension tables for embossed Braille.
//
// What:
//
//   - Standard bundles every physical constant the geometry pipeline
//     needs: dot diameter and relief height, intra-cell dot pitch,
//     cell-to-cell and line-to-line pitch, substrate margin and
//     thickness. All values are millimeters.
//   - Spec800 returns the default table, taken from the Library of
//     Congress "Specification 800" sizing for embossed Braille.
//   - Marburg returns the Marburg Medium table common in Europe.
//   - Load reads a custom named table from a YAML file, so alternate
//     standards ship as data rather than code.
//
// Why:
//
//   - Swapping the standard must never touch another component: every
//     consumer takes a Standard by value, and there is no package-level
//     mutable state.
//
// Errors:
//
//   - ErrBadStandard: a dimension is missing, non-positive, or
//     inconsistent (dots wider than their pitch).
//
// No behavior lives here beyond constant lookup and validation.
package dims
