// Package model defines the data structures strsize reports on.
//
// This package contains the following main types:
//   - StringTable: The fixed, ordered set of strings being measured
//   - Report: The values derived from a StringTable (counts and byte sizes)
//   - Entry: One string of the table with its terminator-inclusive length
//
// A Report is always derived, never stored. Building one from the same
// StringTable on the same platform yields the same values every time.
package model
