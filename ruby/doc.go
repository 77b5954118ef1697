// Package ruby scans plain text for inline pronunciation annotations written
// as |body(reading).
//
// Offsets are 0-based rune indices into the scanned text.
// Spans are half-open: [Start, End).
package ruby
