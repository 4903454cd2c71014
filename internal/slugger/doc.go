// Package slugger derives URL-safe identifiers from human-readable labels
// and keeps them unique within a single migration run.
//
// Slugify lowercases, transliterates to ASCII, and collapses every other
// non-alphanumeric run into a single hyphen. The
// Registry layers run-scoped uniqueness on top: repeated labels receive a
// numeric suffix. The registry is deliberately not persisted; it guards one
// run's insert batch, not the historical corpus.
package slugger
