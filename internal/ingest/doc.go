// Package ingest loads question-set archives from disk into the store.
//
// A run walks <data_dir>/question_sets, one set directory at a time, and
// lands every packet file it finds. Question bodies are deduplicated by
// content hash: the first occurrence creates a canonical question row, every
// occurrence (first or repeat) records a packet placement.
package ingest
