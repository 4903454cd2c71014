// Package scores loads tournament results from disk into the store.
//
// A run walks <data_dir>/tournaments, one tournament directory at a time,
// and lands rounds, teams, players, games, buzzes, and bonus conversions
// from qbj-style game files. Game records reference questions through the
// packet placements written by the question-set ingester; records whose
// references cannot be resolved are logged and skipped.
package scores
