// Package logging assembles the structured slog loggers used across quizdb.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// defines the standardized attribute keys so every component tags log lines
// with the same field names. Run-correlation identifiers let a log stream
// spanning several ingestion runs be split apart afterwards.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the system.
package logging
