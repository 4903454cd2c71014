package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the standardized key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized key for run correlation identifiers.
	FieldRunID = "run_id"
	// FieldFile is the standardized key for source file paths.
	FieldFile = "file"
	// FieldSet is the standardized key for question-set slugs.
	FieldSet = "set"
	// FieldEdition is the standardized key for edition slugs.
	FieldEdition = "edition"
	// FieldPacket is the standardized key for packet names.
	FieldPacket = "packet"
	// FieldTournament is the standardized key for tournament slugs.
	FieldTournament = "tournament"
)

// WithComponent tags a logger with a component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

// WithRunID tags a logger with a fresh run correlation identifier and
// returns both.
func WithRunID(logger *slog.Logger) (*slog.Logger, string) {
	runID := uuid.NewString()
	if logger == nil {
		return NewNop(), runID
	}
	return logger.With(slog.String(FieldRunID, runID)), runID
}
