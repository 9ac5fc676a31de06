package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldRunID is the structured log field key for the run identifier.
	FieldRunID = "run_id"
	// FieldSeed is the structured log field key for the resolved random seed.
	FieldSeed = "seed"
	// FieldCommand is the structured log field key for the invoked subcommand.
	FieldCommand = "command"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// RunFields returns the fields identifying one invocation: the command, the run
// id and the seed that makes it reproducible.
func RunFields(command, runID string, seed int64) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldCommand, Value: command},
		StringField{Key: FieldRunID, Value: runID},
	)
	return append(fields, zap.Int64(FieldSeed, seed))
}

// WithRunFields attaches the run fields to the provided logger.
func WithRunFields(logger *zap.Logger, command, runID string, seed int64) *zap.Logger {
	return WithFields(logger, RunFields(command, runID, seed)...)
}
