package metaqa

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report, err := runner.Run(ctx, cfg)
//	if errors.Is(err, metaqa.ErrInvariantViolation) {
//	    // evaluator logic defect, the report must be discarded
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidSchema indicates a schema description is malformed
	// (e.g. a leaf field without a requirement tier).
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrSchemaNotFound indicates no schema is known for a record kind.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrSourceNotFound indicates an input path matched no files.
	ErrSourceNotFound = errors.New("source not found")

	// ErrUnsupportedFormat indicates an input file cannot be read as rows or trees.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvariantViolation indicates an evaluator logic defect such as a
	// negative tally or a record placed in two duplicate groups.
	// There is no recovery: the run fails.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrQualityGate indicates the run produced findings at or above the
	// configured fail_on level.
	ErrQualityGate = errors.New("quality gate failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvariantViolation):
		return ExitInvariantViolation
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidSchema), errors.Is(err, ErrSchemaNotFound):
		return ExitSchemaError
	case errors.Is(err, ErrSourceNotFound), errors.Is(err, ErrUnsupportedFormat):
		return ExitInputError
	case errors.Is(err, ErrQualityGate):
		return ExitQualityGate
	}

	// Cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usagePatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
}
