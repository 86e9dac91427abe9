package metaqa

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Evaluation completed and the quality gate passed
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitConfigError        = 10 // Invalid configuration
	ExitInputError         = 11 // Input file missing, unreadable or in an unsupported format
	ExitSchemaError        = 12 // Schema missing or malformed
	ExitQualityGate        = 13 // Findings at or above the fail_on level were emitted
	ExitInvariantViolation = 15 // Internal invariant broken; the report cannot be trusted
)

const (
	// ConfigFileName is the project configuration file looked up in the project directory.
	ConfigFileName = "metaqa.yaml"

	// DefaultParallel is the default number of sources evaluated concurrently.
	DefaultParallel = 4

	// RateDecimals is the number of decimals every emitted percentage is rounded to.
	RateDecimals = 2
)
