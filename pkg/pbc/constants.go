package pbc

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Pipeline completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to database
	ExitInputMissing    = 12 // Data or schema file not found
	ExitExecutionFailed = 13 // SQL execution failed
	ExitMalformedInput  = 14 // Data file violates the 20-column layout
)

const (
	// DaysPerYear converts the dataset's age-in-days to years.
	// 365.25 accounts for leap years and matches the published
	// PBC study convention.
	DaysPerYear = 365.25

	// PatientColumnCount is the fixed number of fields per data row.
	PatientColumnCount = 20

	// PatientsTable is the target relational table for the loader.
	PatientsTable = "pbc_patients"

	// MissingToken marks an absent value in the source text file.
	MissingToken = "."

	// DefaultLoadTimeout bounds a load run. It is catastrophic-failure
	// protection, not query-level timeout control.
	DefaultLoadTimeout = 3 * time.Minute
)

// Status codes recorded in the source data.
const (
	StatusAlive      = 0
	StatusTransplant = 1
	StatusDead       = 2
)

// Default connection parameters, overridable through the environment.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 5432
	DefaultDatabase = "liver_transplant"
	DefaultUser     = "postgres"
	DefaultPassword = "password"
)

// Environment variable names honored by the load command.
const (
	EnvHost     = "POSTGRES_HOST"
	EnvPort     = "POSTGRES_PORT"
	EnvDatabase = "POSTGRES_DB"
	EnvUser     = "POSTGRES_USER"
	EnvPassword = "POSTGRES_PASSWORD"
)
