package pbc

import (
	"errors"
	"fmt"
	"time"
)

// ConnectionConfig represents resolved PostgreSQL connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string
}

// Validate checks if the ConnectionConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ConnectionConfig) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, fmt.Errorf("host is required: %w", ErrInvalidConfig))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range: %w", c.Port, ErrInvalidConfig))
	}
	if c.Database == "" {
		errs = append(errs, fmt.Errorf("database is required: %w", ErrInvalidConfig))
	}
	if c.Username == "" {
		errs = append(errs, fmt.Errorf("username is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ConvertConfig contains all parameters for the text-to-CSV conversion.
type ConvertConfig struct {
	// DataFile is the whitespace-delimited source file.
	DataFile string

	// OutputPath is the destination for the raw 20-column CSV.
	OutputPath string

	// MLOutputPath is the destination for the feature-augmented CSV.
	MLOutputPath string

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the ConvertConfig has all required fields.
func (c *ConvertConfig) Validate() error {
	var errs []error

	if c.DataFile == "" {
		errs = append(errs, fmt.Errorf("data file is required: %w", ErrInvalidConfig))
	}
	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("output path is required: %w", ErrInvalidConfig))
	}
	if c.MLOutputPath == "" {
		errs = append(errs, fmt.Errorf("ML output path is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// LoadConfig contains all parameters for the text-to-database load.
type LoadConfig struct {
	// DataFile is the whitespace-delimited source file.
	DataFile string

	// SchemaFile contains the SQL statements that define the target
	// schema, executed verbatim statement by statement.
	SchemaFile string

	// Connection holds the resolved database connection parameters.
	Connection ConnectionConfig

	// Timeout is the global timeout for the entire load run.
	Timeout time.Duration

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.DataFile == "" {
		errs = append(errs, fmt.Errorf("data file is required: %w", ErrInvalidConfig))
	}
	if c.SchemaFile == "" {
		errs = append(errs, fmt.Errorf("schema file is required: %w", ErrInvalidConfig))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}
	if err := c.Connection.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
