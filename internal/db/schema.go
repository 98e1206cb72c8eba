package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/meldlab/pbckit/pkg/pbc"
)

// ReadSchemaFile reads the external schema-definition file and returns its
// individual statements. The file is executed verbatim: no rewriting, no
// dialect handling.
func ReadSchemaFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("schema file %q: %w", path, pbc.ErrInputNotFound)
		}
		return nil, fmt.Errorf("read schema file %q: %w", path, err)
	}
	return SplitStatements(string(content)), nil
}

// SplitStatements splits SQL text on the statement terminator and drops
// empty fragments. Statements whose bodies themselves contain a semicolon
// (dollar-quoted functions, for example) are not supported.
func SplitStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		stmt := strings.TrimSpace(part)
		if stmt == "" {
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}
