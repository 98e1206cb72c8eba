package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/meldlab/pbckit/internal/config"
	"github.com/meldlab/pbckit/pkg/pbc"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a pbckit.yaml in the current directory",
	Long: `Init interactively scaffolds a pbckit.yaml holding the project's
connection parameters and file paths. Press Enter at any prompt to accept the
shown default. The password prompt does not echo; leave it empty to keep
supplying the password via POSTGRES_PASSWORD or a .env file.

An existing pbckit.yaml is never overwritten unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false,
		"Overwrite an existing pbckit.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := filepath.Join(".", config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite): %w",
			config.ConfigFileName, pbc.ErrInvalidConfig)
	}

	reader := bufio.NewReader(os.Stdin)

	host := promptString(reader, "Database host", pbc.DefaultHost)
	port, err := promptInt(reader, "Database port", pbc.DefaultPort)
	if err != nil {
		return err
	}
	database := promptString(reader, "Database name", pbc.DefaultDatabase)
	username := promptString(reader, "Database user", pbc.DefaultUser)
	password, err := promptPassword(reader, "Database password (empty to use environment)")
	if err != nil {
		return err
	}
	dataFile := promptString(reader, "Data file", defaultDataFile)
	schemaFile := promptString(reader, "Schema file", defaultSchemaFile)

	cfg := &config.ProjectConfig{
		Connection: config.ConnectionConfig{
			Host:     host,
			Port:     port,
			Database: database,
			Username: username,
			Password: password,
		},
		Paths: config.PathsConfig{
			DataFile:   dataFile,
			SchemaFile: schemaFile,
			Output:     defaultOutput,
			MLOutput:   defaultMLOutput,
		},
	}

	if err := config.Save(".", cfg); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.ConfigFileName, err)
	}

	fmt.Printf("Wrote %s\n", config.ConfigFileName)
	return nil
}

func promptString(reader *bufio.Reader, label, fallback string) string {
	fmt.Printf("%s [%s]: ", label, fallback)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

func promptInt(reader *bufio.Reader, label string, fallback int) (int, error) {
	raw := promptString(reader, label, strconv.Itoa(fallback))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid number: %w", raw, pbc.ErrInvalidConfig)
	}
	return value, nil
}

// promptPassword reads without echo when stdin is a terminal, and falls back
// to a plain line read when it is not (pipes, CI).
func promptPassword(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s: ", label)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}
	return strings.TrimSpace(line), nil
}
