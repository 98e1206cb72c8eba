package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/meldlab/pbckit/internal/config"
	"github.com/meldlab/pbckit/internal/logging"
	"github.com/meldlab/pbckit/internal/services"
	"github.com/meldlab/pbckit/pkg/pbc"
)

const (
	defaultDataFile = "pbc.dat.txt"
	defaultOutput   = "pbc_data.csv"
	defaultMLOutput = "pbc_ml_ready.csv"
)

var convertCmd = &cobra.Command{
	Use:   "convert [data-file]",
	Short: "Convert the raw data file to CSV",
	Long: `Convert reads the whitespace-delimited PBC data file and writes two CSV
files: the raw 20-column export and an ML-ready version with derived columns
(age_years, death_event, male, female, drug_treatment) appended.

Both outputs are fully overwritten on every run. Row order mirrors the source
file and missing values ('.' in the source) become empty cells.

Arguments:
  data-file    Path to the source file (default: pbc.dat.txt, or the
               data_file path in pbckit.yaml)

Examples:
  # Convert with defaults
  pbckit convert

  # Convert a specific file into custom outputs
  pbckit convert data/pbc.dat.txt -o out/pbc_data.csv --ml-output out/pbc_ml_ready.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

type convertFlagValues struct {
	output   string
	mlOutput string
}

var convertFlags convertFlagValues

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFlags.output, "output", "o", defaultOutput,
		"Destination for the raw 20-column CSV")
	convertCmd.Flags().StringVar(&convertFlags.mlOutput, "ml-output", defaultMLOutput,
		"Destination for the feature-augmented CSV")
}

// buildConvertConfig resolves the conversion inputs with precedence
// flag/argument > pbckit.yaml > default.
func buildConvertConfig(cmd *cobra.Command, args []string, verbose bool) (pbc.ConvertConfig, error) {
	projectCfg, err := config.Load(".")
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return pbc.ConvertConfig{}, err
	}

	cfg := pbc.ConvertConfig{
		DataFile:     defaultDataFile,
		OutputPath:   convertFlags.output,
		MLOutputPath: convertFlags.mlOutput,
		Verbose:      verbose,
	}

	if projectCfg != nil {
		if projectCfg.Paths.DataFile != "" {
			cfg.DataFile = projectCfg.Paths.DataFile
		}
		if projectCfg.Paths.Output != "" && !cmd.Flags().Changed("output") {
			cfg.OutputPath = projectCfg.Paths.Output
		}
		if projectCfg.Paths.MLOutput != "" && !cmd.Flags().Changed("ml-output") {
			cfg.MLOutputPath = projectCfg.Paths.MLOutput
		}
	}

	if len(args) > 0 {
		cfg.DataFile = args[0]
	}

	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildConvertConfig(cmd, args, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	converter := services.NewConverter(logger, os.Stdout)
	return converter.Run(cfg)
}
