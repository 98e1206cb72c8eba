package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/meldlab/pbckit/internal/config"
	"github.com/meldlab/pbckit/internal/logging"
	"github.com/meldlab/pbckit/internal/survival"
)

var survivalCmd = &cobra.Command{
	Use:   "survival [csv-file]",
	Short: "Extract survival-analysis data from the ML-ready CSV",
	Long: `Survival reads a CSV produced by 'pbckit convert', prints a dataset
summary, and assembles the survival-analysis tuple: survival times, death
events and the feature matrix. Missing feature values are filled with the
column median; missing survival times or death events are left as-is so
downstream filtering stays explicit.

Arguments:
  csv-file    Path to the ML-ready CSV (default: pbc_ml_ready.csv, or the
              ml_output path in pbckit.yaml)

Examples:
  # Summarize and extract from the default CSV
  pbckit survival

  # Print the feature-description table instead
  pbckit survival --describe`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSurvival,
}

var survivalDescribe bool

func init() {
	rootCmd.AddCommand(survivalCmd)

	survivalCmd.Flags().BoolVar(&survivalDescribe, "describe", false,
		"Print the feature-description table and exit")
}

func resolveSurvivalInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	projectCfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return defaultMLOutput, nil
		}
		return "", err
	}
	if projectCfg.Paths.MLOutput != "" {
		return projectCfg.Paths.MLOutput, nil
	}
	return defaultMLOutput, nil
}

func runSurvival(cmd *cobra.Command, args []string) error {
	if survivalDescribe {
		survival.PrintDescriptions(os.Stdout)
		return nil
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	path, err := resolveSurvivalInput(args)
	if err != nil {
		return err
	}
	logger.Verbose("Reading ML-ready CSV from %s", path)

	frame, err := survival.Load(path)
	if err != nil {
		return err
	}

	if err := survival.PrintSummary(os.Stdout, frame); err != nil {
		return err
	}

	data, err := survival.Extract(frame)
	if err != nil {
		return err
	}
	survival.PrintShapes(os.Stdout, data)

	return nil
}
