// Package cli implements the southpole command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the southpole CLI.
// It wires up logging, configuration, and the scenario, calc, and config
// subcommand groups.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "southpole",
		Short:   "South Pole resupply emissions estimator",
		Long:    "southpole: estimate greenhouse-gas emissions of diesel and renewable-energy logistics to the South Pole station",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupCommand(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default $HOME/.southpole/config.yaml)")
	cmd.AddCommand(newScenarioCmd(), newCalcCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Run the hybrid renewable preset scenario
  southpole scenario run c

  # Run a scenario defined in a YAML file, as JSON
  southpole scenario run --file mix.yaml --output json

  # Compare all presets against the diesel status quo
  southpole scenario compare

  # Compare interactively
  southpole scenario compare --interactive

  # Emissions of one truck leg
  southpole calc truck --miles 1030 --cargo-tons 2.5 --trips 9

  # Write a default config file
  southpole config init`

// newScenarioCmd creates the scenario command group.
func newScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "scenario", Short: "Scenario assessment commands"}
	cmd.AddCommand(newScenarioListCmd(), newScenarioRunCmd(), newScenarioCompareCmd())
	return cmd
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}
