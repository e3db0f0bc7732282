package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WynonaL/southpole/internal/config"
	"github.com/WynonaL/southpole/internal/scenario"
)

// ScenarioRunParams holds the parameters for the scenario run command.
// Exported for testing.
type ScenarioRunParams struct {
	// File is a YAML scenario definition, mutually exclusive with a preset
	// name argument.
	File string

	// Output is the rendering format, table or json.
	Output string
}

// newScenarioRunCmd creates the "scenario run" subcommand.
func newScenarioRunCmd() *cobra.Command {
	var params ScenarioRunParams

	cmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Compute the emission report for one scenario",
		Long: `Compute the full emission report for a resupply scenario: transport legs,
voyage fuel production, embodied hardware emissions, and the consolidated
CO2-equivalent total.

The scenario is either a preset name (see "scenario list") or a YAML file
passed with --file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeScenarioRun(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.File, "file", "", "YAML scenario definition file")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format (table, json)")

	return cmd
}

// executeScenarioRun resolves the scenario, runs it, and renders the report.
func executeScenarioRun(cmd *cobra.Command, args []string, params ScenarioRunParams) error {
	s, err := resolveScenario(args, params.File)
	if err != nil {
		return err
	}

	format := params.Output
	if format == "" {
		format = configFromCommand(cmd).Output.DefaultFormat
	}
	if err := validateOutputFormat(format); err != nil {
		return err
	}

	logger.Info().
		Str("scenario", s.Name).
		Str("output", format).
		Msg("running scenario")

	report, err := s.Run()
	if err != nil {
		return fmt.Errorf("running scenario: %w", err)
	}

	logger.Debug().
		Str("scenario", s.Name).
		Str("report_id", report.ID).
		Float64("co2e_tonnes", report.CO2eTonnes()).
		Msg("scenario complete")

	if format == outputJSON {
		return report.WriteJSON(cmd.OutOrStdout())
	}
	return scenario.RenderReportTable(cmd.OutOrStdout(), report)
}

// resolveScenario picks between a preset name argument and a --file
// definition. Exactly one must be given.
func resolveScenario(args []string, file string) (scenario.Scenario, error) {
	switch {
	case file != "" && len(args) > 0:
		return scenario.Scenario{}, errors.New("cannot combine a preset name with --file")
	case file != "":
		return config.LoadScenarioFile(file)
	case len(args) == 1:
		return scenario.Preset(args[0])
	default:
		return scenario.Scenario{}, errors.New("a preset name or --file is required (see \"scenario list\")")
	}
}
