package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WynonaL/southpole/internal/scenario"
	"github.com/WynonaL/southpole/internal/tui"
)

// ScenarioCompareParams holds the parameters for the scenario compare
// command. Exported for testing.
type ScenarioCompareParams struct {
	// Baseline is the scenario deltas are computed against. Defaults to
	// the configured baseline.
	Baseline string

	// Output is the rendering format, table or json.
	Output string

	// Interactive launches the TUI browser instead of printing.
	Interactive bool
}

// newScenarioCompareCmd creates the "scenario compare" subcommand.
func newScenarioCompareCmd() *cobra.Command {
	var params ScenarioCompareParams

	cmd := &cobra.Command{
		Use:   "compare [scenarios...]",
		Short: "Compare scenario CO2e totals against a baseline",
		Long: `Run several scenarios and compare their CO2-equivalent totals against a
baseline. With no arguments, all presets are compared against the configured
baseline (the diesel status quo by default).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeScenarioCompare(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.Baseline, "baseline", "", "baseline scenario name")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format (table, json)")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "browse the comparison in an interactive TUI")

	return cmd
}

// executeScenarioCompare runs the selected scenarios and renders the
// comparison.
func executeScenarioCompare(cmd *cobra.Command, args []string, params ScenarioCompareParams) error {
	names := args
	if len(names) == 0 {
		names = scenario.PresetNames()
	}

	if params.Interactive && params.Output != "" {
		return errors.New("cannot combine --interactive with --output")
	}

	baseline := params.Baseline
	if baseline == "" {
		baseline = configFromCommand(cmd).Compare.Baseline
	}

	format := params.Output
	if format == "" {
		format = configFromCommand(cmd).Output.DefaultFormat
	}
	if err := validateOutputFormat(format); err != nil {
		return err
	}

	logger.Info().
		Strs("scenarios", names).
		Str("baseline", baseline).
		Msg("comparing scenarios")

	reports := make([]*scenario.Report, 0, len(names))
	for _, name := range names {
		s, err := scenario.Preset(name)
		if err != nil {
			return err
		}
		report, err := s.Run()
		if err != nil {
			return fmt.Errorf("running scenario %q: %w", name, err)
		}
		reports = append(reports, report)
	}

	if params.Interactive {
		if !isTerminal(os.Stdout) {
			return errors.New("--interactive requires a terminal")
		}
		return tui.RunCompare(reports, baseline)
	}

	cmp, err := scenario.BuildComparison(reports, baseline)
	if err != nil {
		return err
	}

	if format == outputJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(cmp); err != nil {
			return fmt.Errorf("encoding comparison: %w", err)
		}
		return nil
	}
	return cmp.Render(cmd.OutOrStdout())
}
