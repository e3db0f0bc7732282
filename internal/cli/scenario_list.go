package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/WynonaL/southpole/internal/scenario"
)

// newScenarioListCmd creates the "scenario list" subcommand.
func newScenarioListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the preset resupply scenarios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "NAME\tTITLE\tSOLAR kWp\tWIND kW\tBESS kWh\tDIESEL gal\n"); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}
			for _, s := range scenario.Presets() {
				if _, err := fmt.Fprintf(tw, "%s\t%s\t%.0f\t%.0f\t%.0f\t%.0f\n",
					s.Name, s.Title,
					s.Mix.SolarKWp, s.Mix.WindKW, s.Mix.BESSEnergyKWh, s.Mix.DieselGallons,
				); err != nil {
					return fmt.Errorf("writing row %q: %w", s.Name, err)
				}
			}
			if err := tw.Flush(); err != nil {
				return fmt.Errorf("flushing table: %w", err)
			}
			return nil
		},
	}
}
