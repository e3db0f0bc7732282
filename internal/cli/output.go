package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/WynonaL/southpole/internal/emissions"
	"github.com/WynonaL/southpole/internal/scenario"
)

// Supported output formats.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// validateOutputFormat checks the --output flag value.
func validateOutputFormat(format string) error {
	switch format {
	case outputTable, outputJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q (expected %s or %s)", format, outputTable, outputJSON)
	}
}

// writeInventory prints a per-gas inventory with its CO2-equivalent figure,
// the shared output of the calc subcommands.
func writeInventory(w io.Writer, title string, inv emissions.Inventory) error {
	fmt.Fprintln(w, title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, gas := range emissions.Gases {
		if _, err := fmt.Fprintf(tw, "%s\t%s g\t\n", gas, scenario.FormatGrams(inv[gas])); err != nil {
			return fmt.Errorf("writing %s row: %w", gas, err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	co2e, err := emissions.CO2Equivalent(inv)
	if err != nil {
		return fmt.Errorf("weighting inventory: %w", err)
	}
	fmt.Fprintf(w, "CO2e\t%s g (%s t)\n", scenario.FormatGrams(co2e), scenario.FormatTonnes(co2e/1e6))
	return nil
}
