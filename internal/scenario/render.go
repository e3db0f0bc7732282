package scenario

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/WynonaL/southpole/internal/emissions"
)

// tabwriterPadding is the minimum padding between columns in report tables.
const tabwriterPadding = 2

// reportRow is one labeled inventory line in the report table.
type reportRow struct {
	label string
	inv   emissions.Inventory
}

// RenderReportTable writes a formatted table of the report: one row per
// transport component, the voyage fuel production, the embodied hardware
// emissions, and the consolidated totals with the CO2e figure.
func RenderReportTable(w io.Writer, r *Report) error {
	fmt.Fprintf(w, "Scenario %s: %s\n", r.Scenario.Name, r.Scenario.Title)
	if r.Scenario.Description != "" {
		fmt.Fprintf(w, "%s\n", r.Scenario.Description)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintf(tw, "SOURCE\tCO2 (g)\tCH4 (g)\tN2O (g)\t\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t-------\t-------\t-------\t\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	rows := []reportRow{
		{"wind turbine transport", r.Transport.Wind},
		{"pv panel transport", r.Transport.PV},
		{"bess unit transport", r.Transport.BESS},
		{"diesel transport", r.Transport.Diesel},
		{"voyage fuel production", r.FuelProduction},
		{"embodied hardware + diesel production", r.Embodied.Consolidate()},
	}

	for _, row := range rows {
		if len(row.inv) == 0 {
			continue
		}
		if err := writeInventoryRow(tw, row.label, row.inv); err != nil {
			return err
		}
	}

	if err := writeInventoryRow(tw, "TOTAL", r.Total); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Fprintf(w, "\nCO2-equivalent (AR6 GWP100): %s g CO2e (%s t)\n",
		FormatGrams(r.CO2eGrams), FormatTonnes(r.CO2eTonnes()))
	return nil
}

// writeInventoryRow writes one labeled per-gas row.
func writeInventoryRow(w io.Writer, label string, inv emissions.Inventory) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
		label,
		FormatGrams(inv[emissions.GasCO2]),
		FormatGrams(inv[emissions.GasCH4]),
		FormatGrams(inv[emissions.GasN2O]),
	)
	if err != nil {
		return fmt.Errorf("writing row %q: %w", label, err)
	}
	return nil
}
