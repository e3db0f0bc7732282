package scenario

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
)

// Chart dimensions for the comparison bar graph.
const (
	chartHeight = 10
	chartWidth  = 60
)

// CompareRow is one scenario's standing in a comparison.
type CompareRow struct {
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	CO2eTonnes float64 `json:"co2e_tonnes"`

	// DeltaTonnes is the difference to the baseline scenario.
	DeltaTonnes float64 `json:"delta_tonnes"`

	// DeltaPercent is DeltaTonnes relative to the baseline total.
	DeltaPercent float64 `json:"delta_percent"`
}

// Comparison ranks scenario reports against a baseline.
type Comparison struct {
	Baseline string       `json:"baseline"`
	Rows     []CompareRow `json:"rows"`
}

// BuildComparison computes deltas of every report against the named
// baseline. The baseline must be among the reports.
func BuildComparison(reports []*Report, baseline string) (*Comparison, error) {
	var base *Report
	for _, r := range reports {
		if r.Scenario.Name == baseline {
			base = r
			break
		}
	}
	if base == nil {
		return nil, fmt.Errorf("%w: baseline %q not among compared scenarios", ErrUnknownScenario, baseline)
	}

	cmp := &Comparison{Baseline: baseline}
	for _, r := range reports {
		row := CompareRow{
			Name:        r.Scenario.Name,
			Title:       r.Scenario.Title,
			CO2eTonnes:  r.CO2eTonnes(),
			DeltaTonnes: r.CO2eTonnes() - base.CO2eTonnes(),
		}
		if base.CO2eTonnes() != 0 {
			row.DeltaPercent = row.DeltaTonnes / base.CO2eTonnes() * 100
		}
		cmp.Rows = append(cmp.Rows, row)
	}
	return cmp, nil
}

// Render writes the comparison as a bar-style chart of CO2e totals followed
// by a delta table against the baseline.
func (c *Comparison) Render(w io.Writer) error {
	series := make([]float64, 0, len(c.Rows))
	caption := ""
	for i, row := range c.Rows {
		series = append(series, row.CO2eTonnes)
		if i > 0 {
			caption += "  "
		}
		caption += fmt.Sprintf("[%d] %s", i, row.Name)
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("t CO2e per scenario: "+caption),
	)
	fmt.Fprintln(w, graph)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintf(tw, "SCENARIO\tTITLE\tCO2e (t)\tDELTA (t)\tDELTA %%\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range c.Rows {
		marker := ""
		if row.Name == c.Baseline {
			marker = " (baseline)"
		}
		if _, err := fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%+.1f%%\n",
			row.Name, marker, row.Title,
			FormatTonnes(row.CO2eTonnes),
			FormatDelta(row.DeltaTonnes),
			row.DeltaPercent,
		); err != nil {
			return fmt.Errorf("writing row %q: %w", row.Name, err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}
