// Package tui implements the interactive scenario comparison browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/WynonaL/southpole/internal/emissions"
	"github.com/WynonaL/southpole/internal/scenario"
)

// Layout constants.
const (
	tableHeight    = 7
	colWidthName   = 14
	colWidthTitle  = 36
	colWidthCO2e   = 14
	colWidthDelta  = 14
	detailColWidth = 16
)

// Styles for the comparison browser.
//
//nolint:gochecknoglobals // Lipgloss styles are conventionally package globals.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// CompareModel is the Bubble Tea model for browsing scenario reports.
type CompareModel struct {
	reports  []*scenario.Report
	cmp      *scenario.Comparison
	table    table.Model
	quitting bool
}

// NewCompareModel builds the browser model from computed reports.
func NewCompareModel(reports []*scenario.Report, baseline string) (*CompareModel, error) {
	cmp, err := scenario.BuildComparison(reports, baseline)
	if err != nil {
		return nil, err
	}

	columns := []table.Column{
		{Title: "SCENARIO", Width: colWidthName},
		{Title: "TITLE", Width: colWidthTitle},
		{Title: "CO2e (t)", Width: colWidthCO2e},
		{Title: "DELTA (t)", Width: colWidthDelta},
	}

	rows := make([]table.Row, 0, len(cmp.Rows))
	for _, row := range cmp.Rows {
		name := row.Name
		if name == cmp.Baseline {
			name += " *"
		}
		rows = append(rows, table.Row{
			name,
			row.Title,
			scenario.FormatTonnes(row.CO2eTonnes),
			scenario.FormatDelta(row.DeltaTonnes),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	return &CompareModel{reports: reports, cmp: cmp, table: t}, nil
}

// Init implements tea.Model.
func (m *CompareModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *CompareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *CompareModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("SOUTH POLE RESUPPLY SCENARIOS"))
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.detailView())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: select scenario  •  q: quit  •  * baseline"))
	return b.String()
}

// detailView renders the per-gas breakdown of the selected scenario.
func (m *CompareModel) detailView() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.reports) {
		return ""
	}
	report := m.reports[idx]

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Scenario %s: %s", report.Scenario.Name, report.Scenario.Title)))
	b.WriteString("\n")

	for _, gas := range emissions.Gases {
		line := fmt.Sprintf("%-*s %s g", detailColWidth, string(gas), scenario.FormatGrams(report.Total[gas]))
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%-*s %s t", detailColWidth, "CO2e", scenario.FormatTonnes(report.CO2eTonnes())))
	return b.String()
}

// RunCompare launches the browser over the given reports.
func RunCompare(reports []*scenario.Report, baseline string) error {
	model, err := NewCompareModel(reports, baseline)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("running comparison TUI: %w", err)
	}
	return nil
}
