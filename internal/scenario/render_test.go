package scenario

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReportTable(t *testing.T) {
	s, err := Preset("c")
	require.NoError(t, err)
	report, err := s.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderReportTable(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "Scenario c: Hybrid renewable microgrid")
	assert.Contains(t, out, "wind turbine transport")
	assert.Contains(t, out, "voyage fuel production")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "CO2-equivalent (AR6 GWP100)")
	// Thousand separators on the headline figure.
	assert.Contains(t, out, "1,397,783,831 g CO2e")
}

func TestRenderReportTableSkipsEmptyComponents(t *testing.T) {
	s, err := Preset("b")
	require.NoError(t, err)
	report, err := s.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderReportTable(&buf, report))

	out := buf.String()
	assert.NotContains(t, out, "wind turbine transport")
	assert.NotContains(t, out, "pv panel transport")
	assert.Contains(t, out, "diesel transport")
}

func TestReportWriteJSON(t *testing.T) {
	s, err := Preset("c")
	require.NoError(t, err)
	report, err := s.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, report.ID, decoded["id"])
	assert.InEpsilon(t, report.CO2eGrams, decoded["co2e_grams"].(float64), 1e-12)
	assert.InEpsilon(t, report.CO2eTonnes(), decoded["co2e_tonnes"].(float64), 1e-12)

	embodied, ok := decoded["embodied"].(map[string]any)
	require.True(t, ok)
	assert.InEpsilon(t, report.Embodied.BESSCO2e, embodied["bess_co2e_grams"].(float64), 1e-12)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "1,392,943,235", FormatGrams(1392943235.12))
	assert.Equal(t, "0", FormatGrams(0.4))
	assert.Equal(t, "1,397.31", FormatTonnes(1397.309))
	assert.Equal(t, "+12.50", FormatDelta(12.5))
	assert.Equal(t, "-12.50", FormatDelta(-12.5))
	assert.Equal(t, "+0.00", FormatDelta(0))
}
