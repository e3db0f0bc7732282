package scenario

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPresets(t *testing.T, names ...string) []*Report {
	t.Helper()
	reports := make([]*Report, 0, len(names))
	for _, name := range names {
		s, err := Preset(name)
		require.NoError(t, err)
		r, err := s.Run()
		require.NoError(t, err)
		reports = append(reports, r)
	}
	return reports
}

func TestBuildComparison(t *testing.T) {
	reports := runPresets(t, "b", "c")

	cmp, err := BuildComparison(reports, "b")
	require.NoError(t, err)

	require.Len(t, cmp.Rows, 2)
	assert.Equal(t, "b", cmp.Baseline)

	baseline := cmp.Rows[0]
	assert.Zero(t, baseline.DeltaTonnes)
	assert.Zero(t, baseline.DeltaPercent)

	hybrid := cmp.Rows[1]
	assert.InDelta(t, hybrid.CO2eTonnes-baseline.CO2eTonnes, hybrid.DeltaTonnes, 1e-9)
	assert.Positive(t, hybrid.DeltaPercent)
}

func TestBuildComparisonMissingBaseline(t *testing.T) {
	reports := runPresets(t, "c")

	_, err := BuildComparison(reports, "b")
	require.ErrorIs(t, err, ErrUnknownScenario)
}

func TestComparisonRender(t *testing.T) {
	reports := runPresets(t, "b", "c")
	cmp, err := BuildComparison(reports, "b")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cmp.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "t CO2e per scenario")
	assert.Contains(t, out, "b (baseline)")
	assert.Contains(t, out, "DELTA (t)")
	assert.Contains(t, out, "Hybrid renewable microgrid")
}
