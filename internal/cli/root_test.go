package cli_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WynonaL/southpole/internal/cli"
)

// execute runs the root command with args against an isolated config home
// and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithHome(t, t.TempDir(), args...)
}

// executeWithHome runs the root command with SOUTHPOLE_HOME pointed at home,
// keeping the developer's real config out of the test.
func executeWithHome(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SOUTHPOLE_HOME", home)
	t.Setenv("SOUTHPOLE_LOG_LEVEL", "error")

	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := cli.NewRootCmd("1.2.3")
	require.NotNil(t, cmd)
	assert.Equal(t, "southpole", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)
}

func TestScenarioListCmd(t *testing.T) {
	out, err := execute(t, "scenario", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Diesel status quo")
	assert.Contains(t, out, "Hybrid renewable microgrid")
}

func TestScenarioRunCmdTable(t *testing.T) {
	out, err := execute(t, "scenario", "run", "c")
	require.NoError(t, err)

	assert.Contains(t, out, "Scenario c: Hybrid renewable microgrid")
	assert.Contains(t, out, "CO2-equivalent (AR6 GWP100)")
}

// A config home with a customized default output format must drive the
// rendering, and only the home the test points at.
func TestScenarioRunCmdUsesConfiguredOutputFormat(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "config.yaml"), "output:\n  default_format: json\n")

	out, err := executeWithHome(t, home, "scenario", "run", "c")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "c", decoded["scenario"].(map[string]any)["name"])
}

func TestScenarioRunCmdJSON(t *testing.T) {
	out, err := execute(t, "scenario", "run", "b", "--output", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "b", decoded["scenario"].(map[string]any)["name"])
	assert.Positive(t, decoded["co2e_grams"].(float64))
}

func TestScenarioRunCmdErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "unknown preset",
			args:     []string{"scenario", "run", "z"},
			contains: "unknown scenario",
		},
		{
			name:     "no scenario given",
			args:     []string{"scenario", "run"},
			contains: "preset name or --file",
		},
		{
			name:     "name and file are exclusive",
			args:     []string{"scenario", "run", "b", "--file", "x.yaml"},
			contains: "cannot combine",
		},
		{
			name:     "bad output format",
			args:     []string{"scenario", "run", "b", "--output", "xml"},
			contains: "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestScenarioRunCmdFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := "title: File scenario\nmix:\n  diesel_gallons: 1000\n"
	writeFile(t, path, body)

	out, err := execute(t, "scenario", "run", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Scenario custom: File scenario")
}

func TestScenarioCompareCmd(t *testing.T) {
	out, err := execute(t, "scenario", "compare")
	require.NoError(t, err)

	assert.Contains(t, out, "b (baseline)")
	assert.Contains(t, out, "t CO2e per scenario")
}

func TestScenarioCompareCmdJSON(t *testing.T) {
	out, err := execute(t, "scenario", "compare", "b", "c", "--output", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "b", decoded["baseline"])
	assert.Len(t, decoded["rows"], 2)
}

func TestScenarioCompareCmdInteractiveExcludesOutput(t *testing.T) {
	_, err := execute(t, "scenario", "compare", "--interactive", "--output", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot combine --interactive with --output")
}

func TestScenarioCompareCmdBadBaseline(t *testing.T) {
	_, err := execute(t, "scenario", "compare", "c", "d", "--baseline", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseline")
}

func TestCalcTruckCmd(t *testing.T) {
	out, err := execute(t, "calc", "truck", "--miles", "1000", "--cargo-tons", "20", "--trips", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Truck: 1000 mi")
	assert.Contains(t, out, "CO2")
	assert.Contains(t, out, "CO2e")
	// 2445.98 g CO2 rounds to 2,446.
	assert.Contains(t, out, "2,446 g")
}

func TestCalcTankerCmd(t *testing.T) {
	out, err := execute(t, "calc", "tanker", "--miles", "5000", "--cargo-tons", "300", "--tankers", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Tanker: 5000 mi")
	assert.Contains(t, out, "9,631,548 g")
}

func TestCalcDieselCmdRequiresGallons(t *testing.T) {
	_, err := execute(t, "calc", "diesel")
	require.Error(t, err)
}

func TestCalcEmbodiedCmd(t *testing.T) {
	out, err := execute(t, "calc", "embodied",
		"--solar-kwp", "180", "--wind-kw", "570", "--bess-kwh", "3410", "--diesel-gallons", "5600")
	require.NoError(t, err)

	assert.Contains(t, out, "750,200,000 g CO2e")
	assert.Contains(t, out, "198,000,000 g CO2e")
	assert.Contains(t, out, "389,709,000 g CO2e")
}

func TestCalcTruckCmdNegativeInput(t *testing.T) {
	_, err := execute(t, "calc", "truck", "--miles=-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestConfigInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default configuration")
	assert.FileExists(t, path)
}
