package scenario

import (
	"fmt"
	"sort"
	"strings"
)

// Preset scenarios B through E from the comparison study. B is the diesel
// status quo; C is the documented hybrid microgrid sizing; D and E are the
// wind-heavy and solar/battery-heavy variants.
//
//nolint:gochecknoglobals // Static preset registry in the config-presets style.
var presets = map[string]Scenario{
	"b": {
		Name:        "b",
		Title:       "Diesel status quo",
		Description: "Annual resupply entirely by diesel: full SPoT fuel delivery, no renewable hardware.",
		Mix: EnergyMix{
			DieselGallons: 124000,
		},
	},
	"c": {
		Name:        "c",
		Title:       "Hybrid renewable microgrid",
		Description: "Documented hybrid sizing: PV, NPS100C-24 turbines, containerized BESS, and a reduced diesel reserve.",
		Mix: EnergyMix{
			SolarKWp:      180,
			TurbineKW:     100,
			WindKW:        570,
			BESSPowerKW:   550,
			BESSEnergyKWh: 3410,
			DieselGallons: 5600,
		},
	},
	"d": {
		Name:        "d",
		Title:       "Wind-heavy variant",
		Description: "Larger turbine fleet with smaller PV and storage, and a larger diesel reserve for wind lulls.",
		Mix: EnergyMix{
			SolarKWp:      60,
			TurbineKW:     100,
			WindKW:        900,
			BESSPowerKW:   550,
			BESSEnergyKWh: 2480,
			DieselGallons: 8400,
		},
	},
	"e": {
		Name:        "e",
		Title:       "Solar and battery heavy variant",
		Description: "Maximized PV with deep storage to ride through the austral night, minimal wind and diesel.",
		Mix: EnergyMix{
			SolarKWp:      400,
			TurbineKW:     100,
			WindKW:        200,
			BESSPowerKW:   550,
			BESSEnergyKWh: 4960,
			DieselGallons: 2800,
		},
	},
}

// Preset returns the named preset scenario. Names are case-insensitive.
func Preset(name string) (Scenario, error) {
	s, ok := presets[strings.ToLower(name)]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return s, nil
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Presets returns all preset scenarios sorted by name.
func Presets() []Scenario {
	out := make([]Scenario, 0, len(presets))
	for _, name := range PresetNames() {
		out = append(out, presets[name])
	}
	return out
}
