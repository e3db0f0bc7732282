// Package scenario assembles emission inventories for complete South Pole
// resupply scenarios: the transport legs that move hardware and fuel to the
// station, the well-to-pump production of the voyage fuel, and the embodied
// manufacturing emissions of the delivered hardware.
package scenario

import (
	"fmt"
	"time"

	"github.com/WynonaL/southpole/internal/emissions"
)

// EnergyMix describes the energy-system hardware and fuel delivered to the
// station under a scenario.
type EnergyMix struct {
	// SolarKWp is installed PV capacity in kW peak.
	SolarKWp float64 `yaml:"solar_kwp" json:"solar_kwp"`

	// TurbineKW is the power rating of a single wind turbine.
	TurbineKW float64 `yaml:"turbine_kw" json:"turbine_kw"`

	// WindKW is total installed wind capacity in kW.
	WindKW float64 `yaml:"wind_kw" json:"wind_kw"`

	// BESSPowerKW is the power rating of the battery system. Carried for
	// sizing context; it does not affect mass or emissions.
	BESSPowerKW float64 `yaml:"bess_power_kw" json:"bess_power_kw"`

	// BESSEnergyKWh is battery storage energy capacity in kWh.
	BESSEnergyKWh float64 `yaml:"bess_energy_kwh" json:"bess_energy_kwh"`

	// DieselGallons is the diesel volume shipped to the station.
	DieselGallons float64 `yaml:"diesel_gallons" json:"diesel_gallons"`
}

// Validate checks the mix for internally inconsistent sizing.
func (m EnergyMix) Validate() error {
	if m.WindKW > 0 && m.TurbineKW <= 0 {
		return fmt.Errorf("%w: wind capacity requires a positive turbine rating", ErrInvalidMix)
	}
	for _, v := range []float64{m.SolarKWp, m.TurbineKW, m.WindKW, m.BESSPowerKW, m.BESSEnergyKWh, m.DieselGallons} {
		if v < 0 {
			return fmt.Errorf("%w: capacities cannot be negative", ErrInvalidMix)
		}
	}
	return nil
}

// Scenario is a named resupply configuration.
type Scenario struct {
	// Name is the short identifier used on the command line ("b", "c", ...).
	Name string `yaml:"name" json:"name"`

	// Title is the one-line human label.
	Title string `yaml:"title" json:"title"`

	// Description narrates the scenario's assumptions.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Mix is the delivered hardware and fuel.
	Mix EnergyMix `yaml:"mix" json:"mix"`
}

// Run computes the full emission report for the scenario: transport legs,
// voyage fuel production, embodied hardware emissions, and the consolidated
// CO2-equivalent total.
func (s Scenario) Run() (*Report, error) {
	if err := s.Mix.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	transport, err := TransportPlan(s.Mix)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: transport plan: %w", s.Name, err)
	}

	// One well-to-pump accounting of the voyage fuel per dispatched
	// resupply chain: the full ocean distance plus the traverse.
	fuel := emissions.Inventory{}
	if transport.AnyDispatched() {
		fuel, err = emissions.VoyageFuelProduction(OceanLegMiles+IcebreakerLegMiles, TraverseLegMiles)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: voyage fuel: %w", s.Name, err)
		}
	}

	embodied, err := emissions.Embodied(emissions.HardwareSpec{
		SolarKWp:      s.Mix.SolarKWp,
		WindKW:        s.Mix.WindKW,
		BESSEnergyKWh: s.Mix.BESSEnergyKWh,
		DieselGallons: s.Mix.DieselGallons,
	})
	if err != nil {
		return nil, fmt.Errorf("scenario %q: embodied: %w", s.Name, err)
	}

	total := emissions.Sum(transport.Total(), fuel, embodied.Consolidate())
	co2e, err := emissions.CO2Equivalent(total)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: co2e: %w", s.Name, err)
	}

	return &Report{
		ID:             newReportID(),
		GeneratedAt:    time.Now().UTC(),
		Scenario:       s,
		Transport:      transport,
		FuelProduction: fuel,
		Embodied:       embodied,
		Total:          total,
		CO2eGrams:      co2e,
	}, nil
}
