package emissions

// HardwareSpec describes the energy hardware whose manufacturing emissions
// are being assessed.
type HardwareSpec struct {
	// SolarKWp is installed PV capacity in kW peak.
	SolarKWp float64

	// WindKW is installed wind capacity in kW.
	WindKW float64

	// BESSEnergyKWh is battery storage energy capacity in kWh.
	BESSEnergyKWh float64

	// DieselGallons is the diesel volume whose production is attributed to
	// the configuration.
	DieselGallons float64
}

// EmbodiedBreakdown holds per-component embodied emissions. The hardware
// components carry single grams-CO2e figures because their lifecycle factors
// are published pre-weighted; diesel production keeps its per-gas inventory.
type EmbodiedBreakdown struct {
	// BESSCO2e is battery manufacturing emissions in grams CO2e.
	BESSCO2e float64

	// SolarCO2e is PV manufacturing emissions in grams CO2e.
	SolarCO2e float64

	// WindCO2e is turbine manufacturing emissions in grams CO2e.
	WindCO2e float64

	// Diesel is the per-gas inventory of diesel production emissions.
	Diesel Inventory
}

// Embodied calculates manufacturing emissions for the hardware in spec:
// lifecycle-assessment factors per unit capacity for the renewables, and
// well-to-pump production emissions for the diesel volume.
func Embodied(spec HardwareSpec) (EmbodiedBreakdown, error) {
	if err := checkInputs(spec.SolarKWp, spec.WindKW, spec.BESSEnergyKWh, spec.DieselGallons); err != nil {
		return EmbodiedBreakdown{}, err
	}

	diesel, err := DieselProduction(spec.DieselGallons)
	if err != nil {
		return EmbodiedBreakdown{}, err
	}

	return EmbodiedBreakdown{
		BESSCO2e:  spec.BESSEnergyKWh * BESSEmbodiedGramsPerKWh,
		SolarCO2e: spec.SolarKWp * SolarEmbodiedGramsPerKWp,
		WindCO2e:  spec.WindKW * WindEmbodiedGramsPerKW,
		Diesel:    diesel.Clone(),
	}, nil
}

// Consolidate folds the breakdown into a single inventory. The pre-weighted
// CO2e figures for the hardware components are booked against the CO2
// species, which leaves the CO2-equivalent total unchanged because CO2 has a
// GWP100 weight of one.
func (b EmbodiedBreakdown) Consolidate() Inventory {
	total := b.Diesel.Clone()
	if total == nil {
		total = Inventory{}
	}
	total[GasCO2] += b.BESSCO2e + b.SolarCO2e + b.WindCO2e
	return total
}
