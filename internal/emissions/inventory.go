package emissions

import "math"

// Gas identifies a greenhouse-gas species.
type Gas string

// Gas species tracked by the calculators.
const (
	GasCO2 Gas = "CO2"
	GasCH4 Gas = "CH4"
	GasN2O Gas = "N2O"
)

// Gases lists the tracked species in canonical display order.
//
//nolint:gochecknoglobals // Fixed ordering shared by renderers.
var Gases = []Gas{GasCO2, GasCH4, GasN2O}

// factorSet maps a gas species to an emission factor in grams per mmBtu.
type factorSet map[Gas]float64

// AR6 100-year global warming potentials, relative to CO2.
// Source: IPCC Sixth Assessment Report, Table 7.15.
const (
	GWP100CO2 = 1.0
	GWP100CH4 = 29.8
	GWP100N2O = 273.0
)

// gwp100 holds the GWP100 weight for each tracked gas.
//
//nolint:gochecknoglobals // Lookup table for CO2Equivalent.
var gwp100 = map[Gas]float64{
	GasCO2: GWP100CO2,
	GasCH4: GWP100CH4,
	GasN2O: GWP100N2O,
}

// Inventory maps a gas species to an emitted mass in grams.
type Inventory map[Gas]float64

// Sum combines any number of inventories by component-wise addition over the
// union of their keys. Species missing from some operands contribute only
// their available sums. The inputs are not modified.
func Sum(inventories ...Inventory) Inventory {
	total := Inventory{}
	for _, inv := range inventories {
		for gas, grams := range inv {
			total[gas] += grams
		}
	}
	return total
}

// Clone returns a copy of the inventory.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for gas, grams := range inv {
		out[gas] = grams
	}
	return out
}

// Scale returns a copy of the inventory with every mass multiplied by k.
func (inv Inventory) Scale(k float64) Inventory {
	out := make(Inventory, len(inv))
	for gas, grams := range inv {
		out[gas] = grams * k
	}
	return out
}

// CO2Equivalent reduces an inventory to a single grams-CO2e figure by
// weighting each species with its AR6 GWP100 value and summing.
//
// Returns ErrUnknownGas for species without a GWP100 weight,
// ErrNegativeMass for negative masses, and ErrNotFinite for NaN or
// infinite masses.
func CO2Equivalent(inv Inventory) (float64, error) {
	var total float64
	for gas, grams := range inv {
		weight, ok := gwp100[gas]
		if !ok {
			return 0, ErrUnknownGas
		}
		if math.IsNaN(grams) || math.IsInf(grams, 0) {
			return 0, ErrNotFinite
		}
		if grams < 0 {
			return 0, ErrNegativeMass
		}
		total += grams * weight
	}

	if math.IsInf(total, 0) {
		return 0, ErrNotFinite
	}
	return total, nil
}
