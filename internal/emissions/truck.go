package emissions

import "math"

// TruckEmissions calculates combustion emissions for trucks hauling cargo
// over the overland traverse, accounting for the loaded outbound leg and the
// empty return leg.
//
// miles is the one-way distance per trip, cargoTons the cargo carried by
// each truck on the loaded leg in short tons, and trips the number of
// round trips. trips is a float because planners split a fixed cargo mass
// across a fractional fleet.
//
// The loaded leg burns TruckLoadedBtuPerTonMile per ton of cargo per mile;
// the empty leg burns TruckEmptyBtuPerMile. Per-gas emissions are the
// GREET combustion factors applied to the total mmBtu burned.
func TruckEmissions(miles, cargoTons, trips float64) (Inventory, error) {
	if err := checkInputs(miles, cargoTons, trips); err != nil {
		return nil, err
	}

	loadedBtuPerMile := TruckLoadedBtuPerTonMile * cargoTons

	total := make(Inventory, len(truckCombustionFactors))
	for gas, factor := range truckCombustionFactors {
		loaded := factor * loadedBtuPerMile / BtuPerMMBtu * miles
		empty := factor * TruckEmptyBtuPerMile / BtuPerMMBtu * miles
		total[gas] = (loaded + empty) * trips
	}
	return total, nil
}

// checkInputs validates calculator arguments: all must be finite and
// non-negative.
func checkInputs(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
		if v < 0 {
			return ErrNegativeInput
		}
	}
	return nil
}
