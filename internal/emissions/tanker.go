package emissions

// TankerEmissions calculates combustion emissions for ocean tankers carrying
// cargo on the loaded outbound leg and returning empty.
//
// miles is the one-way distance, cargoTons the cargo in short tons carried
// by each tanker, and tankers the number of vessels making the trip.
//
// The loaded leg burns TankerLoadedBtuPerTonMile per ton of cargo per mile.
// The backhaul burn rate is derived from the engine's rated power: energy
// consumption per hp-hour times horsepower times the backhaul load factor,
// spread over the miles covered in an hour at average speed.
func TankerEmissions(miles, cargoTons float64, tankers float64) (Inventory, error) {
	if err := checkInputs(miles, cargoTons, tankers); err != nil {
		return nil, err
	}

	loadedBtuPerMile := TankerLoadedBtuPerTonMile * cargoTons
	backhaulBtuPerMile := TankerBtuPerHpHour * TankerHorsepower * TankerBackhaulLoadFactor / TankerAverageSpeedMPH

	total := make(Inventory, len(tankerCombustionFactors))
	for gas, factor := range tankerCombustionFactors {
		loaded := factor * loadedBtuPerMile / BtuPerMMBtu * miles
		backhaul := factor * backhaulBtuPerMile / BtuPerMMBtu * miles
		total[gas] = (loaded + backhaul) * tankers
	}
	return total, nil
}
