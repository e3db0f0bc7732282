package emissions

// VoyageFuelProduction calculates the well-to-pump emissions of producing
// the fuel burned on a resupply voyage: residual oil for the ocean-tanker
// miles and diesel for the truck miles.
//
// Tanker fuel economy is derived from the engine's consumption per hp-hour
// and its assumed efficiency; the truck uses the fleet-average
// TruckMilesPerGallon. The fuel volumes are converted to mmBtu and the
// GREET production factors for each fuel applied.
func VoyageFuelProduction(tankerMiles, truckMiles float64) (Inventory, error) {
	if err := checkInputs(tankerMiles, truckMiles); err != nil {
		return nil, err
	}

	gallonsPerHourPerHp := TankerBtuPerHpHour / (ResidualOilBtuPerGallon * TankerEngineEfficiency)
	tankerMPG := TankerAverageSpeedMPH / gallonsPerHourPerHp

	tankerGallons := tankerMiles / tankerMPG
	truckGallons := truckMiles / TruckMilesPerGallon

	tankerMMBtu := tankerGallons * ResidualOilBtuPerGallon / BtuPerMMBtu
	truckMMBtu := truckGallons * DieselBtuPerGallon / BtuPerMMBtu

	total := make(Inventory, len(dieselProductionFactors))
	for _, gas := range Gases {
		total[gas] = tankerMMBtu*residualOilProductionFactors[gas] +
			truckMMBtu*dieselProductionFactors[gas]
	}
	return total, nil
}

// DieselProduction calculates the well-to-pump emissions of producing the
// given volume of diesel fuel, applying the GREET diesel production factors
// to the fuel's energy content.
func DieselProduction(gallons float64) (Inventory, error) {
	if err := checkInputs(gallons); err != nil {
		return nil, err
	}

	mmBtu := gallons * DieselBtuPerGallon / BtuPerMMBtu

	total := make(Inventory, len(dieselProductionFactors))
	for gas, factor := range dieselProductionFactors {
		total[gas] = mmBtu * factor
	}
	return total, nil
}
