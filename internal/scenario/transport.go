package scenario

import (
	"fmt"

	"github.com/WynonaL/southpole/internal/emissions"
)

// Route distances and vehicle allocations for the resupply chain. Cargo
// sails from the port of origin to McMurdo on one tanker, transfers to an
// icebreaker-escorted pair for the final ice approach, then rides the South
// Pole overland Traverse (SPoT) to the station.
const (
	// OceanLegMiles is the open-ocean leg, one loaded tanker.
	OceanLegMiles = 6900.0

	// IcebreakerLegMiles is the ice-edge approach. Two vessels make the
	// trip and the cargo is split evenly between them.
	IcebreakerLegMiles = 2415.0

	// IcebreakerVessels is the vessel count on the ice-edge approach.
	IcebreakerVessels = 2.0

	// TraverseLegMiles is the overland SPoT leg from McMurdo to the
	// station.
	TraverseLegMiles = 1030.0

	// TraverseVehicles is the tractor count of one SPoT convoy; PV and
	// diesel cargo is split evenly across it.
	TraverseVehicles = 9.0

	// TrucksPerTurbine is the number of traverse vehicles needed to move
	// one disassembled turbine.
	TrucksPerTurbine = 7.0

	// BESSShuttleMiles is the short positioning shuttle for battery
	// containers at the station end.
	BESSShuttleMiles = 100.0
)

// TransportBreakdown holds per-component transport emissions for one
// scenario.
type TransportBreakdown struct {
	Wind   emissions.Inventory `json:"wind_turbines_transport"`
	PV     emissions.Inventory `json:"pv_panels_transport"`
	BESS   emissions.Inventory `json:"bess_units_transport"`
	Diesel emissions.Inventory `json:"diesel_transport"`
}

// Total sums the component inventories.
func (b TransportBreakdown) Total() emissions.Inventory {
	return emissions.Sum(b.Wind, b.PV, b.BESS, b.Diesel)
}

// AnyDispatched reports whether any component actually shipped.
func (b TransportBreakdown) AnyDispatched() bool {
	for _, inv := range []emissions.Inventory{b.Wind, b.PV, b.BESS, b.Diesel} {
		if len(inv) > 0 {
			return true
		}
	}
	return false
}

// TransportPlan computes transport emissions for every component of the mix.
// Components with zero delivered quantity dispatch no vehicles and
// contribute empty inventories.
func TransportPlan(mix EnergyMix) (TransportBreakdown, error) {
	if err := mix.Validate(); err != nil {
		return TransportBreakdown{}, err
	}

	var plan TransportBreakdown
	var err error

	if mix.WindKW > 0 {
		turbines := mix.WindKW / mix.TurbineKW
		cargoTons := turbines * emissions.TurbineWeightTons
		trucks := turbines * TrucksPerTurbine
		plan.Wind, err = shipComponent(cargoTons, TraverseLegMiles, cargoTons/trucks, trucks)
		if err != nil {
			return TransportBreakdown{}, fmt.Errorf("wind: %w", err)
		}
	}

	if mix.SolarKWp > 0 {
		cargoTons := mix.SolarKWp * emissions.SolarGramsPerKW / emissions.GramsPerShortTon
		plan.PV, err = shipComponent(cargoTons, TraverseLegMiles, cargoTons/TraverseVehicles, TraverseVehicles)
		if err != nil {
			return TransportBreakdown{}, fmt.Errorf("pv: %w", err)
		}
	}

	if mix.BESSEnergyKWh > 0 {
		units := mix.BESSEnergyKWh / emissions.BESSContainerKWh
		cargoTons := units * emissions.BESSContainerKg / emissions.KgPerMetricTon
		plan.BESS, err = shipComponent(cargoTons, BESSShuttleMiles, cargoTons/units, units)
		if err != nil {
			return TransportBreakdown{}, fmt.Errorf("bess: %w", err)
		}
	}

	if mix.DieselGallons > 0 {
		cargoTons := mix.DieselGallons * emissions.DieselPoundsPerGallon / emissions.PoundsPerShortTon
		plan.Diesel, err = shipComponent(cargoTons, TraverseLegMiles, cargoTons/TraverseVehicles, TraverseVehicles)
		if err != nil {
			return TransportBreakdown{}, fmt.Errorf("diesel: %w", err)
		}
	}

	return plan, nil
}

// shipComponent chains the three legs for one component: the ocean leg with
// the full cargo on one tanker, the icebreaker pair each carrying half, and
// the truck leg with the cargo split across the convoy.
func shipComponent(cargoTons, truckMiles, tonsPerTruck, trucks float64) (emissions.Inventory, error) {
	ocean, err := emissions.TankerEmissions(OceanLegMiles, cargoTons, 1)
	if err != nil {
		return nil, err
	}
	ice, err := emissions.TankerEmissions(IcebreakerLegMiles, cargoTons/IcebreakerVessels, IcebreakerVessels)
	if err != nil {
		return nil, err
	}
	land, err := emissions.TruckEmissions(truckMiles, tonsPerTruck, trucks)
	if err != nil {
		return nil, err
	}
	return emissions.Sum(ocean, ice, land), nil
}
