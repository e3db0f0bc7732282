package emissions

// Fuel properties.
// Source: EPA fuel property tables.
const (
	// DieselBtuPerGallon is the energy content of one gallon of diesel.
	DieselBtuPerGallon = 138700.0

	// ResidualOilBtuPerGallon is the energy content of one gallon of the
	// residual fuel oil burned by ocean tankers.
	ResidualOilBtuPerGallon = 149700.0

	// BtuPerMMBtu converts Btu to million Btu, the unit the emission
	// factors are expressed in.
	BtuPerMMBtu = 1e6
)

// Heavy-duty truck parameters for the overland traverse legs.
// Source: GREET model, class 8 diesel truck.
const (
	// TruckLoadedBtuPerTonMile is the truck's energy intensity on the
	// loaded leg, per short ton of cargo per mile.
	TruckLoadedBtuPerTonMile = 684.0

	// TruckEmptyBtuPerMile is the truck's energy use on the empty return
	// leg.
	TruckEmptyBtuPerMile = 13567.0

	// TruckMilesPerGallon is the fleet-average fuel economy used for
	// voyage fuel accounting. Source: EPA.
	TruckMilesPerGallon = 5.6
)

// Ocean tanker parameters.
// Source: GREET model unless noted.
const (
	// TankerLoadedBtuPerTonMile is the tanker's energy intensity on the
	// loaded leg, per short ton of cargo per mile.
	TankerLoadedBtuPerTonMile = 43.0

	// TankerBtuPerHpHour is the tanker engine's energy consumption per
	// horsepower-hour.
	TankerBtuPerHpHour = 5439.0

	// TankerHorsepower is the rated power of the modeled ocean tanker.
	TankerHorsepower = 19170.0

	// TankerAverageSpeedMPH is the tanker's average cruising speed.
	TankerAverageSpeedMPH = 20.0

	// TankerBackhaulLoadFactor is the fraction of rated power used on the
	// empty return leg.
	TankerBackhaulLoadFactor = 0.70

	// TankerEngineEfficiency is the assumed average engine efficiency for
	// fuel-consumption accounting. Source: C2E2, typical range 45-52%.
	TankerEngineEfficiency = 0.50
)

// combustion factor sets, in grams emitted per mmBtu of fuel burned.
// Source: GREET model.
var (
	truckCombustionFactors = factorSet{
		GasCO2: 89.77044869,
		GasCH4: 0.109408298,
		GasN2O: 0.000355609,
	}

	tankerCombustionFactors = factorSet{
		GasCO2: 262.9991694,
		GasCH4: 0.293135661,
		GasN2O: 0.006037729,
	}
)

// Well-to-pump fuel production factor sets, in grams emitted per mmBtu of
// fuel produced. Source: GREET model.
var (
	dieselProductionFactors = factorSet{
		GasCO2: 12747.98,
		GasCH4: 109.519,
		GasN2O: 0.233,
	}

	residualOilProductionFactors = factorSet{
		GasCO2: 9670.93,
		GasCH4: 100.419,
		GasN2O: 0.162,
	}
)

// Embodied manufacturing emissions of renewable hardware, in grams CO2e per
// unit of installed capacity. Sources: published lifecycle assessments cited
// in the companion paper.
const (
	// BESSEmbodiedGramsPerKWh is for lithium-ion battery energy storage.
	BESSEmbodiedGramsPerKWh = 220000.0

	// SolarEmbodiedGramsPerKWp is for crystalline-silicon PV capacity.
	SolarEmbodiedGramsPerKWp = 1100000.0

	// WindEmbodiedGramsPerKW is for the NPS100C-24 class of turbine.
	WindEmbodiedGramsPerKW = 683700.0
)

// Cargo mass and unit conversion constants.
const (
	// GramsPerShortTon converts grams to US short tons.
	GramsPerShortTon = 907185.0

	// PoundsPerShortTon converts pounds to US short tons.
	PoundsPerShortTon = 2000.0

	// DieselPoundsPerGallon is the mass of one gallon of diesel.
	DieselPoundsPerGallon = 6.5

	// SolarGramsPerKW is the shipping mass of PV hardware per kW of
	// capacity.
	SolarGramsPerKW = 160.0

	// BESSContainerKg is the shipping mass of one 20 ft battery container.
	// Source: MicroGreen product data.
	BESSContainerKg = 18000.0

	// BESSContainerKWh is the energy capacity of one battery container.
	BESSContainerKWh = 1240.0

	// TurbineWeightTons is the shipping mass of one NPS100C-24 wind
	// turbine, in short tons.
	TurbineWeightTons = 19.8

	// KgPerMetricTon converts kilograms to metric tons.
	KgPerMetricTon = 1000.0
)
