package emissions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbodied(t *testing.T) {
	// Hybrid microgrid sizing from the companion study.
	spec := HardwareSpec{
		SolarKWp:      180,
		WindKW:        570,
		BESSEnergyKWh: 3410,
		DieselGallons: 5600,
	}

	got, err := Embodied(spec)
	require.NoError(t, err)

	assert.InEpsilon(t, 750200000.0, got.BESSCO2e, 1e-12)
	assert.InEpsilon(t, 198000000.0, got.SolarCO2e, 1e-12)
	assert.InEpsilon(t, 389709000.0, got.WindCO2e, 1e-12)

	assert.InDelta(t, 9901611.0256, got.Diesel[GasCO2], 1e-4)
	assert.InDelta(t, 85065.59768, got.Diesel[GasCH4], 1e-6)
	assert.InDelta(t, 180.97576, got.Diesel[GasN2O], 1e-8)
}

func TestEmbodiedZeroHardware(t *testing.T) {
	got, err := Embodied(HardwareSpec{})
	require.NoError(t, err)

	assert.Zero(t, got.BESSCO2e)
	assert.Zero(t, got.SolarCO2e)
	assert.Zero(t, got.WindCO2e)
	for _, gas := range Gases {
		assert.Zero(t, got.Diesel[gas])
	}
}

func TestEmbodiedRejectsNegativeCapacity(t *testing.T) {
	_, err := Embodied(HardwareSpec{SolarKWp: -1})
	require.ErrorIs(t, err, ErrNegativeInput)

	_, err = Embodied(HardwareSpec{BESSEnergyKWh: math.NaN()})
	require.ErrorIs(t, err, ErrNotFinite)
}

func TestEmbodiedBreakdownConsolidate(t *testing.T) {
	b := EmbodiedBreakdown{
		BESSCO2e:  100,
		SolarCO2e: 200,
		WindCO2e:  300,
		Diesel:    Inventory{GasCO2: 50, GasCH4: 5, GasN2O: 0.5},
	}

	total := b.Consolidate()

	assert.InDelta(t, 650.0, total[GasCO2], 1e-12)
	assert.InDelta(t, 5.0, total[GasCH4], 1e-12)
	assert.InDelta(t, 0.5, total[GasN2O], 1e-12)

	// Booking pre-weighted CO2e against CO2 must not change the weighted
	// total: GWP100 of CO2 is one.
	co2e, err := CO2Equivalent(total)
	require.NoError(t, err)
	dieselCO2e, err := CO2Equivalent(b.Diesel)
	require.NoError(t, err)
	assert.InDelta(t, 600.0+dieselCO2e, co2e, 1e-9)
}

func TestEmbodiedBreakdownConsolidateNilDiesel(t *testing.T) {
	total := EmbodiedBreakdown{BESSCO2e: 10}.Consolidate()
	assert.InDelta(t, 10.0, total[GasCO2], 0)
}
