package emissions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name   string
		inputs []Inventory
		want   Inventory
	}{
		{
			name:   "no inputs yields empty inventory",
			inputs: nil,
			want:   Inventory{},
		},
		{
			name: "single inventory is copied through",
			inputs: []Inventory{
				{GasCO2: 100, GasCH4: 5},
			},
			want: Inventory{GasCO2: 100, GasCH4: 5},
		},
		{
			name: "overlapping keys are added component-wise",
			inputs: []Inventory{
				{GasCO2: 100, GasCH4: 5, GasN2O: 0.1},
				{GasCO2: 200, GasCH4: 10, GasN2O: 0.2},
			},
			want: Inventory{GasCO2: 300, GasCH4: 15, GasN2O: 0.3},
		},
		{
			name: "disjoint keys carry their available sums",
			inputs: []Inventory{
				{GasCO2: 100, Gas("NOx"): 50},
				{GasCO2: 200, Gas("SOx"): 30},
			},
			want: Inventory{GasCO2: 300, Gas("NOx"): 50, Gas("SOx"): 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum(tt.inputs...)
			require.Len(t, got, len(tt.want))
			for gas, grams := range tt.want {
				assert.InDelta(t, grams, got[gas], 1e-9, "gas %s", gas)
			}
		})
	}
}

func TestSumDoesNotModifyInputs(t *testing.T) {
	a := Inventory{GasCO2: 1}
	b := Inventory{GasCO2: 2}

	_ = Sum(a, b)

	assert.InDelta(t, 1.0, a[GasCO2], 0)
	assert.InDelta(t, 2.0, b[GasCO2], 0)
}

func TestCO2Equivalent(t *testing.T) {
	tests := []struct {
		name    string
		inv     Inventory
		want    float64
		wantErr error
	}{
		{
			name: "AR6 GWP100 weighting",
			inv:  Inventory{GasCO2: 100, GasCH4: 10, GasN2O: 1},
			// 100*1 + 10*29.8 + 1*273
			want: 671.0,
		},
		{
			name: "CO2 only passes through unweighted",
			inv:  Inventory{GasCO2: 12345.6},
			want: 12345.6,
		},
		{
			name: "empty inventory is zero",
			inv:  Inventory{},
			want: 0,
		},
		{
			name:    "unknown gas rejected",
			inv:     Inventory{Gas("SF6"): 1},
			wantErr: ErrUnknownGas,
		},
		{
			name:    "negative mass rejected",
			inv:     Inventory{GasCO2: -1},
			wantErr: ErrNegativeMass,
		},
		{
			name:    "NaN mass rejected",
			inv:     Inventory{GasCH4: math.NaN()},
			wantErr: ErrNotFinite,
		},
		{
			name:    "infinite mass rejected",
			inv:     Inventory{GasN2O: math.Inf(1)},
			wantErr: ErrNotFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CO2Equivalent(tt.inv)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestInventoryScale(t *testing.T) {
	inv := Inventory{GasCO2: 10, GasCH4: 1}

	scaled := inv.Scale(2.5)

	assert.InDelta(t, 25.0, scaled[GasCO2], 1e-12)
	assert.InDelta(t, 2.5, scaled[GasCH4], 1e-12)
	// Original untouched.
	assert.InDelta(t, 10.0, inv[GasCO2], 0)
}
