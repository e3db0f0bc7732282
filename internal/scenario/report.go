package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/WynonaL/southpole/internal/emissions"
)

// Report is the full emission assessment of one scenario run.
type Report struct {
	// ID is a ULID identifying this run.
	ID string `json:"id"`

	// GeneratedAt is the UTC time the report was computed.
	GeneratedAt time.Time `json:"generated_at"`

	// Scenario is the configuration that was assessed.
	Scenario Scenario `json:"scenario"`

	// Transport breaks transport emissions down by component.
	Transport TransportBreakdown `json:"transport"`

	// FuelProduction is the well-to-pump inventory of the voyage fuel.
	FuelProduction emissions.Inventory `json:"fuel_production"`

	// Embodied is the manufacturing emissions breakdown.
	Embodied emissions.EmbodiedBreakdown `json:"-"`

	// Total is the consolidated per-gas inventory.
	Total emissions.Inventory `json:"total"`

	// CO2eGrams is the GWP100-weighted total in grams CO2e.
	CO2eGrams float64 `json:"co2e_grams"`
}

// embodiedJSON is the wire form of the embodied breakdown.
type embodiedJSON struct {
	BESSCO2e  float64             `json:"bess_co2e_grams"`
	SolarCO2e float64             `json:"solar_co2e_grams"`
	WindCO2e  float64             `json:"wind_co2e_grams"`
	Diesel    emissions.Inventory `json:"diesel_production"`
}

// MarshalJSON flattens the embodied breakdown into the report body.
func (r *Report) MarshalJSON() ([]byte, error) {
	type alias Report
	return json.Marshal(struct {
		*alias
		Embodied   embodiedJSON `json:"embodied"`
		CO2eTonnes float64      `json:"co2e_tonnes"`
	}{
		alias: (*alias)(r),
		Embodied: embodiedJSON{
			BESSCO2e:  r.Embodied.BESSCO2e,
			SolarCO2e: r.Embodied.SolarCO2e,
			WindCO2e:  r.Embodied.WindCO2e,
			Diesel:    r.Embodied.Diesel,
		},
		CO2eTonnes: r.CO2eTonnes(),
	})
}

// CO2eTonnes returns the weighted total in metric tons CO2e.
func (r *Report) CO2eTonnes() float64 {
	return r.CO2eGrams / 1e6
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// newReportID generates a ULID for a report run.
func newReportID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec // Report IDs are not security sensitive.
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
