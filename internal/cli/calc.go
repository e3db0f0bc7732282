package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WynonaL/southpole/internal/emissions"
	"github.com/WynonaL/southpole/internal/scenario"
)

// newCalcCmd creates the calc command group exposing the leaf emission
// calculators directly.
func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "calc", Short: "Single-leg emission calculators"}
	cmd.AddCommand(
		newCalcTruckCmd(), newCalcTankerCmd(), newCalcFuelCmd(),
		newCalcDieselCmd(), newCalcEmbodiedCmd(),
	)
	return cmd
}

// newCalcTruckCmd creates the "calc truck" subcommand.
func newCalcTruckCmd() *cobra.Command {
	var miles, cargoTons, trips float64

	cmd := &cobra.Command{
		Use:   "truck",
		Short: "Combustion emissions of a truck leg (loaded out, empty back)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := emissions.TruckEmissions(miles, cargoTons, trips)
			if err != nil {
				return fmt.Errorf("truck emissions: %w", err)
			}
			title := fmt.Sprintf("Truck: %.0f mi, %.2f t cargo, %.1f trips", miles, cargoTons, trips)
			return writeInventory(cmd.OutOrStdout(), title, inv)
		},
	}

	cmd.Flags().Float64Var(&miles, "miles", 0, "one-way distance per trip")
	cmd.Flags().Float64Var(&cargoTons, "cargo-tons", 0, "cargo per truck on the loaded leg, short tons")
	cmd.Flags().Float64Var(&trips, "trips", 1, "number of round trips")
	_ = cmd.MarkFlagRequired("miles")

	return cmd
}

// newCalcTankerCmd creates the "calc tanker" subcommand.
func newCalcTankerCmd() *cobra.Command {
	var miles, cargoTons, tankers float64

	cmd := &cobra.Command{
		Use:   "tanker",
		Short: "Combustion emissions of an ocean tanker leg (loaded out, empty back)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := emissions.TankerEmissions(miles, cargoTons, tankers)
			if err != nil {
				return fmt.Errorf("tanker emissions: %w", err)
			}
			title := fmt.Sprintf("Tanker: %.0f mi, %.2f t cargo, %.0f vessels", miles, cargoTons, tankers)
			return writeInventory(cmd.OutOrStdout(), title, inv)
		},
	}

	cmd.Flags().Float64Var(&miles, "miles", 0, "one-way distance")
	cmd.Flags().Float64Var(&cargoTons, "cargo-tons", 0, "cargo per vessel on the loaded leg, short tons")
	cmd.Flags().Float64Var(&tankers, "tankers", 1, "number of vessels")
	_ = cmd.MarkFlagRequired("miles")

	return cmd
}

// newCalcFuelCmd creates the "calc fuel" subcommand.
func newCalcFuelCmd() *cobra.Command {
	var tankerMiles, truckMiles float64

	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Well-to-pump emissions of producing one voyage's fuel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := emissions.VoyageFuelProduction(tankerMiles, truckMiles)
			if err != nil {
				return fmt.Errorf("voyage fuel production: %w", err)
			}
			title := fmt.Sprintf("Voyage fuel: %.0f tanker mi, %.0f truck mi", tankerMiles, truckMiles)
			return writeInventory(cmd.OutOrStdout(), title, inv)
		},
	}

	cmd.Flags().Float64Var(&tankerMiles, "tanker-miles", 0, "ocean tanker distance")
	cmd.Flags().Float64Var(&truckMiles, "truck-miles", 0, "truck distance")

	return cmd
}

// newCalcDieselCmd creates the "calc diesel" subcommand.
func newCalcDieselCmd() *cobra.Command {
	var gallons float64

	cmd := &cobra.Command{
		Use:   "diesel",
		Short: "Well-to-pump emissions of producing diesel fuel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := emissions.DieselProduction(gallons)
			if err != nil {
				return fmt.Errorf("diesel production: %w", err)
			}
			title := fmt.Sprintf("Diesel production: %.0f gal", gallons)
			return writeInventory(cmd.OutOrStdout(), title, inv)
		},
	}

	cmd.Flags().Float64Var(&gallons, "gallons", 0, "diesel volume in gallons")
	_ = cmd.MarkFlagRequired("gallons")

	return cmd
}

// newCalcEmbodiedCmd creates the "calc embodied" subcommand.
func newCalcEmbodiedCmd() *cobra.Command {
	var solar, wind, bessEnergy, diesel float64

	cmd := &cobra.Command{
		Use:   "embodied",
		Short: "Embodied manufacturing emissions of energy hardware",
		RunE: func(cmd *cobra.Command, _ []string) error {
			breakdown, err := emissions.Embodied(emissions.HardwareSpec{
				SolarKWp:      solar,
				WindKW:        wind,
				BESSEnergyKWh: bessEnergy,
				DieselGallons: diesel,
			})
			if err != nil {
				return fmt.Errorf("embodied emissions: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "BESS\t%s g CO2e\n", scenario.FormatGrams(breakdown.BESSCO2e))
			fmt.Fprintf(w, "Solar\t%s g CO2e\n", scenario.FormatGrams(breakdown.SolarCO2e))
			fmt.Fprintf(w, "Wind\t%s g CO2e\n", scenario.FormatGrams(breakdown.WindCO2e))
			return writeInventory(w, "Diesel production:", breakdown.Diesel)
		},
	}

	cmd.Flags().Float64Var(&solar, "solar-kwp", 0, "PV capacity in kWp")
	cmd.Flags().Float64Var(&wind, "wind-kw", 0, "wind capacity in kW")
	cmd.Flags().Float64Var(&bessEnergy, "bess-kwh", 0, "battery energy capacity in kWh")
	cmd.Flags().Float64Var(&diesel, "diesel-gallons", 0, "diesel volume in gallons")

	return cmd
}
