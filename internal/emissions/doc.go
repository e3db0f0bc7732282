// Package emissions implements the greenhouse-gas arithmetic for South Pole
// station resupply logistics.
//
// It models three emission sources: fuel combustion by the vehicles moving
// cargo (ocean tankers, icebreakers, SPoT traverse trucks), well-to-pump
// production of the fuel those vehicles burn, and embodied manufacturing
// emissions of renewable-energy hardware (solar PV, wind turbines, battery
// storage). Results are per-gas gram inventories (CO2, CH4, N2O) that can be
// summed and reduced to a single CO2-equivalent figure using AR6 GWP100
// weights.
//
// Energy intensities and emission factors come from the GREET model and EPA
// fuel property data; embodied factors come from published lifecycle
// assessments. See constants.go for per-value sourcing.
package emissions
