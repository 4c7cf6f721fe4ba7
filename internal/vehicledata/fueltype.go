package vehicledata

import "strings"

// Canonical fuel type values.
const (
	FuelGasoline = "Gasoline"
	FuelDiesel   = "Diesel"
	FuelElectric = "Electric"
	FuelUnknown  = "Unknown"
)

// ClassifyFuelType maps the registry's free-text fuel description (Hebrew) to
// a canonical fuel type plus a hybrid flag. Plug-in and regular hybrids are
// reported under their combustion fuel; only pure battery vehicles are
// Electric.
func ClassifyFuelType(raw string) (fuelType string, hybrid bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return FuelUnknown, false
	}
	lower := strings.ToLower(s)

	hybrid = strings.Contains(s, "היבריד") || strings.Contains(lower, "hybrid")

	switch {
	case !hybrid && (strings.Contains(s, "חשמל") || strings.Contains(lower, "electric")):
		return FuelElectric, false
	case strings.Contains(s, "דיזל") || strings.Contains(s, "סולר") || strings.Contains(lower, "diesel"):
		return FuelDiesel, hybrid
	case strings.Contains(s, "בנזין") || strings.Contains(lower, "gasoline") || strings.Contains(lower, "petrol"):
		return FuelGasoline, hybrid
	case hybrid:
		// "היברידי" with no base fuel named is in practice a gasoline hybrid.
		return FuelGasoline, true
	default:
		return FuelUnknown, false
	}
}
