package estimation

import "time"

// Confidence grades an estimate by how many of its inputs came from
// authoritative sources rather than defaults.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Vehicle type categories used for clamping and defaults.
const (
	VehicleTypeCar        = "car"
	VehicleTypeMotorcycle = "motorcycle"
	VehicleTypeTruck      = "truck"
)

// Range brackets the plausible band around an estimate.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Estimate is a consumption figure with provenance. Unit is km/L for
// combustion vehicles and kWh/100km for electric ones; callers presenting a
// low-confidence value should treat it as an editable default, which is why
// Confidence and BasedOn are part of the result.
type Estimate struct {
	Value      float64    `json:"value"`
	Unit       string     `json:"unit"`
	Confidence Confidence `json:"confidence"`
	BasedOn    []string   `json:"basedOn"`
	Range      Range      `json:"range"`
}

// Units.
const (
	UnitKmPerLiter  = "km/L"
	UnitKWhPer100Km = "kWh/100km"
)

func confidenceFromDefaults(defaulted int) Confidence {
	switch {
	case defaulted == 0:
		return ConfidenceHigh
	case defaulted == 1:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// spreadFor widens the plausible band as confidence drops.
func spreadFor(c Confidence) float64 {
	switch c {
	case ConfidenceHigh:
		return 0.10
	case ConfidenceMedium:
		return 0.18
	default:
		return 0.25
	}
}

// nowYear is swappable in tests so age math stays deterministic.
var nowYear = func() int { return time.Now().Year() }

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
