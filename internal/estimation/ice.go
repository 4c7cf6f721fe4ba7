package estimation

import (
	"math"

	"fuelmeter/internal/vehicledata"
)

// Per-type clamp bounds in km/L. Registry and crowd data occasionally yield
// implausible outliers; clamping keeps them from reaching the user. Policy
// constants, preserved exactly.
const (
	carMaxKmPerLiter        = 30.0
	truckMaxKmPerLiter      = 20.0
	motorcycleMaxKmPerLiter = 60.0

	carMinKmPerLiter        = 4.0
	truckMinKmPerLiter      = 2.5
	motorcycleMinKmPerLiter = 8.0
)

// Defaults used when the lookup pipeline could not resolve a value. Each
// default downgrades confidence by one tier.
const (
	defaultCarCC        = 1600
	defaultTruckCC      = 2800
	defaultMotorcycleCC = 400

	defaultCarWeightKg        = 1400.0
	defaultTruckWeightKg      = 2500.0
	defaultMotorcycleWeightKg = 200.0
)

// Fuel-type adjustments relative to the gasoline baseline, informed by WLTP
// combined-cycle statistics.
const (
	dieselConsumptionFactor = 0.82
	hybridConsumptionFactor = 0.72
	agePenaltyPerYear       = 0.006
	maxAgeYears             = 25
)

// ICEParams are the inputs to the combustion estimator. Zero values mean
// unknown and are replaced by per-type defaults.
type ICEParams struct {
	VehicleType string
	EngineCC    int
	WeightKg    float64
	Year        int
	FuelType    string
	Hybrid      bool
}

// EstimateICE computes km/L from engine size, weight and age using a
// continuous formula (no lookup-table bins). Confidence is high when both CC
// and weight were provided, medium when one was defaulted, low when both
// were. The result is always positive and clamped per vehicle type.
func EstimateICE(params ICEParams) Estimate {
	vtype := params.VehicleType
	if vtype == "" {
		vtype = VehicleTypeCar
	}

	basedOn := make([]string, 0, 5)
	defaulted := 0

	cc := params.EngineCC
	if cc > 0 && vehicledata.ValidEngineCC(cc) {
		basedOn = append(basedOn, "engineCC")
	} else {
		cc = defaultCCFor(vtype)
		basedOn = append(basedOn, "defaultCC")
		defaulted++
	}

	weight := params.WeightKg
	if weight > 0 && (vtype == VehicleTypeMotorcycle || vehicledata.ValidWeightKg(weight)) {
		basedOn = append(basedOn, "curbWeight")
	} else {
		weight = defaultWeightFor(vtype)
		basedOn = append(basedOn, "defaultWeight")
		defaulted++
	}

	// Continuous baseline in L/100km: a fixed overhead plus a sub-linear
	// displacement term and a linear mass term, fitted against published
	// combined-cycle figures.
	liters := float64(cc) / 1000.0
	per100 := 1.2 + 2.2*math.Pow(liters, 0.9) + 2.0*(weight/1000.0)

	switch params.FuelType {
	case vehicledata.FuelDiesel:
		per100 *= dieselConsumptionFactor
		basedOn = append(basedOn, "fuelType:diesel")
	}
	if params.Hybrid {
		per100 *= hybridConsumptionFactor
		basedOn = append(basedOn, "hybrid")
	}

	if age := vehicleAge(params.Year); age > 0 {
		per100 *= 1.0 + agePenaltyPerYear*float64(age)
		basedOn = append(basedOn, "year")
	}

	kmPerLiter := 100.0 / per100
	min, max := clampBoundsFor(vtype)
	kmPerLiter = clamp(kmPerLiter, min, max)

	confidence := confidenceFromDefaults(defaulted)
	spread := spreadFor(confidence)
	return Estimate{
		Value:      round1(kmPerLiter),
		Unit:       UnitKmPerLiter,
		Confidence: confidence,
		BasedOn:    basedOn,
		Range: Range{
			Min: round1(clamp(kmPerLiter*(1-spread), min, max)),
			Max: round1(clamp(kmPerLiter*(1+spread), min, max)),
		},
	}
}

func defaultCCFor(vtype string) int {
	switch vtype {
	case VehicleTypeTruck:
		return defaultTruckCC
	case VehicleTypeMotorcycle:
		return defaultMotorcycleCC
	default:
		return defaultCarCC
	}
}

func defaultWeightFor(vtype string) float64 {
	switch vtype {
	case VehicleTypeTruck:
		return defaultTruckWeightKg
	case VehicleTypeMotorcycle:
		return defaultMotorcycleWeightKg
	default:
		return defaultCarWeightKg
	}
}

func clampBoundsFor(vtype string) (min, max float64) {
	switch vtype {
	case VehicleTypeTruck:
		return truckMinKmPerLiter, truckMaxKmPerLiter
	case VehicleTypeMotorcycle:
		return motorcycleMinKmPerLiter, motorcycleMaxKmPerLiter
	default:
		return carMinKmPerLiter, carMaxKmPerLiter
	}
}

func vehicleAge(year int) int {
	if year <= 0 {
		return 0
	}
	age := nowYear() - year
	if age < 0 {
		return 0
	}
	if age > maxAgeYears {
		return maxAgeYears
	}
	return age
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
