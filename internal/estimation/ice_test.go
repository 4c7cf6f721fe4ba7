package estimation

import "testing"

func fixYear(t *testing.T, year int) {
	t.Helper()
	original := nowYear
	nowYear = func() int { return year }
	t.Cleanup(func() { nowYear = original })
}

func TestEstimateICETypicalCar(t *testing.T) {
	fixYear(t, 2024)

	got := EstimateICE(ICEParams{
		VehicleType: VehicleTypeCar,
		EngineCC:    1600,
		WeightKg:    1400,
		Year:        2024,
		FuelType:    "Gasoline",
	})

	if got.Unit != UnitKmPerLiter {
		t.Fatalf("unit = %q, want %q", got.Unit, UnitKmPerLiter)
	}
	if got.Value != 13.6 {
		t.Fatalf("value = %v, want 13.6", got.Value)
	}
	if got.Confidence != ConfidenceHigh {
		t.Fatalf("confidence = %q, want high", got.Confidence)
	}
	if got.Range.Min >= got.Value || got.Range.Max <= got.Value {
		t.Fatalf("range %+v does not bracket value %v", got.Range, got.Value)
	}
}

func TestEstimateICEConfidenceDegrades(t *testing.T) {
	fixYear(t, 2024)

	oneDefault := EstimateICE(ICEParams{VehicleType: VehicleTypeCar, WeightKg: 1400})
	if oneDefault.Confidence != ConfidenceMedium {
		t.Fatalf("one defaulted input: confidence = %q, want medium", oneDefault.Confidence)
	}

	twoDefaults := EstimateICE(ICEParams{VehicleType: VehicleTypeCar})
	if twoDefaults.Confidence != ConfidenceLow {
		t.Fatalf("two defaulted inputs: confidence = %q, want low", twoDefaults.Confidence)
	}
}

func TestEstimateICEClamps(t *testing.T) {
	fixYear(t, 2024)

	heavy := EstimateICE(ICEParams{VehicleType: VehicleTypeCar, EngineCC: 15000, WeightKg: 10000})
	if heavy.Value != 4.0 {
		t.Fatalf("oversized car should clamp to 4.0 km/L, got %v", heavy.Value)
	}

	tiny := EstimateICE(ICEParams{VehicleType: VehicleTypeMotorcycle, EngineCC: 50, WeightKg: 100})
	if tiny.Value != 60.0 {
		t.Fatalf("tiny motorcycle should clamp to 60.0 km/L, got %v", tiny.Value)
	}
	if tiny.Range.Max > 60.0 {
		t.Fatalf("range max %v exceeds motorcycle clamp", tiny.Range.Max)
	}

	truck := EstimateICE(ICEParams{VehicleType: VehicleTypeTruck, EngineCC: 15000, WeightKg: 10000})
	if truck.Value != 2.5 {
		t.Fatalf("heavy truck should clamp to 2.5 km/L, got %v", truck.Value)
	}
}

func TestEstimateICEFuelAdjustments(t *testing.T) {
	fixYear(t, 2024)

	base := ICEParams{VehicleType: VehicleTypeCar, EngineCC: 1600, WeightKg: 1400, Year: 2024}

	gasoline := EstimateICE(base)

	diesel := base
	diesel.FuelType = "Diesel"
	if d := EstimateICE(diesel); d.Value <= gasoline.Value {
		t.Fatalf("diesel %v should beat gasoline %v", d.Value, gasoline.Value)
	}

	hybrid := base
	hybrid.Hybrid = true
	if h := EstimateICE(hybrid); h.Value <= gasoline.Value {
		t.Fatalf("hybrid %v should beat gasoline %v", h.Value, gasoline.Value)
	}
}

func TestEstimateICEAgePenalty(t *testing.T) {
	fixYear(t, 2024)

	newCar := EstimateICE(ICEParams{VehicleType: VehicleTypeCar, EngineCC: 1600, WeightKg: 1400, Year: 2024})
	oldCar := EstimateICE(ICEParams{VehicleType: VehicleTypeCar, EngineCC: 1600, WeightKg: 1400, Year: 2004})
	if oldCar.Value >= newCar.Value {
		t.Fatalf("old car %v should consume more than new car %v", oldCar.Value, newCar.Value)
	}

	ancient := EstimateICE(ICEParams{VehicleType: VehicleTypeCar, EngineCC: 1600, WeightKg: 1400, Year: 1950})
	veryOld := EstimateICE(ICEParams{VehicleType: VehicleTypeCar, EngineCC: 1600, WeightKg: 1400, Year: 1999})
	if ancient.Value != veryOld.Value {
		t.Fatalf("age penalty should cap at 25 years: %v vs %v", ancient.Value, veryOld.Value)
	}
}

func TestEstimateICEMotorcycleLightWeightAccepted(t *testing.T) {
	fixYear(t, 2024)

	// 180 kg is below the car plausibility floor but normal for motorcycles.
	got := EstimateICE(ICEParams{VehicleType: VehicleTypeMotorcycle, EngineCC: 650, WeightKg: 180})
	if got.Confidence != ConfidenceHigh {
		t.Fatalf("motorcycle weight should count as provided, confidence = %q", got.Confidence)
	}
}

func TestMotorcycleEnergyFactor(t *testing.T) {
	tests := []struct {
		cc   int
		want float64
	}{
		{50, 4.2},
		{125, 4.2},
		{126, 5.0},
		{500, 6.0},
		{1000, 8.0},
		{1300, 9.0},
		{1800, 9.0},
	}
	for _, tt := range tests {
		if got := MotorcycleEnergyFactor(tt.cc); got != tt.want {
			t.Fatalf("MotorcycleEnergyFactor(%d) = %v, want %v", tt.cc, got, tt.want)
		}
	}
}

func TestEstimateMotorcycleEnergy(t *testing.T) {
	got := EstimateMotorcycleEnergy(689)
	if got.Value != 7.0 {
		t.Fatalf("value = %v, want 7.0 for 689cc", got.Value)
	}
	if got.Unit != UnitKWhPer100Km {
		t.Fatalf("unit = %q, want kWh/100km", got.Unit)
	}
	if got.Confidence != ConfidenceMedium {
		t.Fatalf("confidence = %q, want medium with displacement provided", got.Confidence)
	}

	defaulted := EstimateMotorcycleEnergy(0)
	if defaulted.Value != 6.0 {
		t.Fatalf("value = %v, want 6.0 for the %dcc default", defaulted.Value, defaultMotorcycleCC)
	}
	if defaulted.Confidence != ConfidenceLow {
		t.Fatalf("confidence = %q, want low with defaulted displacement", defaulted.Confidence)
	}
}
