package migration

import (
	"math"

	"fuelmeter/internal/models"
	"fuelmeter/internal/vehicledata"
)

// Legacy electric vehicles stored consumption as km per 1% battery. The
// canonical unit is kWh/km, which is always below 1 (typically 0.08-0.4), so
// any electric consumption above 1 is old format.
const (
	legacyThreshold = 1.0

	// DefaultBatteryCapacityKWh is assumed when a legacy record has no
	// recorded battery capacity.
	DefaultBatteryCapacityKWh = 50.0

	// Conversion results outside this band come from corrupt legacy data
	// and are clamped rather than trusted.
	MinKWhPerKm = 0.08
	MaxKWhPerKm = 0.40
)

// IsLegacyEVConsumption detects the old km-per-1%-battery format.
func IsLegacyEVConsumption(fuelType string, value float64) bool {
	return fuelType == vehicledata.FuelElectric && value > legacyThreshold
}

// ConvertLegacyConsumption turns km per 1% battery into kWh/km:
// one percent of the pack moves the vehicle kmPerPercent km, so
// kWh/km = capacity / (kmPerPercent * 100). Result is clamped to the
// plausible band.
func ConvertLegacyConsumption(kmPerPercent, batteryCapacityKWh float64) float64 {
	if batteryCapacityKWh <= 0 {
		batteryCapacityKWh = DefaultBatteryCapacityKWh
	}
	if kmPerPercent <= 0 {
		return MinKWhPerKm
	}
	converted := batteryCapacityKWh / (kmPerPercent * 100.0)
	if converted < MinKWhPerKm {
		return MinKWhPerKm
	}
	if converted > MaxKWhPerKm {
		return MaxKWhPerKm
	}
	return math.Round(converted*10000) / 10000
}

// MigrateVehicle converts a vehicle's consumption to the canonical unit.
// Idempotent: a converted value is below 1 and no longer matches the legacy
// detection, so re-running is a no-op.
func MigrateVehicle(v models.Vehicle) models.Vehicle {
	if !IsLegacyEVConsumption(v.FuelType, v.AvgConsumption) {
		return v
	}
	v.AvgConsumption = ConvertLegacyConsumption(v.AvgConsumption, v.TankCapacity)
	return v
}

// MigrateTrip converts a historical electric trip to the canonical unit and
// recomputes the energy drawn, leaving the recorded cost untouched.
// Idempotent for the same reason as MigrateVehicle.
func MigrateTrip(t models.Trip, batteryCapacityKWh float64) models.Trip {
	if t.EnergyType != models.EnergyElectric || t.Consumption <= legacyThreshold {
		return t
	}
	t.Consumption = ConvertLegacyConsumption(t.Consumption, batteryCapacityKWh)
	t.FuelConsumed = math.Round(t.DistanceKm*t.Consumption*100) / 100
	return t
}
