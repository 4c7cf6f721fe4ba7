package models

import "time"

// Trip is one recorded trip-cost calculation. Immutable once created except
// for deletion. Consumption carries the vehicle's figure at calculation time
// in the canonical unit for EnergyType (km/L for fuel, kWh/km for electric).
type Trip struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"-"`
	VehicleID    int64     `json:"vehicle_id"`
	VehicleName  string    `json:"vehicleName"`
	VehicleModel string    `json:"vehicleModel"`
	FuelType     string    `json:"fuelType"`
	EnergyType   string    `json:"energyType"` // "fuel" or "electric"
	DistanceKm   float64   `json:"distance"`
	UnitPrice    float64   `json:"unitPrice"` // per liter or per kWh
	Consumption  float64   `json:"consumption"`
	FuelConsumed float64   `json:"fuelConsumed"` // liters or kWh
	TotalCost    float64   `json:"totalCost"`
	CostPerKm    float64   `json:"costPerKm"`
	CreatedAt    time.Time `json:"timestamp"`
}

// Energy types for trips.
const (
	EnergyFuel     = "fuel"
	EnergyElectric = "electric"
)

// TripDate formats the trip date the way history screens expect.
func (t Trip) TripDate() string {
	return t.CreatedAt.Format(time.DateOnly)
}
