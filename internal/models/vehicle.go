package models

import "time"

// Vehicle is a stored vehicle. AvgConsumption follows the canonical unit
// convention: km/L for combustion vehicles, kWh/km for electric ones (legacy
// rows stored km per 1% battery and are converted by the startup migration).
// Zero values on numeric fields mean unknown.
type Vehicle struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"-"`
	Plate          string    `json:"plate"`
	Name           string    `json:"name"`
	Model          string    `json:"model"`
	Type           string    `json:"type"` // car, motorcycle, truck
	FuelType       string    `json:"fueltype"`
	EngineCC       int       `json:"engine"`
	Year           int       `json:"year,omitempty"`
	AvgConsumption float64   `json:"avgConsumption,omitempty"`
	TankCapacity   float64   `json:"tankCapacity,omitempty"` // liters, or battery kWh for EVs
	CurbWeightKg   float64   `json:"misgeret,omitempty"`
	GrossWeightKg  float64   `json:"mishkal_kolel,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CanonicalVehicle is the cleaned result of a registry lookup, after brand
// normalization, sanitization and the weight/engine fallback tiers.
type CanonicalVehicle struct {
	Plate         string  `json:"plate"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	VehicleType   string  `json:"vehicleType"`
	Year          int     `json:"year,omitempty"`
	FuelType      string  `json:"fuelType"`
	Hybrid        bool    `json:"hybrid,omitempty"`
	EngineCC      int     `json:"engineCC,omitempty"`
	CurbWeightKg  float64 `json:"curbWeightKg,omitempty"`
	GrossWeightKg float64 `json:"grossWeightKg,omitempty"`
}
