package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"fuelmeter/internal/models"
	"fuelmeter/internal/vehicledata"
)

// Trip input validation errors.
var (
	ErrInvalidTrip        = errors.New("trip: invalid payload")
	ErrMissingConsumption = errors.New("trip: vehicle has no consumption figure")
)

// TripRepository defines storage contract used by the service.
type TripRepository interface {
	Create(ctx context.Context, t *models.Trip) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.Trip, error)
	Delete(ctx context.Context, userID, id int64) error
}

// TripsService computes and records trip costs.
type TripsService struct {
	trips    TripRepository
	vehicles VehicleRepository
	logger   *zap.Logger
}

// NewTripsService builds TripsService.
func NewTripsService(trips TripRepository, vehicles VehicleRepository, logger *zap.Logger) *TripsService {
	return &TripsService{trips: trips, vehicles: vehicles, logger: logger}
}

// CreateTripInput is what the client provides; everything else is derived
// from the stored vehicle.
type CreateTripInput struct {
	VehicleID  int64   `json:"vehicle_id"`
	DistanceKm float64 `json:"distance"`
	UnitPrice  float64 `json:"unitPrice"` // per liter or per kWh
}

// Create computes cost for a trip and stores it. Combustion vehicles divide
// distance by km/L to get liters; electric ones multiply distance by kWh/km
// to get energy.
func (s *TripsService) Create(ctx context.Context, userID int64, input CreateTripInput) (*models.Trip, error) {
	if input.DistanceKm <= 0 || input.UnitPrice <= 0 {
		return nil, ErrInvalidTrip
	}

	vehicle, err := s.vehicles.GetByID(ctx, userID, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.AvgConsumption <= 0 {
		return nil, ErrMissingConsumption
	}

	trip := &models.Trip{
		UserID:       userID,
		VehicleID:    vehicle.ID,
		VehicleName:  vehicle.Name,
		VehicleModel: vehicle.Model,
		FuelType:     vehicle.FuelType,
		DistanceKm:   input.DistanceKm,
		UnitPrice:    input.UnitPrice,
		Consumption:  vehicle.AvgConsumption,
	}

	if vehicle.FuelType == vehicledata.FuelElectric {
		trip.EnergyType = models.EnergyElectric
		trip.FuelConsumed = round2(input.DistanceKm * vehicle.AvgConsumption)
	} else {
		trip.EnergyType = models.EnergyFuel
		trip.FuelConsumed = round2(input.DistanceKm / vehicle.AvgConsumption)
	}
	trip.TotalCost = round2(trip.FuelConsumed * input.UnitPrice)
	trip.CostPerKm = round2(trip.TotalCost / input.DistanceKm)

	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, err
	}
	s.logger.Info("trip recorded",
		zap.Int64("user_id", userID),
		zap.Int64("vehicle_id", vehicle.ID),
		zap.Float64("distance_km", trip.DistanceKm),
		zap.Float64("total_cost", trip.TotalCost))
	return trip, nil
}

// List returns the user's trip history, newest first.
func (s *TripsService) List(ctx context.Context, userID int64, limit int) ([]models.Trip, error) {
	return s.trips.ListByUser(ctx, userID, limit)
}

// Delete removes a trip the user owns.
func (s *TripsService) Delete(ctx context.Context, userID, id int64) error {
	return s.trips.Delete(ctx, userID, id)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
