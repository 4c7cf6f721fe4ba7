package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"fuelmeter/internal/estimation"
	"fuelmeter/internal/migration"
	"fuelmeter/internal/models"
	"fuelmeter/internal/vehicledata"
)

// ErrInvalidVehicle is returned for vehicle payloads that fail validation.
var ErrInvalidVehicle = errors.New("vehicle: invalid payload")

// VehicleRepository defines storage contract used by the service.
type VehicleRepository interface {
	Create(ctx context.Context, v *models.Vehicle) error
	Update(ctx context.Context, v *models.Vehicle) error
	GetByID(ctx context.Context, userID, id int64) (*models.Vehicle, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Vehicle, error)
	Delete(ctx context.Context, userID, id int64) error
}

// VehiclesService contains vehicle CRUD logic.
type VehiclesService struct {
	repo   VehicleRepository
	logger *zap.Logger
}

// NewVehiclesService builds VehiclesService.
func NewVehiclesService(repo VehicleRepository, logger *zap.Logger) *VehiclesService {
	return &VehiclesService{repo: repo, logger: logger}
}

// Create validates and stores a vehicle for the user. Legacy electric
// consumption values (km per 1% battery) are converted before they ever hit
// storage, so the startup migration only deals with pre-existing rows.
func (s *VehiclesService) Create(ctx context.Context, userID int64, v *models.Vehicle) (*models.Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		return nil, err
	}
	v.UserID = userID
	if migration.IsLegacyEVConsumption(v.FuelType, v.AvgConsumption) {
		*v = migration.MigrateVehicle(*v)
		s.logger.Info("converted legacy ev consumption on create",
			zap.Int64("user_id", userID), zap.String("name", v.Name))
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Update rewrites a vehicle the user owns.
func (s *VehiclesService) Update(ctx context.Context, userID int64, v *models.Vehicle) (*models.Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		return nil, err
	}
	v.UserID = userID
	if migration.IsLegacyEVConsumption(v.FuelType, v.AvgConsumption) {
		*v = migration.MigrateVehicle(*v)
		s.logger.Info("converted legacy ev consumption on update",
			zap.Int64("user_id", userID), zap.Int64("vehicle_id", v.ID))
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID, v.ID)
}

// Get returns one vehicle scoped to the user.
func (s *VehiclesService) Get(ctx context.Context, userID, id int64) (*models.Vehicle, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// List returns the user's vehicles.
func (s *VehiclesService) List(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes a vehicle the user owns.
func (s *VehiclesService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

func validateVehicle(v *models.Vehicle) error {
	if v == nil {
		return ErrInvalidVehicle
	}
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return errors.New("vehicle: name required")
	}
	switch v.Type {
	case estimation.VehicleTypeCar, estimation.VehicleTypeMotorcycle, estimation.VehicleTypeTruck:
	case "":
		v.Type = estimation.VehicleTypeCar
	default:
		return errors.New("vehicle: unknown type " + v.Type)
	}
	switch v.FuelType {
	case vehicledata.FuelGasoline, vehicledata.FuelDiesel, vehicledata.FuelElectric, vehicledata.FuelUnknown:
	case "":
		v.FuelType = vehicledata.FuelUnknown
	default:
		return errors.New("vehicle: unknown fuel type " + v.FuelType)
	}
	if v.AvgConsumption < 0 || v.TankCapacity < 0 {
		return ErrInvalidVehicle
	}
	if v.EngineCC != 0 && !vehicledata.ValidEngineCC(v.EngineCC) {
		return errors.New("vehicle: engine displacement out of range")
	}
	return nil
}
