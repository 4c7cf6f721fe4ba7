package repository

import (
	"context"
	"database/sql"
	"errors"

	"fuelmeter/internal/models"
)

// ErrVehicleNotFound represents missing vehicle rows.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository handles persistence of stored vehicles.
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository returns repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

const vehicleColumns = `
	id, user_id, plate, name, model, type, fuel_type, engine_cc, year,
	avg_consumption, tank_capacity, curb_weight_kg, gross_weight_kg,
	created_at, updated_at
`

// Create inserts a vehicle for a user.
func (r *VehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	const query = `
		INSERT INTO vehicles (
			user_id, plate, name, model, type, fuel_type, engine_cc, year,
			avg_consumption, tank_capacity, curb_weight_kg, gross_weight_kg,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		v.UserID, v.Plate, v.Name, v.Model, v.Type, v.FuelType, v.EngineCC,
		v.Year, v.AvgConsumption, v.TankCapacity, v.CurbWeightKg, v.GrossWeightKg,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

// Update rewrites mutable vehicle fields, scoped to the owning user.
func (r *VehicleRepository) Update(ctx context.Context, v *models.Vehicle) error {
	const query = `
		UPDATE vehicles
		SET name = $3,
		    model = $4,
		    type = $5,
		    fuel_type = $6,
		    engine_cc = $7,
		    year = $8,
		    avg_consumption = $9,
		    tank_capacity = $10,
		    curb_weight_kg = $11,
		    gross_weight_kg = $12,
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		v.ID, v.UserID, v.Name, v.Model, v.Type, v.FuelType, v.EngineCC,
		v.Year, v.AvgConsumption, v.TankCapacity, v.CurbWeightKg, v.GrossWeightKg,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

// GetByID fetches one vehicle scoped to the owning user.
func (r *VehicleRepository) GetByID(ctx context.Context, userID, id int64) (*models.Vehicle, error) {
	const query = `SELECT` + vehicleColumns + `FROM vehicles WHERE id = $1 AND user_id = $2 LIMIT 1`
	var v models.Vehicle
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&v.ID, &v.UserID, &v.Plate, &v.Name, &v.Model, &v.Type, &v.FuelType,
		&v.EngineCC, &v.Year, &v.AvgConsumption, &v.TankCapacity,
		&v.CurbWeightKg, &v.GrossWeightKg, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListByUser returns the user's vehicles, newest first.
func (r *VehicleRepository) ListByUser(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	const query = `SELECT` + vehicleColumns + `FROM vehicles WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.Plate, &v.Name, &v.Model, &v.Type, &v.FuelType,
			&v.EngineCC, &v.Year, &v.AvgConsumption, &v.TankCapacity,
			&v.CurbWeightKg, &v.GrossWeightKg, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// Delete removes a vehicle scoped to the owning user.
func (r *VehicleRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM vehicles WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
