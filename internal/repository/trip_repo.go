package repository

import (
	"context"
	"database/sql"
	"errors"

	"fuelmeter/internal/models"
)

// ErrTripNotFound represents missing trip rows.
var ErrTripNotFound = errors.New("trip not found")

// TripRepository handles persistence of trip history. Trips are immutable
// once created except for deletion.
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository returns repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create inserts a trip record.
func (r *TripRepository) Create(ctx context.Context, t *models.Trip) error {
	const query = `
		INSERT INTO trips (
			user_id, vehicle_id, vehicle_name, vehicle_model, fuel_type,
			energy_type, distance_km, unit_price, consumption, fuel_consumed,
			total_cost, cost_per_km, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		t.UserID, t.VehicleID, t.VehicleName, t.VehicleModel, t.FuelType,
		t.EnergyType, t.DistanceKm, t.UnitPrice, t.Consumption, t.FuelConsumed,
		t.TotalCost, t.CostPerKm,
	).Scan(&t.ID, &t.CreatedAt)
}

// ListByUser returns the user's last N trips, newest first.
func (r *TripRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.Trip, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
		SELECT id, user_id, vehicle_id, vehicle_name, vehicle_model, fuel_type,
		       energy_type, distance_km, unit_price, consumption, fuel_consumed,
		       total_cost, cost_per_km, created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.VehicleID, &t.VehicleName, &t.VehicleModel,
			&t.FuelType, &t.EnergyType, &t.DistanceKm, &t.UnitPrice,
			&t.Consumption, &t.FuelConsumed, &t.TotalCost, &t.CostPerKm,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// Delete removes a trip scoped to the owning user.
func (r *TripRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM trips WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTripNotFound
	}
	return nil
}
