package migration

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"fuelmeter/internal/models"
)

// A step is one versioned migration. Versions are applied in order and
// recorded in schema_migrations so each runs exactly once per database.
type step struct {
	version int
	name    string
	run     func(ctx context.Context, db *sql.DB, logger *zap.Logger) error
}

var steps = []step{
	{1, "base schema", runBaseSchema},
	{2, "ev consumption units", runEVUnitConversion},
}

// Run applies pending migrations at startup. Schema failures are fatal; the
// EV data conversion tolerates bad rows (logged and skipped) so one corrupt
// record cannot block the service.
func Run(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	const marker = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INT PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.ExecContext(ctx, marker); err != nil {
		return fmt.Errorf("migration: create marker table: %w", err)
	}

	for _, s := range steps {
		var applied bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, s.version,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("migration: check version %d: %w", s.version, err)
		}
		if applied {
			continue
		}

		logger.Info("applying migration", zap.Int("version", s.version), zap.String("name", s.name))
		if err := s.run(ctx, db, logger); err != nil {
			return fmt.Errorf("migration %d (%s): %w", s.version, s.name, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, s.version, s.name,
		); err != nil {
			return fmt.Errorf("migration: record version %d: %w", s.version, err)
		}
	}
	return nil
}

func runBaseSchema(ctx context.Context, db *sql.DB, _ *zap.Logger) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS vehicles (
			id              BIGSERIAL PRIMARY KEY,
			user_id         BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			plate           TEXT NOT NULL,
			name            TEXT NOT NULL,
			model           TEXT NOT NULL DEFAULT '',
			type            TEXT NOT NULL DEFAULT 'car',
			fuel_type       TEXT NOT NULL DEFAULT 'Unknown',
			engine_cc       INT NOT NULL DEFAULT 0,
			year            INT NOT NULL DEFAULT 0,
			avg_consumption DOUBLE PRECISION NOT NULL DEFAULT 0,
			tank_capacity   DOUBLE PRECISION NOT NULL DEFAULT 0,
			curb_weight_kg  DOUBLE PRECISION NOT NULL DEFAULT 0,
			gross_weight_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vehicles_user ON vehicles(user_id)`,
		`CREATE TABLE IF NOT EXISTS trips (
			id            BIGSERIAL PRIMARY KEY,
			user_id       BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			vehicle_id    BIGINT NOT NULL DEFAULT 0,
			vehicle_name  TEXT NOT NULL DEFAULT '',
			vehicle_model TEXT NOT NULL DEFAULT '',
			fuel_type     TEXT NOT NULL DEFAULT 'Unknown',
			energy_type   TEXT NOT NULL DEFAULT 'fuel',
			distance_km   DOUBLE PRECISION NOT NULL,
			unit_price    DOUBLE PRECISION NOT NULL,
			consumption   DOUBLE PRECISION NOT NULL,
			fuel_consumed DOUBLE PRECISION NOT NULL,
			total_cost    DOUBLE PRECISION NOT NULL,
			cost_per_km   DOUBLE PRECISION NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_user ON trips(user_id)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// runEVUnitConversion rewrites legacy electric consumption values (km per 1%
// battery) into kWh/km. Row failures are logged and skipped; the original row
// is left untouched rather than partially overwritten.
func runEVUnitConversion(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	rows, err := db.QueryContext(ctx, `
		SELECT id, avg_consumption, tank_capacity
		FROM vehicles
		WHERE fuel_type = 'Electric' AND avg_consumption > 1
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	type legacyRow struct {
		id          int64
		consumption float64
		battery     float64
	}
	var pending []legacyRow
	for rows.Next() {
		var r legacyRow
		if err := rows.Scan(&r.id, &r.consumption, &r.battery); err != nil {
			logger.Warn("ev migration: unreadable vehicle row skipped", zap.Error(err))
			continue
		}
		pending = append(pending, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, r := range pending {
		converted := ConvertLegacyConsumption(r.consumption, r.battery)
		if _, err := db.ExecContext(ctx,
			`UPDATE vehicles SET avg_consumption = $2, updated_at = NOW() WHERE id = $1`,
			r.id, converted,
		); err != nil {
			logger.Warn("ev migration: vehicle update skipped",
				zap.Int64("vehicle_id", r.id), zap.Error(err))
			continue
		}
		logger.Info("ev consumption migrated",
			zap.Int64("vehicle_id", r.id),
			zap.Float64("from", r.consumption),
			zap.Float64("to", converted))
	}

	// Trips left-join their vehicle for the battery capacity; a trip whose
	// vehicle row was deleted scans capacity 0 and MigrateTrip falls back to
	// the default pack size.
	tripRows, err := db.QueryContext(ctx, `
		SELECT t.id, t.distance_km, t.consumption, COALESCE(v.tank_capacity, 0)
		FROM trips t
		LEFT JOIN vehicles v ON v.id = t.vehicle_id
		WHERE t.energy_type = 'electric' AND t.consumption > 1
	`)
	if err != nil {
		return err
	}
	defer tripRows.Close()

	type legacyTrip struct {
		id      int64
		trip    models.Trip
		battery float64
	}
	var trips []legacyTrip
	for tripRows.Next() {
		lt := legacyTrip{trip: models.Trip{EnergyType: models.EnergyElectric}}
		if err := tripRows.Scan(&lt.id, &lt.trip.DistanceKm, &lt.trip.Consumption, &lt.battery); err != nil {
			logger.Warn("ev migration: unreadable trip row skipped", zap.Error(err))
			continue
		}
		trips = append(trips, lt)
	}
	if err := tripRows.Err(); err != nil {
		return err
	}

	for _, lt := range trips {
		migrated := MigrateTrip(lt.trip, lt.battery)
		if _, err := db.ExecContext(ctx,
			`UPDATE trips SET consumption = $2, fuel_consumed = $3 WHERE id = $1`,
			lt.id, migrated.Consumption, migrated.FuelConsumed,
		); err != nil {
			logger.Warn("ev migration: trip update skipped",
				zap.Int64("trip_id", lt.id), zap.Error(err))
			continue
		}
	}
	return nil
}
