package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/siteledger/siteledger-backend-go/internal/domain/vehicle"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/database"
)

type vehicleRepository struct {
	db *database.DB
}

func NewVehicleRepository(db *database.DB) vehicle.VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create implements vehicle.VehicleRepository.
func (r *vehicleRepository) Create(ctx context.Context, v vehicle.Vehicle) (vehicle.Vehicle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vehicles (vehicle_number, vehicle_name, vehicle_type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		v.VehicleNumber,
		v.VehicleName,
		v.VehicleType,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return vehicle.Vehicle{}, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return v, nil
}

// GetByID implements vehicle.VehicleRepository.
func (r *vehicleRepository) GetByID(ctx context.Context, id string) (vehicle.Vehicle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, vehicle_number, vehicle_name, vehicle_type, created_at
		FROM vehicles
		WHERE id = $1
	`

	var v vehicle.Vehicle
	err := q.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.VehicleNumber,
		&v.VehicleName,
		&v.VehicleType,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vehicle.Vehicle{}, vehicle.ErrVehicleNotFound
		}
		return vehicle.Vehicle{}, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return v, nil
}

// List implements vehicle.VehicleRepository.
func (r *vehicleRepository) List(ctx context.Context) ([]vehicle.Vehicle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, vehicle_number, vehicle_name, vehicle_type, created_at
		FROM vehicles
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []vehicle.Vehicle
	for rows.Next() {
		var v vehicle.Vehicle
		if err := rows.Scan(
			&v.ID,
			&v.VehicleNumber,
			&v.VehicleName,
			&v.VehicleType,
			&v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicles: %w", err)
	}

	return vehicles, nil
}

type fuelRepository struct {
	db *database.DB
}

func NewFuelRepository(db *database.DB) vehicle.FuelRepository {
	return &fuelRepository{db: db}
}

// Create implements vehicle.FuelRepository.
func (r *fuelRepository) Create(ctx context.Context, rec vehicle.FuelRecord) (vehicle.FuelRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fuel_records (vehicle_id, date, fuel_amount, fuel_cost, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		rec.VehicleID,
		rec.Date,
		rec.FuelAmount,
		rec.FuelCost,
		rec.Description,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return vehicle.FuelRecord{}, fmt.Errorf("failed to create fuel record: %w", err)
	}

	return rec, nil
}

// List implements vehicle.FuelRepository.
func (r *fuelRepository) List(ctx context.Context) ([]vehicle.FuelRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, vehicle_id, date, fuel_amount, fuel_cost, description, created_at
		FROM fuel_records
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fuel records: %w", err)
	}
	defer rows.Close()

	var records []vehicle.FuelRecord
	for rows.Next() {
		var rec vehicle.FuelRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.VehicleID,
			&rec.Date,
			&rec.FuelAmount,
			&rec.FuelCost,
			&rec.Description,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fuel record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fuel records: %w", err)
	}

	return records, nil
}

// Delete implements vehicle.FuelRepository.
func (r *fuelRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM fuel_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fuel record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vehicle.ErrFuelRecordNotFound
	}

	return nil
}
