package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/siteledger/siteledger-backend-go/internal/domain/vehicle"
)

type vehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]vehicle.Vehicle
}

func NewVehicleRepository() vehicle.VehicleRepository {
	return &vehicleRepository{vehicles: make(map[string]vehicle.Vehicle)}
}

func (r *vehicleRepository) Create(_ context.Context, v vehicle.Vehicle) (vehicle.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()
	r.vehicles[v.ID] = v

	return v, nil
}

func (r *vehicleRepository) GetByID(_ context.Context, id string) (vehicle.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vehicles[id]
	if !ok {
		return vehicle.Vehicle{}, vehicle.ErrVehicleNotFound
	}
	return v, nil
}

func (r *vehicleRepository) List(_ context.Context) ([]vehicle.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicles := make([]vehicle.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		vehicles = append(vehicles, v)
	}
	sort.Slice(vehicles, func(i, j int) bool {
		return vehicles[i].CreatedAt.After(vehicles[j].CreatedAt)
	})

	return vehicles, nil
}

type fuelRepository struct {
	mu      sync.RWMutex
	records map[string]vehicle.FuelRecord
}

func NewFuelRepository() vehicle.FuelRepository {
	return &fuelRepository{records: make(map[string]vehicle.FuelRecord)}
}

func (r *fuelRepository) Create(_ context.Context, rec vehicle.FuelRecord) (vehicle.FuelRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	r.records[rec.ID] = rec

	return rec, nil
}

func (r *fuelRepository) List(_ context.Context) ([]vehicle.FuelRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]vehicle.FuelRecord, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}

func (r *fuelRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return vehicle.ErrFuelRecordNotFound
	}
	delete(r.records, id)

	return nil
}
