package vehicle

import "context"

type VehicleRepository interface {
	Create(ctx context.Context, v Vehicle) (Vehicle, error)
	GetByID(ctx context.Context, id string) (Vehicle, error)
	// List returns every vehicle, newest first.
	List(ctx context.Context) ([]Vehicle, error)
}

type FuelRepository interface {
	Create(ctx context.Context, rec FuelRecord) (FuelRecord, error)
	// List returns every fuel record, newest first.
	List(ctx context.Context) ([]FuelRecord, error)
	Delete(ctx context.Context, id string) error
}
