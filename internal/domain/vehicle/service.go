package vehicle

import "context"

type VehicleService interface {
	CreateVehicle(ctx context.Context, req CreateVehicleRequest) (VehicleResponse, error)
	// ListVehicles includes each vehicle's lifetime fuel totals.
	ListVehicles(ctx context.Context) ([]VehicleResponse, error)
	AddFuelRecord(ctx context.Context, req AddFuelRecordRequest) (FuelRecordResponse, error)
	ListFuelRecords(ctx context.Context) ([]FuelRecordResponse, error)
	DeleteFuelRecord(ctx context.Context, id string) error
}
