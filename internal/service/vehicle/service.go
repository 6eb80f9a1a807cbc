package vehicle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/domain/vehicle"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/sse"
)

type VehicleServiceImpl struct {
	vehicleRepo vehicle.VehicleRepository
	fuelRepo    vehicle.FuelRepository
	hub         *sse.Hub
}

func NewVehicleService(
	vehicleRepo vehicle.VehicleRepository,
	fuelRepo vehicle.FuelRepository,
	hub *sse.Hub,
) vehicle.VehicleService {
	return &VehicleServiceImpl{
		vehicleRepo: vehicleRepo,
		fuelRepo:    fuelRepo,
		hub:         hub,
	}
}

// CreateVehicle implements vehicle.VehicleService.
func (s *VehicleServiceImpl) CreateVehicle(ctx context.Context, req vehicle.CreateVehicleRequest) (vehicle.VehicleResponse, error) {
	if err := req.Validate(); err != nil {
		return vehicle.VehicleResponse{}, err
	}

	v := vehicle.Vehicle{
		VehicleNumber: req.VehicleNumber,
		VehicleName:   req.VehicleName,
		VehicleType:   vehicle.VehicleType(req.VehicleType),
	}

	created, err := s.vehicleRepo.Create(ctx, v)
	if err != nil {
		return vehicle.VehicleResponse{}, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.publishVehiclesSnapshot(ctx)

	return toVehicleResponse(created, nil), nil
}

// ListVehicles implements vehicle.VehicleService.
func (s *VehicleServiceImpl) ListVehicles(ctx context.Context) ([]vehicle.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	fuel, err := s.fuelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]vehicle.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, toVehicleResponse(v, fuel))
	}

	return responses, nil
}

// AddFuelRecord implements vehicle.VehicleService.
func (s *VehicleServiceImpl) AddFuelRecord(ctx context.Context, req vehicle.AddFuelRecordRequest) (vehicle.FuelRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return vehicle.FuelRecordResponse{}, err
	}

	if _, err := s.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		return vehicle.FuelRecordResponse{}, err
	}

	date, err := dateutil.ParseDay(req.Date)
	if err != nil {
		return vehicle.FuelRecordResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	rec := vehicle.FuelRecord{
		VehicleID:   req.VehicleID,
		Date:        date,
		FuelAmount:  req.FuelAmount,
		FuelCost:    req.FuelCost,
		Description: req.Description,
	}

	created, err := s.fuelRepo.Create(ctx, rec)
	if err != nil {
		return vehicle.FuelRecordResponse{}, fmt.Errorf("failed to create fuel record: %w", err)
	}

	s.publishFuelSnapshot(ctx)
	s.publishVehiclesSnapshot(ctx)

	return toFuelResponse(created), nil
}

// ListFuelRecords implements vehicle.VehicleService.
func (s *VehicleServiceImpl) ListFuelRecords(ctx context.Context) ([]vehicle.FuelRecordResponse, error) {
	records, err := s.fuelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]vehicle.FuelRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toFuelResponse(rec))
	}

	return responses, nil
}

// DeleteFuelRecord implements vehicle.VehicleService.
func (s *VehicleServiceImpl) DeleteFuelRecord(ctx context.Context, id string) error {
	if err := s.fuelRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishFuelSnapshot(ctx)
	s.publishVehiclesSnapshot(ctx)

	return nil
}

func (s *VehicleServiceImpl) publishVehiclesSnapshot(ctx context.Context) {
	vehicles, err := s.ListVehicles(ctx)
	if err != nil {
		slog.Warn("failed to build vehicles snapshot", "error", err)
		return
	}
	s.hub.Publish(sse.CollectionVehicles, sse.Event{
		Collection: sse.CollectionVehicles,
		Event:      sse.EventSnapshot,
		Data:       vehicles,
	})
}

func (s *VehicleServiceImpl) publishFuelSnapshot(ctx context.Context) {
	records, err := s.ListFuelRecords(ctx)
	if err != nil {
		slog.Warn("failed to build fuel snapshot", "error", err)
		return
	}
	s.hub.Publish(sse.CollectionFuel, sse.Event{
		Collection: sse.CollectionFuel,
		Event:      sse.EventSnapshot,
		Data:       records,
	})
}

func toVehicleResponse(v vehicle.Vehicle, fuel []vehicle.FuelRecord) vehicle.VehicleResponse {
	totalCost := decimal.Zero
	totalLiters := decimal.Zero
	for _, rec := range fuel {
		if rec.VehicleID == v.ID {
			totalCost = totalCost.Add(rec.FuelCost)
			totalLiters = totalLiters.Add(rec.FuelAmount)
		}
	}

	return vehicle.VehicleResponse{
		ID:            v.ID,
		VehicleNumber: v.VehicleNumber,
		VehicleName:   v.VehicleName,
		VehicleType:   string(v.VehicleType),
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		TotalFuelCost: totalCost,
		TotalLiters:   totalLiters,
	}
}

func toFuelResponse(rec vehicle.FuelRecord) vehicle.FuelRecordResponse {
	return vehicle.FuelRecordResponse{
		ID:          rec.ID,
		VehicleID:   rec.VehicleID,
		Date:        dateutil.FormatDay(rec.Date),
		FuelAmount:  rec.FuelAmount,
		FuelCost:    rec.FuelCost,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}
