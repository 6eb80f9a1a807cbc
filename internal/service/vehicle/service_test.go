package vehicle

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteledger/siteledger-backend-go/internal/domain/vehicle"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/sse"
	"github.com/siteledger/siteledger-backend-go/internal/repository/memory"
)

func newTestService() vehicle.VehicleService {
	return NewVehicleService(memory.NewVehicleRepository(), memory.NewFuelRepository(), sse.NewHub())
}

func TestCreateVehicle_RejectsUnknownType(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateVehicle(context.Background(), vehicle.CreateVehicleRequest{
		VehicleNumber: "KA-01-1234",
		VehicleName:   "Site hauler",
		VehicleType:   "submarine",
	})
	assert.Error(t, err)
}

func TestListVehicles_AggregatesFuelTotals(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateVehicle(ctx, vehicle.CreateVehicleRequest{
		VehicleNumber: "KA-01-1234",
		VehicleName:   "Site hauler",
		VehicleType:   "truck",
	})
	require.NoError(t, err)

	for _, fill := range []struct {
		liters, cost int64
	}{{40, 4000}, {35, 3600}} {
		_, err := svc.AddFuelRecord(ctx, vehicle.AddFuelRecordRequest{
			VehicleID:  created.ID,
			Date:       "2026-08-20",
			FuelAmount: decimal.NewFromInt(fill.liters),
			FuelCost:   decimal.NewFromInt(fill.cost),
		})
		require.NoError(t, err)
	}

	vehicles, err := svc.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)

	assert.True(t, decimal.NewFromInt(75).Equal(vehicles[0].TotalLiters))
	assert.True(t, decimal.NewFromInt(7600).Equal(vehicles[0].TotalFuelCost))
}

func TestAddFuelRecord_UnknownVehicle(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddFuelRecord(context.Background(), vehicle.AddFuelRecordRequest{
		VehicleID:  "missing",
		Date:       "2026-08-20",
		FuelAmount: decimal.NewFromInt(10),
		FuelCost:   decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, vehicle.ErrVehicleNotFound)
}

func TestDeleteFuelRecord_RemovesFromTotals(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateVehicle(ctx, vehicle.CreateVehicleRequest{
		VehicleNumber: "KA-05-9876",
		VehicleName:   "Digger",
		VehicleType:   "jcb",
	})
	require.NoError(t, err)

	fuel, err := svc.AddFuelRecord(ctx, vehicle.AddFuelRecordRequest{
		VehicleID:  created.ID,
		Date:       "2026-08-21",
		FuelAmount: decimal.NewFromInt(20),
		FuelCost:   decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFuelRecord(ctx, fuel.ID))

	assert.ErrorIs(t, svc.DeleteFuelRecord(ctx, fuel.ID), vehicle.ErrFuelRecordNotFound)

	vehicles, err := svc.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.True(t, vehicles[0].TotalFuelCost.IsZero())
}
