package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/domain/vehicle"
	"github.com/siteledger/siteledger-backend-go/internal/payroll"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
	"github.com/siteledger/siteledger-backend-go/internal/repository/memory"
)

// fixedNow is a Wednesday; the current week runs 2026-08-24 through 2026-08-30.
func fixedNow() time.Time {
	return time.Date(2026, 8, 26, 14, 0, 0, 0, time.UTC)
}

func TestSummary_RollsUpWeekAndMonth(t *testing.T) {
	ctx := context.Background()

	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	advanceRepo := memory.NewAdvanceRepository()
	vehicleRepo := memory.NewVehicleRepository()
	fuelRepo := memory.NewFuelRepository()

	first, err := employeeRepo.Create(ctx, employee.Employee{
		Name: "Arjun", Designation: "mason", DailyWage: decimal.NewFromInt(700),
	})
	require.NoError(t, err)
	second, err := employeeRepo.Create(ctx, employee.Employee{
		Name: "Bala", Designation: "helper", DailyWage: decimal.NewFromInt(400),
	})
	require.NoError(t, err)

	mark := func(empID, day string, status attendance.DayStatus) {
		date, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)
		_, err = attendanceRepo.Create(ctx, attendance.Record{
			EmployeeID: empID,
			Date:       date,
			WeekStart:  dateutil.WeekStart(date),
			Status:     status,
		})
		require.NoError(t, err)
	}

	// Both worked Monday; only the first is present today (Wednesday).
	mark(first.ID, "2026-08-24", attendance.StatusPresent)
	mark(second.ID, "2026-08-24", attendance.StatusPresent)
	mark(first.ID, "2026-08-26", attendance.StatusPresent)
	mark(second.ID, "2026-08-26", attendance.StatusAbsent)

	_, err = advanceRepo.Create(ctx, advance.Advance{
		EmployeeID:   first.ID,
		EmployeeName: first.Name,
		Amount:       decimal.NewFromInt(300),
		Date:         time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		Description:  "bus fare",
	})
	require.NoError(t, err)

	truck, err := vehicleRepo.Create(ctx, vehicle.Vehicle{
		VehicleNumber: "KA-02-4567",
		VehicleName:   "Tipper",
		VehicleType:   vehicle.TypeTruck,
	})
	require.NoError(t, err)

	_, err = fuelRepo.Create(ctx, vehicle.FuelRecord{
		VehicleID:  truck.ID,
		Date:       time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		FuelAmount: decimal.NewFromInt(50),
		FuelCost:   decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	// July fill, outside this month's rollup.
	_, err = fuelRepo.Create(ctx, vehicle.FuelRecord{
		VehicleID:  truck.ID,
		Date:       time.Date(2026, 7, 28, 0, 0, 0, 0, time.UTC),
		FuelAmount: decimal.NewFromInt(30),
		FuelCost:   decimal.NewFromInt(3000),
	})
	require.NoError(t, err)

	calc := payroll.NewCalculator(payroll.HalfDayFullBase)
	svc := NewDashboardService(employeeRepo, attendanceRepo, advanceRepo, vehicleRepo, fuelRepo, calc, fixedNow)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalEmployees)
	assert.Equal(t, 1, summary.PresentToday)
	assert.Equal(t, "2026-08-24", summary.WeekStart)

	// Arjun 2x700, Bala 1x400; 300 advanced against Arjun.
	assert.True(t, decimal.NewFromInt(1800).Equal(summary.WeekWages))
	assert.True(t, decimal.NewFromInt(300).Equal(summary.WeekAdvances))
	assert.True(t, decimal.NewFromInt(1500).Equal(summary.WeekBalance))

	assert.Equal(t, 1, summary.TotalVehicles)
	assert.True(t, decimal.NewFromInt(5000).Equal(summary.MonthFuelCost))
	assert.True(t, decimal.NewFromInt(50).Equal(summary.MonthFuelLiters))
}

func TestSummary_EmptySite(t *testing.T) {
	calc := payroll.NewCalculator(payroll.HalfDayFullBase)
	svc := NewDashboardService(
		memory.NewEmployeeRepository(),
		memory.NewAttendanceRepository(),
		memory.NewAdvanceRepository(),
		memory.NewVehicleRepository(),
		memory.NewFuelRepository(),
		calc,
		fixedNow,
	)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalEmployees)
	assert.Equal(t, 0, summary.PresentToday)
	assert.True(t, summary.WeekWages.IsZero())
	assert.True(t, summary.MonthFuelCost.IsZero())
}
