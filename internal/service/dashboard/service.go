package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/domain/vehicle"
	"github.com/siteledger/siteledger-backend-go/internal/payroll"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
)

// SummaryResponse is the landing-page rollup: headcount, today's attendance,
// this week's money flow, and this month's fuel spend.
type SummaryResponse struct {
	TotalEmployees int    `json:"total_employees"`
	PresentToday   int    `json:"present_today"`
	WeekStart      string `json:"week_start"`

	WeekWages    decimal.Decimal `json:"week_wages"`
	WeekAdvances decimal.Decimal `json:"week_advances"`
	WeekBalance  decimal.Decimal `json:"week_balance"`

	TotalVehicles   int             `json:"total_vehicles"`
	MonthFuelCost   decimal.Decimal `json:"month_fuel_cost"`
	MonthFuelLiters decimal.Decimal `json:"month_fuel_liters"`
}

type DashboardService interface {
	Summary(ctx context.Context) (SummaryResponse, error)
}

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	vehicleRepo    vehicle.VehicleRepository
	fuelRepo       vehicle.FuelRepository
	calc           payroll.Calculator
	now            func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	vehicleRepo vehicle.VehicleRepository,
	fuelRepo vehicle.FuelRepository,
	calc payroll.Calculator,
	now func() time.Time,
) DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		vehicleRepo:    vehicleRepo,
		fuelRepo:       fuelRepo,
		calc:           calc,
		now:            now,
	}
}

// Summary implements DashboardService.
func (s *DashboardServiceImpl) Summary(ctx context.Context) (SummaryResponse, error) {
	now := s.now()
	weekStart := dateutil.CurrentWeek(now)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}
	records, err := s.attendanceRepo.ListByWeek(ctx, weekStart)
	if err != nil {
		return SummaryResponse{}, err
	}
	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}
	fuel, err := s.fuelRepo.List(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}

	summary := SummaryResponse{
		TotalEmployees:  len(employees),
		WeekStart:       dateutil.FormatDay(weekStart),
		WeekWages:       decimal.Zero,
		WeekAdvances:    decimal.Zero,
		WeekBalance:     decimal.Zero,
		TotalVehicles:   len(vehicles),
		MonthFuelCost:   decimal.Zero,
		MonthFuelLiters: decimal.Zero,
	}

	for _, rec := range records {
		if dateutil.SameDay(rec.Date, now) && rec.Status.CountsPresent() {
			summary.PresentToday++
		}
	}

	for _, emp := range employees {
		week := s.calc.WeekSummary(emp, records, advances, weekStart)
		summary.WeekWages = summary.WeekWages.Add(week.Wages)
		summary.WeekAdvances = summary.WeekAdvances.Add(week.Advances)
		summary.WeekBalance = summary.WeekBalance.Add(week.Balance)
	}

	for _, rec := range fuel {
		if dateutil.InMonth(rec.Date, now.Year(), now.Month()) {
			summary.MonthFuelCost = summary.MonthFuelCost.Add(rec.FuelCost)
			summary.MonthFuelLiters = summary.MonthFuelLiters.Add(rec.FuelAmount)
		}
	}

	return summary, nil
}
