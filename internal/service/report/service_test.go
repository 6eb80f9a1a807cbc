package report

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
	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
	"github.com/siteledger/siteledger-backend-go/internal/payroll"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
	"github.com/siteledger/siteledger-backend-go/internal/repository/memory"
)

func seedReportData(t *testing.T) (ReportService, employee.Employee) {
	t.Helper()
	ctx := context.Background()

	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	advanceRepo := memory.NewAdvanceRepository()
	paymentRepo := memory.NewPaymentRepository()

	emp, err := employeeRepo.Create(ctx, employee.Employee{
		Name:        "Mahesh",
		Designation: "driver",
		DailyWage:   decimal.NewFromInt(600),
	})
	require.NoError(t, err)

	mark := func(day string, status attendance.DayStatus, custom int64) {
		date, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)
		rec := attendance.Record{
			EmployeeID:   emp.ID,
			Date:         date,
			WeekStart:    dateutil.WeekStart(date),
			Status:       status,
			CustomAmount: decimal.NewFromInt(custom),
		}
		if status == attendance.StatusOvertime {
			rec.OvertimeHours = decimal.NewFromInt(2)
			rec.OvertimeRate = decimal.NewFromInt(75)
		}
		_, err = attendanceRepo.Create(ctx, rec)
		require.NoError(t, err)
	}

	// August 2026: two plain days, one overtime day, one half day, one absent.
	mark("2026-08-03", attendance.StatusPresent, 0)
	mark("2026-08-04", attendance.StatusPresentLate, 0)
	mark("2026-08-05", attendance.StatusOvertime, 225)
	mark("2026-08-06", attendance.StatusHalfDay, 100)
	mark("2026-08-07", attendance.StatusAbsent, 0)
	// Next month, must not leak into the August report.
	mark("2026-09-01", attendance.StatusPresent, 0)

	_, err = advanceRepo.Create(ctx, advance.Advance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Amount:       decimal.NewFromInt(500),
		Date:         time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
		Description:  "fuel cash",
	})
	require.NoError(t, err)

	_, err = paymentRepo.Create(ctx, payment.SalaryPayment{
		EmployeeID:  emp.ID,
		Amount:      decimal.NewFromInt(1000),
		PaymentDate: time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
		Description: "part settlement",
	})
	require.NoError(t, err)

	calc := payroll.NewCalculator(payroll.HalfDayFullBase)
	svc := NewReportService(employeeRepo, attendanceRepo, advanceRepo, paymentRepo, calc)
	return svc, emp
}

func TestMonthly_AggregatesCalendarMonth(t *testing.T) {
	svc, emp := seedReportData(t)

	report, err := svc.Monthly(context.Background(), emp.ID, "2026-08")
	require.NoError(t, err)

	// 4 credited days at 600 base, plus 225 overtime and 100 half-day extra.
	assert.Equal(t, 4, report.DaysWorked)
	assert.True(t, decimal.NewFromInt(2400).Equal(report.BaseWages))
	assert.Equal(t, 1, report.Overtime.Count)
	assert.True(t, decimal.NewFromInt(225).Equal(report.Overtime.Amount))
	assert.Equal(t, 1, report.HalfDay.Count)
	assert.True(t, decimal.NewFromInt(100).Equal(report.HalfDay.Amount))
	assert.Equal(t, 0, report.Custom.Count)

	assert.True(t, decimal.NewFromInt(325).Equal(report.AdditionalEarnings))
	assert.True(t, decimal.NewFromInt(2725).Equal(report.TotalWages))
	assert.True(t, decimal.NewFromInt(500).Equal(report.Advances))
	assert.True(t, decimal.NewFromInt(1000).Equal(report.SalaryPaid))
	assert.True(t, decimal.NewFromInt(1225).Equal(report.FinalAmount))

	// Only August rows ride along as supporting detail.
	assert.Len(t, report.AttendanceRecords, 5)
	assert.Len(t, report.AdvanceRecords, 1)
	assert.Len(t, report.PaymentRecords, 1)
}

func TestMonthly_InvalidMonth(t *testing.T) {
	svc, emp := seedReportData(t)

	_, err := svc.Monthly(context.Background(), emp.ID, "08-2026")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestMonthly_UnknownEmployee(t *testing.T) {
	svc, _ := seedReportData(t)

	_, err := svc.Monthly(context.Background(), "missing", "2026-08")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMonthlyAll_OneReportPerEmployee(t *testing.T) {
	svc, emp := seedReportData(t)

	reports, err := svc.MonthlyAll(context.Background(), "2026-08")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, emp.ID, reports[0].EmployeeID)
}

func TestPayslip_MatchesMonthlyReport(t *testing.T) {
	svc, emp := seedReportData(t)
	ctx := context.Background()

	report, err := svc.Monthly(ctx, emp.ID, "2026-08")
	require.NoError(t, err)

	slip, err := svc.Payslip(ctx, emp.ID, "2026-08")
	require.NoError(t, err)

	assert.Equal(t, "August 2026", slip.Period)
	assert.Equal(t, report.DaysWorked, slip.DaysWorked)
	assert.True(t, report.TotalWages.Equal(slip.TotalEarnings))
	assert.True(t, report.FinalAmount.Equal(slip.NetPayable))
}

func TestPayslipText_RendersDocument(t *testing.T) {
	svc, emp := seedReportData(t)

	text, err := svc.PayslipText(context.Background(), emp.ID, "2026-08")
	require.NoError(t, err)

	assert.Contains(t, text, "PAYSLIP")
	assert.Contains(t, text, "August 2026")
	assert.Contains(t, text, "Mahesh")
}
