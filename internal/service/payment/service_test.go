package payment

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
	"github.com/siteledger/siteledger-backend-go/internal/pkg/sse"
	"github.com/siteledger/siteledger-backend-go/internal/repository/memory"
)

// fixedNow is a Wednesday; the current week runs 2026-08-24 through 2026-08-30.
func fixedNow() time.Time {
	return time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
}

type consoleFixture struct {
	svc payment.PaymentService
	emp employee.Employee
}

// newConsoleFixture seeds one employee on 500/day with three present days and
// one 200 advance in the current week. The week owes 1500 - 200 = 1300.
func newConsoleFixture(t *testing.T) consoleFixture {
	t.Helper()
	ctx := context.Background()

	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	advanceRepo := memory.NewAdvanceRepository()
	paymentRepo := memory.NewPaymentRepository()

	emp, err := employeeRepo.Create(ctx, employee.Employee{
		Name:        "Suresh",
		Designation: "helper",
		DailyWage:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	for _, day := range []string{"2026-08-24", "2026-08-25", "2026-08-26"} {
		date, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)
		_, err = attendanceRepo.Create(ctx, attendance.Record{
			EmployeeID: emp.ID,
			Date:       date,
			WeekStart:  dateutil.WeekStart(date),
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	_, err = advanceRepo.Create(ctx, advance.Advance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Amount:       decimal.NewFromInt(200),
		Date:         time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		Description:  "groceries",
	})
	require.NoError(t, err)

	calc := payroll.NewCalculator(payroll.HalfDayFullBase)
	svc := NewPaymentService(paymentRepo, employeeRepo, attendanceRepo, advanceRepo, calc, sse.NewHub(), fixedNow)

	return consoleFixture{svc: svc, emp: emp}
}

func (f consoleFixture) pay(t *testing.T, amount int64) {
	t.Helper()
	_, err := f.svc.Record(context.Background(), payment.RecordPaymentRequest{
		EmployeeID:  f.emp.ID,
		Amount:      decimal.NewFromInt(amount),
		PaymentDate: "2026-08-26",
		Description: "weekly salary",
	})
	require.NoError(t, err)
}

func (f consoleFixture) consoleRow(t *testing.T) payment.ConsoleResponse {
	t.Helper()
	rows, err := f.svc.Console(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	return rows[0]
}

func TestConsole_BeforeAnyPayment(t *testing.T) {
	f := newConsoleFixture(t)

	row := f.consoleRow(t)
	assert.Equal(t, 3, row.DaysWorked)
	assert.Equal(t, "2026-08-24", row.WeekStart)
	assert.True(t, decimal.NewFromInt(1500).Equal(row.WeekWages))
	assert.True(t, decimal.NewFromInt(200).Equal(row.WeekAdvances))
	assert.True(t, decimal.NewFromInt(1300).Equal(row.Remaining))
	assert.Equal(t, payment.SettlementBalanceDue, row.Status)
	require.Len(t, row.Advances, 1)
	assert.True(t, decimal.NewFromInt(200).Equal(row.Advances[0].Amount))
}

func TestConsole_SettlementProgression(t *testing.T) {
	f := newConsoleFixture(t)

	f.pay(t, 1000)
	row := f.consoleRow(t)
	assert.True(t, decimal.NewFromInt(300).Equal(row.Remaining))
	assert.Equal(t, payment.SettlementBalanceDue, row.Status)

	f.pay(t, 300)
	row = f.consoleRow(t)
	assert.True(t, row.Remaining.IsZero())
	assert.Equal(t, payment.SettlementFullyPaid, row.Status)

	f.pay(t, 100)
	row = f.consoleRow(t)
	assert.True(t, decimal.NewFromInt(-100).Equal(row.Remaining))
	assert.Equal(t, payment.SettlementOverpaid, row.Status)
}

func TestConsole_CompensatingEntryRestoresBalance(t *testing.T) {
	f := newConsoleFixture(t)

	f.pay(t, 1400)
	assert.Equal(t, payment.SettlementOverpaid, f.consoleRow(t).Status)

	// The ledger never deletes; the correction is a negative entry.
	f.pay(t, -100)
	row := f.consoleRow(t)
	assert.True(t, row.Remaining.IsZero())
	assert.Equal(t, payment.SettlementFullyPaid, row.Status)

	payments, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestRecord_UnknownEmployee(t *testing.T) {
	f := newConsoleFixture(t)

	_, err := f.svc.Record(context.Background(), payment.RecordPaymentRequest{
		EmployeeID:  "missing",
		Amount:      decimal.NewFromInt(100),
		PaymentDate: "2026-08-26",
		Description: "weekly salary",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestConsole_PaymentsOutsideWeekIgnored(t *testing.T) {
	f := newConsoleFixture(t)

	_, err := f.svc.Record(context.Background(), payment.RecordPaymentRequest{
		EmployeeID:  f.emp.ID,
		Amount:      decimal.NewFromInt(1300),
		PaymentDate: "2026-08-21",
		Description: "last week settlement",
	})
	require.NoError(t, err)

	row := f.consoleRow(t)
	assert.True(t, row.SalaryPaid.IsZero())
	assert.True(t, decimal.NewFromInt(1300).Equal(row.Remaining))
}
