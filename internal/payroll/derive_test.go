package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutil.ParseDay(s)
	require.NoError(t, err)
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func worker(id, name string, wage string) employee.Employee {
	return employee.Employee{ID: id, Name: name, Designation: "mason", DailyWage: dec(wage)}
}

func markedDay(t *testing.T, employeeID, date string, status attendance.DayStatus, custom string) attendance.Record {
	t.Helper()
	d := day(t, date)
	rec := attendance.Record{
		ID:           employeeID + "-" + date,
		EmployeeID:   employeeID,
		Date:         d,
		WeekStart:    dateutil.WeekStart(d),
		Status:       status,
		CustomAmount: decimal.Zero,
	}
	if custom != "" {
		rec.CustomAmount = dec(custom)
	}
	return rec
}

// 2026-08-24 is a Monday; the week runs through Sunday 2026-08-30.
const (
	monday    = "2026-08-24"
	tuesday   = "2026-08-25"
	wednesday = "2026-08-26"
	sunday    = "2026-08-30"
)

func TestWeeklyWages_PresentDays(t *testing.T) {
	emp := worker("e1", "Ravi", "500")
	week := dateutil.WeekStart(day(t, monday))
	records := []attendance.Record{
		markedDay(t, "e1", monday, attendance.StatusPresent, ""),
		markedDay(t, "e1", tuesday, attendance.StatusPresent, ""),
		markedDay(t, "e1", wednesday, attendance.StatusPresent, ""),
	}

	calc := NewCalculator(HalfDayFullBase)
	assert.True(t, dec("1500").Equal(calc.WeeklyWages(emp, records, week)))
	assert.Equal(t, 3, DaysWorked(records, "e1", week))
	assert.True(t, WeeklyAdvances(nil, "e1", week).IsZero())

	summary := calc.WeekSummary(emp, records, nil, week)
	assert.True(t, dec("1500").Equal(summary.Balance))
}

func TestWeeklyBalance_AdvanceDeducted(t *testing.T) {
	emp := worker("e1", "Ravi", "500")
	week := dateutil.WeekStart(day(t, monday))
	records := []attendance.Record{
		markedDay(t, "e1", monday, attendance.StatusPresent, ""),
		markedDay(t, "e1", tuesday, attendance.StatusPresent, ""),
		markedDay(t, "e1", wednesday, attendance.StatusPresent, ""),
	}
	advances := []advance.Advance{
		{ID: "a1", EmployeeID: "e1", Amount: dec("200"), Date: day(t, tuesday)},
	}

	summary := NewCalculator(HalfDayFullBase).WeekSummary(emp, records, advances, week)
	assert.True(t, dec("200").Equal(summary.Advances))
	assert.True(t, dec("1300").Equal(summary.Balance))
}

func TestWeeklyWages_OvertimeDay(t *testing.T) {
	emp := worker("e2", "Suresh", "800")

	rate := attendance.OvertimeRate(emp.DailyWage)
	assert.True(t, dec("100").Equal(rate))

	otAmount := attendance.OvertimeAmount(emp.DailyWage, dec("4"))
	assert.True(t, dec("600").Equal(otAmount))

	week := dateutil.WeekStart(day(t, monday))
	rec := markedDay(t, "e2", monday, attendance.StatusOvertime, "600")
	rec.OvertimeHours = dec("4")
	rec.OvertimeRate = rate

	wages := NewCalculator(HalfDayFullBase).WeeklyWages(emp, []attendance.Record{rec}, week)
	assert.True(t, dec("1400").Equal(wages))
}

func TestRemainingBalance_SettlementScenarios(t *testing.T) {
	wages := dec("1500")
	advances := dec("200")

	// One payment covers the balance exactly.
	remaining := RemainingBalance(wages, advances, dec("1300"))
	assert.True(t, remaining.IsZero())
	assert.Equal(t, payment.SettlementFullyPaid, payment.StatusFor(remaining))

	// A second payment of 100 overpays by 100.
	remaining = RemainingBalance(wages, advances, dec("1400"))
	assert.True(t, dec("-100").Equal(remaining))
	assert.Equal(t, payment.SettlementOverpaid, payment.StatusFor(remaining))

	remaining = RemainingBalance(wages, advances, dec("1000"))
	assert.True(t, dec("300").Equal(remaining))
	assert.Equal(t, payment.SettlementBalanceDue, payment.StatusFor(remaining))
}

func TestWeeklyAdvances_OnlyMatchingWeekAndEmployee(t *testing.T) {
	week := dateutil.WeekStart(day(t, monday))
	advances := []advance.Advance{
		{ID: "a1", EmployeeID: "e1", Amount: dec("200"), Date: day(t, monday)},
		{ID: "a2", EmployeeID: "e1", Amount: dec("50"), Date: day(t, sunday)},
		{ID: "a3", EmployeeID: "e1", Amount: dec("999"), Date: day(t, "2026-08-17")},
		{ID: "a4", EmployeeID: "e2", Amount: dec("75"), Date: day(t, monday)},
	}

	got := WeeklyAdvances(advances, "e1", week)
	assert.True(t, dec("250").Equal(got), "got %s", got)
}

func TestDayEarnings_HalfDayPolicy(t *testing.T) {
	emp := worker("e1", "Ravi", "500")
	rec := markedDay(t, "e1", monday, attendance.StatusHalfDay, "100")

	full := NewCalculator(HalfDayFullBase).DayEarnings(emp.DailyWage, rec)
	assert.True(t, dec("600").Equal(full), "full-base keeps the whole daily wage")

	half := NewCalculator(HalfDayHalfBase).DayEarnings(emp.DailyWage, rec)
	assert.True(t, dec("350").Equal(half), "half-base halves the daily wage")
}

func TestDayEarnings_AbsentIgnoresStrayCustomAmount(t *testing.T) {
	rec := attendance.Record{
		EmployeeID:   "e1",
		Date:         day(t, monday),
		WeekStart:    dateutil.WeekStart(day(t, monday)),
		Status:       attendance.StatusAbsent,
		CustomAmount: dec("250"),
	}

	got := NewCalculator(HalfDayFullBase).DayEarnings(dec("500"), rec)
	assert.True(t, got.IsZero())
}

func TestBuildMonthlyReport_BucketsAndFinalAmount(t *testing.T) {
	emp := worker("e1", "Ravi", "500")
	calc := NewCalculator(HalfDayFullBase)

	records := []attendance.Record{
		markedDay(t, "e1", "2026-08-03", attendance.StatusPresent, ""),
		markedDay(t, "e1", "2026-08-04", attendance.StatusPresentLate, ""),
		markedDay(t, "e1", "2026-08-05", attendance.StatusOvertime, "300"),
		markedDay(t, "e1", "2026-08-06", attendance.StatusHalfDay, "0"),
		markedDay(t, "e1", "2026-08-07", attendance.StatusCustom, "150"),
		markedDay(t, "e1", "2026-08-08", attendance.StatusAbsent, ""),
		// Other month and other employee must not leak in.
		markedDay(t, "e1", "2026-07-31", attendance.StatusPresent, ""),
		markedDay(t, "e2", "2026-08-03", attendance.StatusPresent, ""),
	}
	advances := []advance.Advance{
		{ID: "a1", EmployeeID: "e1", Amount: dec("200"), Date: day(t, "2026-08-10")},
		{ID: "a2", EmployeeID: "e1", Amount: dec("100"), Date: day(t, "2026-07-10")},
	}
	payments := []payment.SalaryPayment{
		{ID: "p1", EmployeeID: "e1", Amount: dec("1000"), PaymentDate: day(t, "2026-08-15")},
	}

	report := calc.BuildMonthlyReport(emp, records, advances, payments, 2026, time.August)

	assert.Equal(t, 5, report.DaysWorked)
	assert.True(t, dec("2500").Equal(report.BaseWages))
	assert.Equal(t, 1, report.Overtime.Count)
	assert.True(t, dec("300").Equal(report.Overtime.Amount))
	assert.Equal(t, 1, report.HalfDay.Count)
	assert.True(t, report.HalfDay.Amount.IsZero())
	assert.Equal(t, 1, report.Custom.Count)
	assert.True(t, dec("150").Equal(report.Custom.Amount))
	assert.True(t, dec("450").Equal(report.AdditionalEarnings))
	assert.True(t, dec("2950").Equal(report.TotalWages))
	assert.True(t, dec("200").Equal(report.Advances))
	assert.True(t, dec("1000").Equal(report.SalaryPaid))
	assert.True(t, dec("1750").Equal(report.FinalAmount))

	assert.Len(t, report.AttendanceRecords, 6)
	assert.Len(t, report.AdvanceRecords, 1)
	assert.Len(t, report.PaymentRecords, 1)
}

func TestBuildMonthlyReport_MatchesClippedWeeklySums(t *testing.T) {
	emp := worker("e1", "Ravi", "500")
	calc := NewCalculator(HalfDayFullBase)

	// June 2026 starts on a Monday and ends mid-week; July 1st belongs to the
	// week of June 29 but must not count toward June.
	records := []attendance.Record{
		markedDay(t, "e1", "2026-06-29", attendance.StatusPresent, ""),
		markedDay(t, "e1", "2026-06-30", attendance.StatusOvertime, "150"),
		markedDay(t, "e1", "2026-07-01", attendance.StatusPresent, ""),
		markedDay(t, "e1", "2026-06-01", attendance.StatusPresent, ""),
	}

	report := calc.BuildMonthlyReport(emp, records, nil, nil, 2026, time.June)

	// Weekly sums clipped to June: week of June 1 contributes 500, week of
	// June 29 contributes 500 + (500+150), July 1 is excluded.
	assert.True(t, dec("1650").Equal(report.TotalWages))
	assert.Equal(t, 3, report.DaysWorked)
}

func TestBuildMonthlyReport_EmptyWindow(t *testing.T) {
	emp := worker("e1", "Ravi", "500")
	report := NewCalculator(HalfDayFullBase).BuildMonthlyReport(emp, nil, nil, nil, 2026, time.August)

	assert.Equal(t, 0, report.DaysWorked)
	assert.True(t, report.TotalWages.IsZero())
	assert.True(t, report.FinalAmount.IsZero())
	assert.Empty(t, report.AttendanceRecords)
}

func TestWeeklyWages_UnknownEmployeeIsZero(t *testing.T) {
	week := dateutil.WeekStart(day(t, monday))
	records := []attendance.Record{
		markedDay(t, "e1", monday, attendance.StatusPresent, ""),
	}

	ghost := worker("nobody", "Ghost", "500")
	got := NewCalculator(HalfDayFullBase).WeeklyWages(ghost, records, week)
	assert.True(t, got.IsZero())
}
