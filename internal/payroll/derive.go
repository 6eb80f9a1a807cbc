// Package payroll derives wages, advances, and balances from the raw record
// collections. Every function is pure: the same records and window always
// produce the same numbers, so the dashboard, attendance grid, payment
// console, and monthly report cannot drift apart.
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
)

// HalfDayPolicy controls how a half-day credits the base wage.
type HalfDayPolicy string

const (
	// HalfDayFullBase credits the full daily wage plus any custom amount.
	HalfDayFullBase HalfDayPolicy = "full-base"
	// HalfDayHalfBase credits half the daily wage plus any custom amount.
	HalfDayHalfBase HalfDayPolicy = "half-base"
)

var two = decimal.NewFromInt(2)

// Calculator holds the policy knobs the derivation depends on. The zero value
// is not usable; construct with NewCalculator.
type Calculator struct {
	halfDay HalfDayPolicy
}

func NewCalculator(halfDay HalfDayPolicy) Calculator {
	return Calculator{halfDay: halfDay}
}

// DayEarnings is the contribution of a single marked day: base wage if the
// day counts as present, plus the custom amount for days that carry one.
// Absent days contribute nothing even if a stray custom amount slipped past
// write validation.
func (c Calculator) DayEarnings(dailyWage decimal.Decimal, rec attendance.Record) decimal.Decimal {
	if !rec.Status.CountsPresent() {
		return decimal.Zero
	}

	base := dailyWage
	if rec.Status == attendance.StatusHalfDay && c.halfDay == HalfDayHalfBase {
		base = dailyWage.Div(two)
	}

	if rec.Status.CarriesCustomAmount() {
		return base.Add(rec.CustomAmount)
	}
	return base
}

// WeeklyWages sums DayEarnings over the employee's records in the given week.
// An employee with no records in the week earns zero; this is never an error.
func (c Calculator) WeeklyWages(emp employee.Employee, records []attendance.Record, weekStart time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		if rec.EmployeeID != emp.ID || !rec.WeekStart.Equal(weekStart) {
			continue
		}
		total = total.Add(c.DayEarnings(emp.DailyWage, rec))
	}
	return total
}

// DaysWorked counts the employee's present-crediting days in the week.
func DaysWorked(records []attendance.Record, employeeID string, weekStart time.Time) int {
	n := 0
	for _, rec := range records {
		if rec.EmployeeID == employeeID && rec.WeekStart.Equal(weekStart) && rec.Status.CountsPresent() {
			n++
		}
	}
	return n
}

// WeeklyAdvances sums advances whose own date falls inside the canonical week
// anchored at weekStart.
func WeeklyAdvances(advances []advance.Advance, employeeID string, weekStart time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, a := range advances {
		if a.EmployeeID != employeeID {
			continue
		}
		if dateutil.WeekStart(a.Date).Equal(weekStart) {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// RemainingBalance is the one canonical settlement formula:
// (wages - advances) - salaryPaid. Zero means settled, positive is owed to
// the employee, negative means the employee was overpaid.
func RemainingBalance(wages, advances, salaryPaid decimal.Decimal) decimal.Decimal {
	return wages.Sub(advances).Sub(salaryPaid)
}

// WeeklySummary is the per-employee weekly rollup shown on the dashboard,
// roster, and payment console.
type WeeklySummary struct {
	WeekStart  time.Time
	DaysWorked int
	Wages      decimal.Decimal
	Advances   decimal.Decimal
	// Balance is Wages - Advances, the simple view that ignores salary
	// payments.
	Balance decimal.Decimal
}

func (c Calculator) WeekSummary(emp employee.Employee, records []attendance.Record, advances []advance.Advance, weekStart time.Time) WeeklySummary {
	wages := c.WeeklyWages(emp, records, weekStart)
	adv := WeeklyAdvances(advances, emp.ID, weekStart)
	return WeeklySummary{
		WeekStart:  weekStart,
		DaysWorked: DaysWorked(records, emp.ID, weekStart),
		Wages:      wages,
		Advances:   adv,
		Balance:    wages.Sub(adv),
	}
}

// CategoryBreakdown is the count and extra earnings of one day type within a
// reporting window.
type CategoryBreakdown struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlyReport is the full per-employee month rollup, with the underlying
// records so report screens can show line items without re-querying.
type MonthlyReport struct {
	EmployeeID   string
	EmployeeName string
	Year         int
	Month        time.Month

	DaysWorked int
	BaseWages  decimal.Decimal
	Overtime   CategoryBreakdown
	HalfDay    CategoryBreakdown
	Custom     CategoryBreakdown
	// AdditionalEarnings is the sum of the three category amounts.
	AdditionalEarnings decimal.Decimal
	TotalWages         decimal.Decimal
	Advances           decimal.Decimal
	SalaryPaid         decimal.Decimal
	// FinalAmount = TotalWages - Advances - SalaryPaid.
	FinalAmount decimal.Decimal

	AttendanceRecords []attendance.Record
	AdvanceRecords    []advance.Advance
	PaymentRecords    []payment.SalaryPayment
}

// BuildMonthlyReport aggregates the employee's records over a calendar month,
// first through last day inclusive. Records belonging to other employees or
// other months are skipped, never an error.
func (c Calculator) BuildMonthlyReport(emp employee.Employee, records []attendance.Record, advances []advance.Advance, payments []payment.SalaryPayment, year int, month time.Month) MonthlyReport {
	report := MonthlyReport{
		EmployeeID:         emp.ID,
		EmployeeName:       emp.Name,
		Year:               year,
		Month:              month,
		BaseWages:          decimal.Zero,
		AdditionalEarnings: decimal.Zero,
		TotalWages:         decimal.Zero,
		Advances:           decimal.Zero,
		SalaryPaid:         decimal.Zero,
		Overtime:           CategoryBreakdown{Amount: decimal.Zero},
		HalfDay:            CategoryBreakdown{Amount: decimal.Zero},
		Custom:             CategoryBreakdown{Amount: decimal.Zero},
	}

	for _, rec := range records {
		if rec.EmployeeID != emp.ID || !dateutil.InMonth(rec.Date, year, month) {
			continue
		}
		report.AttendanceRecords = append(report.AttendanceRecords, rec)

		if !rec.Status.CountsPresent() {
			continue
		}
		report.DaysWorked++

		base := emp.DailyWage
		if rec.Status == attendance.StatusHalfDay && c.halfDay == HalfDayHalfBase {
			base = emp.DailyWage.Div(two)
		}
		report.BaseWages = report.BaseWages.Add(base)

		switch rec.Status {
		case attendance.StatusOvertime:
			report.Overtime.Count++
			report.Overtime.Amount = report.Overtime.Amount.Add(rec.CustomAmount)
		case attendance.StatusHalfDay:
			report.HalfDay.Count++
			report.HalfDay.Amount = report.HalfDay.Amount.Add(rec.CustomAmount)
		case attendance.StatusCustom:
			report.Custom.Count++
			report.Custom.Amount = report.Custom.Amount.Add(rec.CustomAmount)
		}
	}

	for _, a := range advances {
		if a.EmployeeID != emp.ID || !dateutil.InMonth(a.Date, year, month) {
			continue
		}
		report.AdvanceRecords = append(report.AdvanceRecords, a)
		report.Advances = report.Advances.Add(a.Amount)
	}

	for _, p := range payments {
		if p.EmployeeID != emp.ID || !dateutil.InMonth(p.PaymentDate, year, month) {
			continue
		}
		report.PaymentRecords = append(report.PaymentRecords, p)
		report.SalaryPaid = report.SalaryPaid.Add(p.Amount)
	}

	report.AdditionalEarnings = report.Overtime.Amount.
		Add(report.HalfDay.Amount).
		Add(report.Custom.Amount)
	report.TotalWages = report.BaseWages.Add(report.AdditionalEarnings)
	report.FinalAmount = RemainingBalance(report.TotalWages, report.Advances, report.SalaryPaid)

	return report
}
