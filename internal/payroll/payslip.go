package payroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
)

// Payslip is the printable breakdown of one employee's month. It is pure
// formatting over a MonthlyReport: the numbers are copied, never recomputed,
// so a payslip can never disagree with the report screen.
type Payslip struct {
	EmployeeName string          `json:"employee_name"`
	Designation  string          `json:"designation"`
	Period       string          `json:"period"`
	DailyWage    decimal.Decimal `json:"daily_wage"`

	DaysWorked    int               `json:"days_worked"`
	BaseWages     decimal.Decimal   `json:"base_wages"`
	Overtime      CategoryBreakdown `json:"overtime"`
	HalfDay       CategoryBreakdown `json:"half_day"`
	Custom        CategoryBreakdown `json:"custom"`
	TotalEarnings decimal.Decimal   `json:"total_earnings"`
	Advances      decimal.Decimal   `json:"advances"`
	SalaryPaid    decimal.Decimal   `json:"salary_paid"`
	NetPayable    decimal.Decimal   `json:"net_payable"`
}

func BuildPayslip(emp employee.Employee, report MonthlyReport) Payslip {
	period := time.Date(report.Year, report.Month, 1, 0, 0, 0, 0, time.UTC)
	return Payslip{
		EmployeeName:  emp.Name,
		Designation:   emp.Designation,
		Period:        period.Format("January 2006"),
		DailyWage:     emp.DailyWage,
		DaysWorked:    report.DaysWorked,
		BaseWages:     report.BaseWages,
		Overtime:      report.Overtime,
		HalfDay:       report.HalfDay,
		Custom:        report.Custom,
		TotalEarnings: report.TotalWages,
		Advances:      report.Advances,
		SalaryPaid:    report.SalaryPaid,
		NetPayable:    report.FinalAmount,
	}
}

// RenderText renders the payslip as a plain-text document.
func (p Payslip) RenderText() string {
	var b strings.Builder

	line := strings.Repeat("=", 44)
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "PAYSLIP  %s\n", p.Period)
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Employee    : %s\n", p.EmployeeName)
	if p.Designation != "" {
		fmt.Fprintf(&b, "Designation : %s\n", p.Designation)
	}
	fmt.Fprintf(&b, "Daily wage  : %s\n", p.DailyWage.StringFixed(2))
	fmt.Fprintln(&b, strings.Repeat("-", 44))
	fmt.Fprintf(&b, "Days worked          : %d\n", p.DaysWorked)
	fmt.Fprintf(&b, "Base wages           : %s\n", p.BaseWages.StringFixed(2))
	if p.Overtime.Count > 0 {
		fmt.Fprintf(&b, "Overtime (%d days)    : %s\n", p.Overtime.Count, p.Overtime.Amount.StringFixed(2))
	}
	if p.HalfDay.Count > 0 {
		fmt.Fprintf(&b, "Half-day (%d days)    : %s\n", p.HalfDay.Count, p.HalfDay.Amount.StringFixed(2))
	}
	if p.Custom.Count > 0 {
		fmt.Fprintf(&b, "Custom (%d days)      : %s\n", p.Custom.Count, p.Custom.Amount.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total earnings       : %s\n", p.TotalEarnings.StringFixed(2))
	fmt.Fprintf(&b, "Advances taken       : -%s\n", p.Advances.StringFixed(2))
	fmt.Fprintf(&b, "Salary already paid  : -%s\n", p.SalaryPaid.StringFixed(2))
	fmt.Fprintln(&b, strings.Repeat("-", 44))
	fmt.Fprintf(&b, "NET PAYABLE          : %s\n", p.NetPayable.StringFixed(2))
	fmt.Fprintln(&b, line)

	return b.String()
}
