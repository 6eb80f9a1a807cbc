package payroll

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
)

func TestBuildPayslip_CopiesReportNumbers(t *testing.T) {
	emp := worker("e1", "Ravi", "500")
	records := []attendance.Record{
		markedDay(t, "e1", "2026-08-03", attendance.StatusPresent, ""),
		markedDay(t, "e1", "2026-08-05", attendance.StatusOvertime, "300"),
	}
	advances := []advance.Advance{
		{ID: "a1", EmployeeID: "e1", Amount: dec("100"), Date: day(t, "2026-08-10")},
	}
	payments := []payment.SalaryPayment{
		{ID: "p1", EmployeeID: "e1", Amount: dec("500"), PaymentDate: day(t, "2026-08-15")},
	}

	report := NewCalculator(HalfDayFullBase).BuildMonthlyReport(emp, records, advances, payments, 2026, time.August)
	slip := BuildPayslip(emp, report)

	assert.Equal(t, "Ravi", slip.EmployeeName)
	assert.Equal(t, "August 2026", slip.Period)
	assert.Equal(t, report.DaysWorked, slip.DaysWorked)
	assert.True(t, report.TotalWages.Equal(slip.TotalEarnings))
	assert.True(t, report.FinalAmount.Equal(slip.NetPayable))
}

func TestRenderText_ContainsBreakdownLines(t *testing.T) {
	emp := worker("e1", "Ravi", "500")
	records := []attendance.Record{
		markedDay(t, "e1", "2026-08-03", attendance.StatusPresent, ""),
		markedDay(t, "e1", "2026-08-05", attendance.StatusOvertime, "300"),
	}

	report := NewCalculator(HalfDayFullBase).BuildMonthlyReport(emp, records, nil, nil, 2026, time.August)
	text := BuildPayslip(emp, report).RenderText()

	assert.True(t, strings.Contains(text, "PAYSLIP  August 2026"))
	assert.True(t, strings.Contains(text, "Employee    : Ravi"))
	assert.True(t, strings.Contains(text, "Overtime (1 days)    : 300.00"))
	assert.True(t, strings.Contains(text, "NET PAYABLE          : 1300.00"))
	// Half-day line is suppressed when the month has none.
	assert.False(t, strings.Contains(text, "Half-day"))
}
