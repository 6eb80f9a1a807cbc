package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is cash handed to an employee ahead of payroll, deducted from
// earned wages. Never updated in place; corrections delete and re-create.
type Advance struct {
	ID         string
	EmployeeID string
	// EmployeeName is denormalized so the ledger stays readable after the
	// employee is deleted.
	EmployeeName string
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	CreatedAt    time.Time
}
