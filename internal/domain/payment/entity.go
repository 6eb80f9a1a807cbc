package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryPayment is a cash disbursement recorded against an employee's
// computed balance. The ledger is append-only: a wrong entry is corrected by
// a compensating entry with a negative amount, never by editing history.
type SalaryPayment struct {
	ID          string
	EmployeeID  string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Description string
	CreatedAt   time.Time
}
