package payment

import (
	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/validator"
)

type RecordPaymentRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
	Description string          `json:"description"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Negative amounts are allowed: they are compensating ledger entries.
	if r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be zero",
		})
	}

	if _, ok := validator.IsValidDate(r.PaymentDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_date",
			Message: "payment_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PaymentResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
}

// SettlementStatus labels a remaining balance for display.
type SettlementStatus string

const (
	SettlementFullyPaid  SettlementStatus = "fully_paid"
	SettlementBalanceDue SettlementStatus = "balance_due"
	SettlementOverpaid   SettlementStatus = "overpaid"
)

// StatusFor maps a remaining balance onto its display label. Zero means the
// week is settled, positive is still owed to the employee, negative means the
// employee was paid more than they earned.
func StatusFor(remaining decimal.Decimal) SettlementStatus {
	switch {
	case remaining.IsZero():
		return SettlementFullyPaid
	case remaining.IsPositive():
		return SettlementBalanceDue
	default:
		return SettlementOverpaid
	}
}

// ConsoleResponse is one row of the payment console: the canonical weekly
// figures plus what has already been disbursed and what remains.
type ConsoleResponse struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	WeekStart    string             `json:"week_start"`
	DaysWorked   int                `json:"days_worked"`
	WeekWages    decimal.Decimal    `json:"week_wages"`
	WeekAdvances decimal.Decimal    `json:"week_advances"`
	SalaryPaid   decimal.Decimal    `json:"salary_paid"`
	Remaining    decimal.Decimal    `json:"remaining"`
	Status       SettlementStatus   `json:"status"`
	Advances     []AdvanceBreakdown `json:"advances"`
}

type AdvanceBreakdown struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}
