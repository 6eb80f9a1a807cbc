package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/validator"
)

// MarkRequest covers present/absent/late/half-day: actions with no amount.
type MarkRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkOvertimeRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Hours      decimal.Decimal `json:"hours"`
}

func (r *MarkOvertimeRequest) Validate() error {
	base := MarkRequest{EmployeeID: r.EmployeeID, Date: r.Date}
	err := base.Validate()

	var errs validator.ValidationErrors
	if err != nil {
		errs = err.(validator.ValidationErrors)
	}

	if !r.Hours.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkCustomRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
}

func (r *MarkCustomRequest) Validate() error {
	base := MarkRequest{EmployeeID: r.EmployeeID, Date: r.Date}
	err := base.Validate()

	var errs validator.ValidationErrors
	if err != nil {
		errs = err.(validator.ValidationErrors)
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkHalfDayRequest carries an optional extra amount paid for the half day.
type MarkHalfDayRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
}

func (r *MarkHalfDayRequest) Validate() error {
	base := MarkRequest{EmployeeID: r.EmployeeID, Date: r.Date}
	err := base.Validate()

	var errs validator.ValidationErrors
	if err != nil {
		errs = err.(validator.ValidationErrors)
	}

	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Date          string          `json:"date"`
	WeekStart     string          `json:"week_start"`
	Status        string          `json:"status"`
	CustomAmount  decimal.Decimal `json:"custom_amount"`
	OvertimeHours decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate,omitempty"`
}

// WeekGridRow is one employee's row in the weekly grid, keyed by date string.
type WeekGridRow struct {
	EmployeeID   string                    `json:"employee_id"`
	EmployeeName string                    `json:"employee_name"`
	DailyWage    decimal.Decimal           `json:"daily_wage"`
	Records      map[string]RecordResponse `json:"records"`
}

type WeekGridResponse struct {
	WeekStart string        `json:"week_start"`
	WeekEnd   string        `json:"week_end"`
	Days      []string      `json:"days"`
	Rows      []WeekGridRow `json:"rows"`
}
