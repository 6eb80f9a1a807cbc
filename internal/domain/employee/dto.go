package employee

import (
	"mime/multipart"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name          string          `json:"name"`
	Designation   string          `json:"designation"`
	ContactNumber string          `json:"contact_number"`
	DailyWage     decimal.Decimal `json:"daily_wage"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if !validator.IsEmpty(r.ContactNumber) && !validator.IsValidPhoneNumber(r.ContactNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_number",
			Message: "contact number must be 10-13 digits",
		})
	}

	if !validator.IsPositiveAmount(r.DailyWage) {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_wage",
			Message: "daily wage must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Designation   string          `json:"designation"`
	ContactNumber string          `json:"contact_number"`
	DailyWage     decimal.Decimal `json:"daily_wage"`
	PhotoURL      *string         `json:"photo_url,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// EmployeeSummaryResponse is a roster row: the employee plus the current-week
// figures every list screen shows next to the name.
type EmployeeSummaryResponse struct {
	EmployeeResponse
	WeekStart     string          `json:"week_start"`
	DaysWorked    int             `json:"days_worked"`
	WeekWages     decimal.Decimal `json:"week_wages"`
	WeekAdvances  decimal.Decimal `json:"week_advances"`
	WeeklyBalance decimal.Decimal `json:"weekly_balance"`
}
