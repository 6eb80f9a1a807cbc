package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/validator"
)

// DayStatus is the closed set of states a marked day can be in. A day with no
// record is "not marked"; there is no status value for it.
type DayStatus string

const (
	StatusAbsent      DayStatus = "absent"
	StatusPresent     DayStatus = "present"
	StatusPresentLate DayStatus = "present_late"
	StatusOvertime    DayStatus = "overtime"
	StatusHalfDay     DayStatus = "half_day"
	StatusCustom      DayStatus = "custom"
)

func (s DayStatus) Valid() bool {
	switch s {
	case StatusAbsent, StatusPresent, StatusPresentLate, StatusOvertime, StatusHalfDay, StatusCustom:
		return true
	}
	return false
}

// CountsPresent reports whether the day credits the base daily wage.
func (s DayStatus) CountsPresent() bool {
	return s.Valid() && s != StatusAbsent
}

// CarriesCustomAmount reports whether the status may hold extra earnings
// beyond the base wage.
func (s DayStatus) CarriesCustomAmount() bool {
	return s == StatusOvertime || s == StatusHalfDay || s == StatusCustom
}

// Record is one employee-day. At most one record exists per (employee, date);
// marking an already-marked day rewrites the record in place.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	// WeekStart is the canonical Monday key of the week containing Date.
	WeekStart time.Time
	Status    DayStatus
	// CustomAmount is extra earnings for overtime/half-day/custom days.
	CustomAmount decimal.Decimal
	// OvertimeHours and OvertimeRate are only set for overtime days.
	OvertimeHours decimal.Decimal
	OvertimeRate  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate enforces the record-shape invariants at the write boundary.
func (r Record) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown attendance status",
		})
	}

	if !r.WeekStart.Equal(dateutil.WeekStart(r.Date)) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be the Monday of the week containing date",
		})
	}

	if r.CustomAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "custom_amount",
			Message: "custom amount must not be negative",
		})
	}

	if !r.CustomAmount.IsZero() && !r.Status.CarriesCustomAmount() {
		errs = append(errs, validator.ValidationError{
			Field:   "custom_amount",
			Message: "custom amount is only valid for overtime, half-day, or custom days",
		})
	}

	if r.Status != StatusOvertime && (!r.OvertimeHours.IsZero() || !r.OvertimeRate.IsZero()) {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_hours",
			Message: "overtime fields are only valid for overtime days",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
