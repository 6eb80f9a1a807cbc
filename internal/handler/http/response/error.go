package response

import (
	"errors"
	"net/http"

	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/auth"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
	"github.com/siteledger/siteledger-backend-go/internal/domain/user"
	"github.com/siteledger/siteledger-backend-go/internal/domain/vehicle"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/validator"
	"github.com/siteledger/siteledger-backend-go/internal/service/report"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidAccessCode):
		Forbidden(w, "Invalid access code")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employees
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPhotoTooLarge):
		BadRequest(w, "Photo exceeds the 500KB limit", nil)
	case errors.Is(err, employee.ErrInvalidPhotoType):
		BadRequest(w, "Photo must be a jpg, jpeg, or png file", nil)

	// Attendance
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoRecordToMarkLate):
		BadRequest(w, "Mark the day before marking it late", nil)
	case errors.Is(err, attendance.ErrUnknownAction):
		BadRequest(w, "Unknown attendance action", nil)
	case errors.Is(err, attendance.ErrDateNotEditable):
		BadRequest(w, "Date is outside the editable window", nil)
	case errors.Is(err, attendance.ErrInvalidHours):
		BadRequest(w, "Invalid overtime hours", nil)
	case errors.Is(err, attendance.ErrInvalidAmount):
		BadRequest(w, "Invalid amount", nil)

	// Ledgers
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrZeroAmount):
		BadRequest(w, "Payment amount must not be zero", nil)

	// Vehicles
	case errors.Is(err, vehicle.ErrVehicleNotFound):
		NotFound(w, "Vehicle not found")
	case errors.Is(err, vehicle.ErrFuelRecordNotFound):
		NotFound(w, "Fuel record not found")

	// Reports
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
