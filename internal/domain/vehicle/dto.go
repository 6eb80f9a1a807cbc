package vehicle

import (
	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/validator"
)

type CreateVehicleRequest struct {
	VehicleNumber string `json:"vehicle_number"`
	VehicleName   string `json:"vehicle_name"`
	VehicleType   string `json:"vehicle_type"`
}

func (r *CreateVehicleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.VehicleNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "vehicle_number",
			Message: "vehicle_number is required",
		})
	}

	if validator.IsEmpty(r.VehicleName) {
		errs = append(errs, validator.ValidationError{
			Field:   "vehicle_name",
			Message: "vehicle_name is required",
		})
	}

	if !VehicleType(r.VehicleType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "vehicle_type",
			Message: "vehicle_type must be one of excavator, truck, crane, loader, jcb, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddFuelRecordRequest struct {
	VehicleID   string          `json:"vehicle_id"`
	Date        string          `json:"date"`
	FuelAmount  decimal.Decimal `json:"fuel_amount"`
	FuelCost    decimal.Decimal `json:"fuel_cost"`
	Description string          `json:"description"`
}

func (r *AddFuelRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.VehicleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "vehicle_id",
			Message: "vehicle_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsPositiveAmount(r.FuelAmount) {
		errs = append(errs, validator.ValidationError{
			Field:   "fuel_amount",
			Message: "fuel_amount must be greater than zero",
		})
	}

	if !validator.IsPositiveAmount(r.FuelCost) {
		errs = append(errs, validator.ValidationError{
			Field:   "fuel_cost",
			Message: "fuel_cost must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type VehicleResponse struct {
	ID            string          `json:"id"`
	VehicleNumber string          `json:"vehicle_number"`
	VehicleName   string          `json:"vehicle_name"`
	VehicleType   string          `json:"vehicle_type"`
	CreatedAt     string          `json:"created_at"`
	TotalFuelCost decimal.Decimal `json:"total_fuel_cost"`
	TotalLiters   decimal.Decimal `json:"total_liters"`
}

type FuelRecordResponse struct {
	ID          string          `json:"id"`
	VehicleID   string          `json:"vehicle_id"`
	Date        string          `json:"date"`
	FuelAmount  decimal.Decimal `json:"fuel_amount"`
	FuelCost    decimal.Decimal `json:"fuel_cost"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
}
