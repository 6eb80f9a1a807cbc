package vehicle

import (
	"time"

	"github.com/shopspring/decimal"
)

type VehicleType string

const (
	TypeExcavator VehicleType = "excavator"
	TypeTruck     VehicleType = "truck"
	TypeCrane     VehicleType = "crane"
	TypeLoader    VehicleType = "loader"
	TypeJCB       VehicleType = "jcb"
	TypeOther     VehicleType = "other"
)

func (t VehicleType) Valid() bool {
	switch t {
	case TypeExcavator, TypeTruck, TypeCrane, TypeLoader, TypeJCB, TypeOther:
		return true
	}
	return false
}

type Vehicle struct {
	ID            string
	VehicleNumber string
	VehicleName   string
	VehicleType   VehicleType
	CreatedAt     time.Time
}

type FuelRecord struct {
	ID        string
	VehicleID string
	Date      time.Time
	// FuelAmount is the volume in liters.
	FuelAmount  decimal.Decimal
	FuelCost    decimal.Decimal
	Description string
	CreatedAt   time.Time
}
