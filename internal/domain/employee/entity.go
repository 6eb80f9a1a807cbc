package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	Name          string
	Designation   string
	ContactNumber string
	DailyWage     decimal.Decimal
	PhotoURL      *string
	CreatedAt     time.Time
}
