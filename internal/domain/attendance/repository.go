package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByEmployeeAndDate returns (nil, nil) when the day is not marked.
	// Used to enforce the one-record-per-(employee,date) invariant.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// Update rewrites the mutable fields of an existing record in place.
	Update(ctx context.Context, rec Record) error

	// List returns every record, newest date first.
	List(ctx context.Context) ([]Record, error)

	// ListByWeek returns all records keyed to the given canonical week start.
	ListByWeek(ctx context.Context, weekStart time.Time) ([]Record, error)

	// ListByEmployee returns an employee's records within [from, to] inclusive.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
}
