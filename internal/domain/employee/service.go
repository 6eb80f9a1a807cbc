package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	// List returns the roster with each employee's current-week summary.
	List(ctx context.Context) ([]EmployeeSummaryResponse, error)
	Delete(ctx context.Context, id string) error
}
