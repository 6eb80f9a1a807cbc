package employee

import "context"

// EmployeeRepository defines data access for the employee roster.
// Employees are create/delete only; there is no edit-in-place.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// List returns every employee, newest first.
	List(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}
