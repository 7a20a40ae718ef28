package employee

import "context"

// EmployeeRepository is the roster side of the record store. Employees are the
// root that payroll, attendance, and leave records reference by ID; they are
// soft-deactivated, never physically deleted, so historical records stay
// resolvable.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// GetActive returns employees with status Active, the batch payroll roster.
	GetActive(ctx context.Context) ([]Employee, error)

	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) (Employee, error)
}
