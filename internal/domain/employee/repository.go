package employee

import (
	"context"
)

// EmployeeRepository is the persistence boundary for the employee roster.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, employeeID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee, withImage bool) error
	Delete(ctx context.Context, employeeID string) error

	// ListActiveIDs backs the daily aggregator's roster set.
	ListActiveIDs(ctx context.Context) ([]string, error)
}
