package employee

import (
	"context"
)

// EmployeeService exposes roster CRUD plus the stored photo.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, employeeID string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	GetImage(ctx context.Context, employeeID string) (ImageResponse, error)

	// Delete removes the employee and all of their attendance records.
	Delete(ctx context.Context, employeeID string) error
}
