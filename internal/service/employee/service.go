package employee

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/kennarhq/attendance-backend-go/internal/domain/employee"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/database"
	"github.com/kennarhq/attendance-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		attendanceRepo:     attendanceRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dob, err := employee.ParseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.StatusActive
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	emp := employee.Employee{
		EmployeeID:    req.EmployeeID,
		Name:          req.Name,
		MobilePhone:   req.MobilePhone,
		DateOfBirth:   dob,
		Status:        status,
		FaceEmbedding: req.FaceEmbedding,
		FingerprintID: req.FingerprintID,
		Image:         req.Image,
		ImageMime:     req.ImageMime,
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	dob, err := employee.ParseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing.Name = req.Name
	existing.MobilePhone = req.MobilePhone
	existing.DateOfBirth = dob
	existing.FaceEmbedding = req.FaceEmbedding
	existing.FingerprintID = req.FingerprintID
	if req.Status != nil && *req.Status != "" {
		existing.Status = *req.Status
	}

	// Without a new upload the stored photo stays as is.
	withImage := len(req.Image) > 0
	if withImage {
		existing.Image = req.Image
		existing.ImageMime = req.ImageMime
	}

	if err := s.EmployeeRepository.Update(ctx, existing, withImage); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(existing), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// GetImage implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetImage(ctx context.Context, employeeID string) (employee.ImageResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.ImageResponse{}, err
	}
	if len(emp.Image) == 0 {
		return employee.ImageResponse{}, employee.ErrNoImage
	}

	mime := "image/jpeg"
	if emp.ImageMime != nil && *emp.ImageMime != "" {
		mime = *emp.ImageMime
	}

	return employee.ImageResponse{
		Base64: fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(emp.Image)),
	}, nil
}

// Delete implements employee.EmployeeService. The employee and their
// attendance history go in one transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteByEmployee(txCtx, employeeID); err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", err)
		}
		return s.EmployeeRepository.Delete(txCtx, employeeID)
	})
}
