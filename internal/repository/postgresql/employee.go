package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kennarhq/attendance-backend-go/internal/domain/employee"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

const employeeColumns = `
	employee_id, name, mobile_phone, date_of_birth, status,
	face_embedding, fingerprint_id, image, image_mime,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.EmployeeID, &emp.Name, &emp.MobilePhone, &emp.DateOfBirth, &emp.Status,
		&emp.FaceEmbedding, &emp.FingerprintID, &emp.Image, &emp.ImageMime,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			employee_id, name, mobile_phone, date_of_birth, status,
			face_embedding, fingerprint_id, image, image_mime
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeID, emp.Name, emp.MobilePhone, emp.DateOfBirth, emp.Status,
		emp.FaceEmbedding, emp.FingerprintID, emp.Image, emp.ImageMime,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE employee_id = $1`, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository. The image columns are only
// touched when withImage is set, so profile edits never clobber a stored
// photo the caller did not resubmit.
func (e *employeeRepository) Update(ctx context.Context, emp employee.Employee, withImage bool) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, mobile_phone = $2, date_of_birth = $3, status = $4,
		    face_embedding = $5, fingerprint_id = $6, updated_at = now()
		WHERE employee_id = $7
		RETURNING employee_id
	`
	args := []interface{}{
		emp.Name, emp.MobilePhone, emp.DateOfBirth, emp.Status,
		emp.FaceEmbedding, emp.FingerprintID, emp.EmployeeID,
	}

	if withImage {
		query = `
			UPDATE employees
			SET name = $1, mobile_phone = $2, date_of_birth = $3, status = $4,
			    face_embedding = $5, fingerprint_id = $6, image = $7, image_mime = $8,
			    updated_at = now()
			WHERE employee_id = $9
			RETURNING employee_id
		`
		args = []interface{}{
			emp.Name, emp.MobilePhone, emp.DateOfBirth, emp.Status,
			emp.FaceEmbedding, emp.FingerprintID, emp.Image, emp.ImageMime, emp.EmployeeID,
		}
	}

	var id string
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ListActiveIDs implements employee.EmployeeRepository.
func (e *employeeRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT employee_id FROM employees WHERE status = $1 ORDER BY employee_id`, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee id rows: %w", err)
	}

	return ids, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
