package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kennarhq/attendance-backend-go/internal/domain/auth"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/database"
)

type adminRepository struct {
	db *database.DB
}

// Create implements auth.AdminRepository.
func (a *adminRepository) Create(ctx context.Context, admin auth.Admin) (auth.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO admins (id, employee_id, admin_name, username, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		admin.ID, admin.EmployeeID, admin.AdminName, admin.Username, admin.PasswordHash, admin.Role,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return auth.Admin{}, auth.ErrUsernameExists
		}
		return auth.Admin{}, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// GetByUsername implements auth.AdminRepository.
func (a *adminRepository) GetByUsername(ctx context.Context, username string) (auth.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, admin_name, username, password_hash, role, created_at, updated_at
		FROM admins
		WHERE username = $1
	`

	var admin auth.Admin
	err := q.QueryRow(ctx, query, username).Scan(
		&admin.ID, &admin.EmployeeID, &admin.AdminName, &admin.Username,
		&admin.PasswordHash, &admin.Role, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Admin{}, auth.ErrAdminNotFound
		}
		return auth.Admin{}, fmt.Errorf("failed to get admin by username: %w", err)
	}

	return admin, nil
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepository{db: db}
}
