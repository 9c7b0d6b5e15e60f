package auth

import (
	"context"
)

// AdminRepository stores back-office accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin Admin) (Admin, error)
	GetByUsername(ctx context.Context, username string) (Admin, error)
}
