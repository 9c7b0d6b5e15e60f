package auth

import (
	"time"
)

// Admin is a back-office account. Username is the admin's email address;
// the first password is a one-time code mailed on creation.
type Admin struct {
	ID           string
	EmployeeID   string
	AdminName    string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
