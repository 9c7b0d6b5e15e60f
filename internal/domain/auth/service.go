package auth

import (
	"context"
)

// AuthService creates admin accounts and issues access tokens.
type AuthService interface {
	// CreateAdmin stores the account with a generated one-time password and
	// mails it to the admin. The mail is best effort; a delivery failure
	// never rolls back the account.
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (CreateAdminResponse, error)

	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
