package auth

import (
	"github.com/kennarhq/attendance-backend-go/internal/pkg/validator"
)

type CreateAdminRequest struct {
	EmployeeID string `json:"employee_id"`
	AdminName  string `json:"admin_name"`
	Username   string `json:"username"`
	Position   string `json:"position"`
}

func (r *CreateAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.AdminName) {
		errs = append(errs, validator.ValidationError{Field: "admin_name", Message: "admin_name is required"})
	}
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	} else if !validator.IsValidEmail(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username must be an email address"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateAdminResponse struct {
	EmployeeID string `json:"employee_id"`
	AdminName  string `json:"admin_name"`
	Username   string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AdminName   string `json:"admin_name"`
	EmployeeID  string `json:"employee_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
