package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kennarhq/attendance-backend-go/internal/domain/auth"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/email"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	auth.AdminRepository
	jwt.Service
	email email.EmailService
}

func NewAuthService(
	adminRepository auth.AdminRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
) auth.AuthService {
	return &AuthServiceImpl{
		AdminRepository: adminRepository,
		Service:         jwtService,
		email:           emailService,
	}
}

// CreateAdmin implements auth.AuthService.
func (a *AuthServiceImpl) CreateAdmin(ctx context.Context, req auth.CreateAdminRequest) (auth.CreateAdminResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.CreateAdminResponse{}, err
	}

	_, err := a.AdminRepository.GetByUsername(ctx, req.Username)
	if err == nil {
		return auth.CreateAdminResponse{}, auth.ErrUsernameExists
	}
	if !errors.Is(err, auth.ErrAdminNotFound) {
		return auth.CreateAdminResponse{}, fmt.Errorf("failed to check existing admin: %w", err)
	}

	otp, err := generateOTP()
	if err != nil {
		return auth.CreateAdminResponse{}, fmt.Errorf("failed to generate one-time password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return auth.CreateAdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := auth.Admin{
		ID:           uuid.New().String(),
		EmployeeID:   req.EmployeeID,
		AdminName:    req.AdminName,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Position,
	}

	created, err := a.AdminRepository.Create(ctx, admin)
	if err != nil {
		return auth.CreateAdminResponse{}, err
	}

	// The account stands even when the mail bounces; the code can be reissued
	// out of band.
	if err := a.email.SendAdminOTP(created.Username, created.AdminName, otp); err != nil {
		slog.Error("Failed to send admin OTP email", "username", created.Username, "error", err)
	}

	return auth.CreateAdminResponse{
		EmployeeID: created.EmployeeID,
		AdminName:  created.AdminName,
		Username:   created.Username,
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	admin, err := a.AdminRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(admin.ID, admin.Username, admin.EmployeeID, admin.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		AdminName:   admin.AdminName,
		EmployeeID:  admin.EmployeeID,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// generateOTP returns an 8-hex-character one-time password.
func generateOTP() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
