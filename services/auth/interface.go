package auth

import (
	"context"

	"farmereats/models"
)

// AuthGateway is the slice of the remote API the credential flows need.
// The gateway package's Client satisfies it.
type AuthGateway interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (*models.ForgotPasswordResponse, error)
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*models.Envelope, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.Envelope, error)
}

// AuthService defines the credential operations screens call into.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	ForgotPassword(ctx context.Context, phone string) (*models.ForgotPasswordResponse, error)
	VerifyOTP(ctx context.Context, otp string) error
	ResendOTP(ctx context.Context, phone string) error
	ResetPassword(ctx context.Context, newPassword, confirmPassword string) error
}
