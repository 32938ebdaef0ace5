package auth

import (
	"context"

	"farmereats/gateway"
	"farmereats/models"
	"farmereats/services/registration"
)

// ForgotPassword requests a recovery OTP for the given phone number.
// When the gateway reports no account for the number, the caller gets a
// BusinessRuleError with dedicated copy.
func (s *DefaultAuthService) ForgotPassword(ctx context.Context, phone string) (*models.ForgotPasswordResponse, error) {
	if phone == "" {
		return nil, registration.ValidationError{Reasons: []string{"Please enter your phone number."}}
	}

	resp, err := s.Gateway.ForgotPassword(ctx, models.ForgotPasswordRequest{PhoneNumber: phone})
	if err != nil {
		return nil, err
	}
	if !resp.AccountExists {
		return nil, gateway.BusinessRuleError{Op: "forgot-password", Message: "Account does not exist for this phone number."}
	}
	return resp, nil
}

// VerifyOTP checks the six-digit recovery code.
func (s *DefaultAuthService) VerifyOTP(ctx context.Context, otp string) error {
	if len(otp) != 6 {
		return registration.ValidationError{Reasons: []string{"Please enter a complete OTP."}}
	}
	_, err := s.Gateway.VerifyOTP(ctx, models.VerifyOTPRequest{OTP: otp})
	return err
}

// ResendOTP re-runs the forgot-password request for the same number.
func (s *DefaultAuthService) ResendOTP(ctx context.Context, phone string) error {
	_, err := s.ForgotPassword(ctx, phone)
	return err
}

// ResetPassword sets the new password after a verified OTP. Equality
// and length are checked locally before the gateway is involved.
func (s *DefaultAuthService) ResetPassword(ctx context.Context, newPassword, confirmPassword string) error {
	if newPassword == "" || confirmPassword == "" {
		return registration.ValidationError{Reasons: []string{"Please fill in all fields."}}
	}
	if newPassword != confirmPassword {
		return registration.ValidationError{Reasons: []string{"Passwords do not match."}}
	}
	if len(newPassword) < 6 {
		return registration.ValidationError{Reasons: []string{"Password must be at least 6 characters long."}}
	}

	_, err := s.Gateway.ResetPassword(ctx, models.ResetPasswordRequest{NewPassword: newPassword})
	return err
}
