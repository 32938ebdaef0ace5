package auth

import (
	"context"

	"farmereats/gateway"
	"farmereats/models"
	"farmereats/services/registration"

	"github.com/google/uuid"
)

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Gateway     AuthGateway
	DeviceToken string
}

// NewAuthService builds the service with a fresh per-install device token.
func NewAuthService(gw AuthGateway) *DefaultAuthService {
	return &DefaultAuthService{Gateway: gw, DeviceToken: uuid.New().String()}
}

// Login authenticates with the farmer role over email credentials.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	if email == "" || password == "" {
		return nil, registration.ValidationError{Reasons: []string{"Please enter both email and password."}}
	}

	return s.Gateway.Login(ctx, models.LoginRequest{
		Email:       email,
		Password:    password,
		Role:        string(models.RoleFarmer),
		DeviceToken: s.DeviceToken,
		Type:        string(models.LoginTypeEmail),
		SocialID:    "",
	})
}

// knownFailureMessages are the gateway failure texts with dedicated UI
// copy; anything else falls back to a generic message.
var knownFailureMessages = map[string]bool{
	"Email cannot be empty.":    true,
	"Password cannot be empty.": true,
	"Invalid password.":         true,
	"Account does not exist.":   true,
	"Role not matched.":         true,
	"Type not matched.":         true,
	"Social id not matched.":    true,
	"Social id cannot be empty.":                             true,
	"Account is not verified, please contact administrator.": true,
	"Account does not exist for this phone number.":          true,
}

// UserMessage maps an error from any credential flow to the text shown
// in a blocking alert.
func UserMessage(err error) string {
	switch e := err.(type) {
	case registration.ValidationError:
		return e.Error()
	case gateway.BusinessRuleError:
		if knownFailureMessages[e.Message] {
			return e.Message
		}
		return "An unexpected error occurred. Please try again."
	case gateway.TransportError:
		return e.Error()
	default:
		return "An error occurred. Please try again."
	}
}
