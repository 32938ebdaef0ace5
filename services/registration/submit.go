package registration

import (
	"context"

	"farmereats/models"
	"farmereats/utils"

	"go.uber.org/zap"
)

// GatewaySubmitter is the production Submitter.
type GatewaySubmitter struct {
	Gateway RegisterGateway
}

// Submit re-validates the full aggregate, serializes it for transport,
// and invokes the remote register operation. No automatic retry: every
// failure surfaces exactly once and the caller decides what to do.
func (s *GatewaySubmitter) Submit(ctx context.Context, state models.FormState) (*models.Confirmation, error) {
	// Defensive: a step's own gate may have been bypassed.
	if reasons := ValidateAll(state); len(reasons) > 0 {
		return nil, ValidationError{Reasons: reasons}
	}

	resp, err := s.Gateway.Register(ctx, BuildRegisterRequest(state))
	if err != nil {
		utils.GetLogger().Warn("Registration rejected", zap.Error(err))
		return nil, err
	}

	return &models.Confirmation{Message: resp.Message, Token: resp.Token}, nil
}

// BuildRegisterRequest translates the canonical FormState into the
// gateway's wire shape. External naming lives here and nowhere else.
func BuildRegisterRequest(state models.FormState) models.RegisterRequest {
	hours := make(models.BusinessHoursPayload, len(state.BusinessHours))
	for day, slots := range state.BusinessHours {
		labels := make([]string, len(slots))
		for i, slot := range slots {
			labels[i] = string(slot)
		}
		hours[string(day)] = labels
	}

	return models.RegisterRequest{
		User: models.RegisterUserPayload{
			FullName:    state.User.FullName,
			Password:    state.User.Password,
			Email:       state.User.Email,
			Phone:       state.User.Phone,
			Role:        string(state.User.Role),
			DeviceToken: state.User.DeviceToken,
			Type:        string(state.User.LoginType),
			SocialID:    state.User.SocialID,
		},
		FormInfo: models.RegisterBusinessPayload{
			BusinessName:      state.BusinessInfo.BusinessName,
			InformalName:      state.BusinessInfo.InformalName,
			Address:           state.BusinessInfo.Address,
			City:              state.BusinessInfo.City,
			State:             state.BusinessInfo.State,
			ZipCode:           state.BusinessInfo.ZipCode,
			RegistrationProof: state.BusinessInfo.RegistrationProofRef,
		},
		Verification: models.RegisterVerificationPayload{
			IsFileAttached: state.Verification.IsFileAttached,
			OTP:            state.Verification.OTP,
		},
		BusinessHours: hours,
		SocialID:      state.User.SocialID,
	}
}
