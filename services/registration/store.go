package registration

import (
	"fmt"
	"sync"

	"farmereats/models"
)

// Field tags for section-scoped updates. Tags reuse the wire names so
// screens and tests speak one vocabulary.
type UserField string

const (
	UserFullName        UserField = "full_name"
	UserPassword        UserField = "password"
	UserConfirmPassword UserField = "confirm_password"
	UserEmail           UserField = "email"
	UserPhone           UserField = "phone"
	UserRole            UserField = "role"
	UserDeviceToken     UserField = "device_token"
	UserLoginType       UserField = "type"
	UserSocialID        UserField = "social_id"
)

type BusinessField string

const (
	BusinessName              BusinessField = "business_name"
	BusinessInformalName      BusinessField = "informal_name"
	BusinessAddress           BusinessField = "address"
	BusinessCity              BusinessField = "city"
	BusinessState             BusinessField = "state"
	BusinessZipCode           BusinessField = "zip_code"
	BusinessRegistrationProof BusinessField = "registration_proof"
)

// FormStore owns the one FormState of an in-progress wizard session.
// Every mutation goes through it; everyone else reads snapshots.
type FormStore struct {
	mu    sync.RWMutex
	state models.FormState
}

// NewFormStore creates a store holding the default all-empty state.
func NewFormStore() *FormStore {
	return &FormStore{state: models.DefaultFormState()}
}

// Snapshot returns a deep copy of the current state.
func (s *FormStore) Snapshot() models.FormState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// UpdateUser replaces one field of the user section and returns the new
// snapshot. Every other field, in every section, is left untouched.
func (s *FormStore) UpdateUser(field UserField, value string) (models.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case UserFullName:
		s.state.User.FullName = value
	case UserPassword:
		s.state.User.Password = value
	case UserConfirmPassword:
		s.state.User.ConfirmPassword = value
	case UserEmail:
		s.state.User.Email = value
	case UserPhone:
		s.state.User.Phone = value
	case UserRole:
		s.state.User.Role = models.Role(value)
	case UserDeviceToken:
		s.state.User.DeviceToken = value
	case UserLoginType:
		s.state.User.LoginType = models.LoginType(value)
	case UserSocialID:
		s.state.User.SocialID = value
	default:
		return s.state.Clone(), fmt.Errorf("unknown user field %q", field)
	}
	return s.state.Clone(), nil
}

// UpdateBusinessInfo replaces one field of the business-info section.
func (s *FormStore) UpdateBusinessInfo(field BusinessField, value string) (models.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case BusinessName:
		s.state.BusinessInfo.BusinessName = value
	case BusinessInformalName:
		s.state.BusinessInfo.InformalName = value
	case BusinessAddress:
		s.state.BusinessInfo.Address = value
	case BusinessCity:
		s.state.BusinessInfo.City = value
	case BusinessState:
		s.state.BusinessInfo.State = value
	case BusinessZipCode:
		s.state.BusinessInfo.ZipCode = value
	case BusinessRegistrationProof:
		s.state.BusinessInfo.RegistrationProofRef = value
	default:
		return s.state.Clone(), fmt.Errorf("unknown business field %q", field)
	}
	return s.state.Clone(), nil
}

// SetFileAttached records whether a registration proof is attached.
func (s *FormStore) SetFileAttached(attached bool) models.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Verification.IsFileAttached = attached
	return s.state.Clone()
}

// SetOTP records the verification code.
func (s *FormStore) SetOTP(code string) models.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Verification.OTP = code
	return s.state.Clone()
}

// UpdateBusinessHours replaces the slot list for one day only.
func (s *FormStore) UpdateBusinessHours(day models.Weekday, slots []models.TimeSlot) (models.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.BusinessHours[day]; !ok {
		return s.state.Clone(), fmt.Errorf("unknown weekday %q", day)
	}
	copied := make([]models.TimeSlot, len(slots))
	copy(copied, slots)
	s.state.BusinessHours[day] = copied
	return s.state.Clone(), nil
}

// Reset restores the default all-empty state. Calling it twice is the
// same as calling it once.
func (s *FormStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.DefaultFormState()
}
