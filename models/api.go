package models

// Wire DTOs for the FarmerEats gateway. Field names follow the API's
// conventions (snake_case); any translation from the in-memory FormState
// happens in the gateway serializer, never in calling code.

// Envelope is the minimal shape every gateway response carries.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterUserPayload is the "user" part of the register request.
type RegisterUserPayload struct {
	FullName    string `json:"full_name"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	DeviceToken string `json:"device_token"`
	Type        string `json:"type"`
	SocialID    string `json:"social_id"`
}

// RegisterBusinessPayload is the "formInfo" part of the register request.
type RegisterBusinessPayload struct {
	BusinessName      string `json:"business_name"`
	InformalName      string `json:"informal_name"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	ZipCode           string `json:"zip_code"`
	RegistrationProof string `json:"registration_proof"`
}

// RegisterVerificationPayload is the "verification" part of the register request.
type RegisterVerificationPayload struct {
	IsFileAttached bool   `json:"is_file_attached"`
	OTP            string `json:"otp"`
}

// BusinessHoursPayload keys weekdays (mon..sun) to slot labels.
type BusinessHoursPayload map[string][]string

// RegisterRequest is the composite registration payload. It travels as
// multipart/form-data with each nested section JSON-stringified into its
// own field, plus a top-level social_id.
type RegisterRequest struct {
	User          RegisterUserPayload         `json:"user"`
	FormInfo      RegisterBusinessPayload     `json:"formInfo"`
	Verification  RegisterVerificationPayload `json:"verification"`
	BusinessHours BusinessHoursPayload        `json:"businessHours"`
	SocialID      string                      `json:"social_id"`
}

// RegisterResponse is the gateway's answer to a register call.
type RegisterResponse struct {
	Envelope
	Token string `json:"token,omitempty"`
}

// LoginRequest is the /user/login body.
type LoginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	DeviceToken string `json:"device_token"`
	Type        string `json:"type"`
	SocialID    string `json:"social_id"`
}

// LoginResponse is the gateway's answer to a login call.
type LoginResponse struct {
	Envelope
	Token string `json:"token,omitempty"`
}

// ForgotPasswordRequest is the /user/forgot-password body.
type ForgotPasswordRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// ForgotPasswordResponse carries whether an account exists for the
// submitted phone number alongside the usual envelope.
type ForgotPasswordResponse struct {
	Envelope
	AccountExists bool `json:"accountExists"`
}

// VerifyOTPRequest is the /user/verify-otp body.
type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

// ResetPasswordRequest is the /user/reset-password body.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// Confirmation is the success outcome of a completed registration.
type Confirmation struct {
	Message string
	Token   string
}
