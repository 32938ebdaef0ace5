package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"farmereats/models"
	"farmereats/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterHandler accepts the composite signup payload: multipart form
// fields "user", "formInfo", "verification" and "businessHours" carry
// JSON-stringified sections, "social_id" is a plain field.
func (hb *HandlerBundle) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var user models.RegisterUserPayload
	if !decodeSection(c, "user", &user) {
		return
	}
	var formInfo models.RegisterBusinessPayload
	if !decodeSection(c, "formInfo", &formInfo) {
		return
	}
	var verification models.RegisterVerificationPayload
	if !decodeSection(c, "verification", &verification) {
		return
	}
	var hours models.BusinessHoursPayload
	if !decodeSection(c, "businessHours", &hours) {
		return
	}

	if user.Email == "" {
		respondFailure(c, "Email cannot be empty.")
		return
	}
	if user.Password == "" {
		respondFailure(c, "Password cannot be empty.")
		return
	}
	if user.Role != "farmer" {
		respondFailure(c, "Role not matched.")
		return
	}
	if !verification.IsFileAttached {
		respondFailure(c, "Registration proof is required.")
		return
	}
	hasSlot := false
	for _, slots := range hours {
		if len(slots) > 0 {
			hasSlot = true
			break
		}
	}
	if !hasSlot {
		respondFailure(c, "Business hours are required.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		respondFailure(c, "Failed to create an account. Please try again.")
		return
	}
	acct := &account{
		ID:           uuid.New().String(),
		FullName:     user.FullName,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: hash,
		Role:         user.Role,
		LoginType:    user.Type,
		SocialID:     user.SocialID,
		Verified:     true,
	}
	if !hb.Store.addAccount(acct) {
		respondFailure(c, "Account already exists.")
		return
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, 24*time.Hour)
	if err != nil {
		logger.Error("Failed to generate auth token", zap.Error(err))
		respondFailure(c, "Failed to create an account. Please try again.")
		return
	}

	logger.Info("Stub gateway registered account", zap.String("email", acct.Email))
	c.JSON(http.StatusOK, models.RegisterResponse{
		Envelope: models.Envelope{Success: true, Message: "User registered successfully!"},
		Token:    token,
	})
}

// decodeSection pulls one JSON-stringified multipart field. A missing
// or malformed section fails the whole request.
func decodeSection(c *gin.Context, field string, out any) bool {
	raw := c.PostForm(field)
	if raw == "" {
		respondFailure(c, field+" section is required.")
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		utils.GetLogger().Warn("Malformed section in register request",
			zap.String("field", field), zap.Error(err))
		respondFailure(c, field+" section is malformed.")
		return false
	}
	return true
}

// respondFailure answers with the gateway's failure envelope. Business
// failures keep HTTP 200; clients key off the boolean flag.
func respondFailure(c *gin.Context, message string) {
	c.JSON(http.StatusOK, models.Envelope{Success: false, Message: message})
}
