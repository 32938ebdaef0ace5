package handlers

import (
	"net/http"
	"time"

	"farmereats/models"
	"farmereats/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const otpTTL = 5 * time.Minute

// ForgotPasswordHandler issues a recovery OTP for a known phone number.
// The OTP is logged instead of sent; the stub has no SMS channel.
func (hb *HandlerBundle) ForgotPasswordHandler(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, "Invalid request body.")
		return
	}
	if req.PhoneNumber == "" {
		respondFailure(c, "Phone number cannot be empty.")
		return
	}

	acct := hb.Store.accountByPhone(req.PhoneNumber)
	if acct == nil {
		c.JSON(http.StatusOK, models.ForgotPasswordResponse{
			Envelope:      models.Envelope{Success: true, Message: "No account found for this phone number."},
			AccountExists: false,
		})
		return
	}

	code, err := utils.GenerateSecureOTP(6)
	if err != nil {
		utils.GetLogger().Error("Failed to generate OTP", zap.Error(err))
		respondFailure(c, "Failed to send OTP. Please try again.")
		return
	}
	hb.Store.issueOTP(req.PhoneNumber, code, otpTTL)
	utils.GetLogger().Info("Stub gateway issued OTP",
		zap.String("phone", req.PhoneNumber), zap.String("otp", code))

	c.JSON(http.StatusOK, models.ForgotPasswordResponse{
		Envelope:      models.Envelope{Success: true, Message: "OTP sent to your phone."},
		AccountExists: true,
	})
}
