package handlers

import (
	"net/http"

	"farmereats/models"

	"github.com/gin-gonic/gin"
)

// ResetPasswordHandler applies a new password to the account that
// verified the last OTP.
func (hb *HandlerBundle) ResetPasswordHandler(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, "Invalid request body.")
		return
	}
	if len(req.NewPassword) < 6 {
		respondFailure(c, "Password must be at least 6 characters long.")
		return
	}

	if !hb.Store.resetPassword(req.NewPassword) {
		respondFailure(c, "OTP verification required before resetting the password.")
		return
	}

	c.JSON(http.StatusOK, models.Envelope{Success: true, Message: "Password reset successful!"})
}
