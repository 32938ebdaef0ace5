package handlers

import (
	"net/http"

	"farmereats/models"

	"github.com/gin-gonic/gin"
)

// VerifyOTPHandler checks the submitted recovery code against the last
// issued one.
func (hb *HandlerBundle) VerifyOTPHandler(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, "Invalid request body.")
		return
	}
	if req.OTP == "" {
		respondFailure(c, "OTP cannot be empty.")
		return
	}

	ok, expired := hb.Store.verifyOTP(req.OTP)
	if expired {
		respondFailure(c, "OTP has expired. Please request a new one.")
		return
	}
	if !ok {
		respondFailure(c, "Invalid OTP.")
		return
	}

	c.JSON(http.StatusOK, models.Envelope{Success: true, Message: "OTP verified."})
}
