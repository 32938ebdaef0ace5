package handlers

import (
	"net/http"
	"time"

	"farmereats/models"
	"farmereats/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// LoginHandler authenticates a seeded or registered account. Failure
// copy matches the production API verbatim so clients can route on it.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, "Invalid request body.")
		return
	}

	if req.Email == "" {
		respondFailure(c, "Email cannot be empty.")
		return
	}
	if req.Password == "" {
		respondFailure(c, "Password cannot be empty.")
		return
	}

	acct := hb.Store.accountByEmail(req.Email)
	if acct == nil {
		respondFailure(c, "Account does not exist.")
		return
	}
	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(req.Password)); err != nil {
		respondFailure(c, "Invalid password.")
		return
	}
	if req.Role != acct.Role {
		respondFailure(c, "Role not matched.")
		return
	}
	if req.Type != acct.LoginType {
		respondFailure(c, "Type not matched.")
		return
	}
	if !acct.Verified {
		respondFailure(c, "Account is not verified, please contact administrator.")
		return
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, 24*time.Hour)
	if err != nil {
		respondFailure(c, "Login failed. Please try again.")
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Envelope: models.Envelope{Success: true, Message: "Login successful."},
		Token:    token,
	})
}
