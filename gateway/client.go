// Package gateway wraps the FarmerEats HTTP API: registration, login,
// and the password recovery flow. It is the only place that knows the
// wire encodings; callers work with models types and the shared error
// taxonomy.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"farmereats/models"
	"farmereats/utils"

	"go.uber.org/zap"
)

// Client talks to the remote gateway. One instance is shared per
// process; it is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a gateway client. The timeout bounds every call,
// register included.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Register submits the composite signup payload as multipart/form-data.
// A success=false body comes back as a BusinessRuleError; transport
// faults come back as a TransportError with generic user-facing copy.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	body, contentType, err := buildRegisterForm(req)
	if err != nil {
		return nil, wrapTransport("register", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/register", body)
	if err != nil {
		return nil, wrapTransport("register", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	var resp models.RegisterResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	// The boolean flag is authoritative; a 2xx with success=false is
	// still a failure.
	if !resp.Success {
		return nil, BusinessRuleError{Op: "register", Message: resp.Message}
	}
	return &resp, nil
}

// Login authenticates an existing account.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.postJSON(ctx, "login", "/user/login", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, BusinessRuleError{Op: "login", Message: resp.Message}
	}
	return &resp, nil
}

// ForgotPassword requests an OTP for the given phone number.
func (c *Client) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (*models.ForgotPasswordResponse, error) {
	var resp models.ForgotPasswordResponse
	if err := c.postJSON(ctx, "forgot-password", "/user/forgot-password", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, BusinessRuleError{Op: "forgot-password", Message: resp.Message}
	}
	return &resp, nil
}

// VerifyOTP checks the one-time code from the recovery flow.
func (c *Client) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*models.Envelope, error) {
	var resp models.Envelope
	if err := c.postJSON(ctx, "verify-otp", "/user/verify-otp", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, BusinessRuleError{Op: "verify-otp", Message: resp.Message}
	}
	return &resp, nil
}

// ResetPassword sets a new password after OTP verification.
func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.Envelope, error) {
	var resp models.Envelope
	if err := c.postJSON(ctx, "reset-password", "/user/reset-password", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, BusinessRuleError{Op: "reset-password", Message: resp.Message}
	}
	return &resp, nil
}

// postJSON sends a JSON body and decodes the JSON answer into out.
func (c *Client) postJSON(ctx context.Context, op, path string, in, out any) error {
	encoded, err := json.Marshal(in)
	if err != nil {
		return wrapTransport(op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return wrapTransport(op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq, out)
}

// do executes the request and decodes the response body. Anything that
// is not a JSON envelope counts as a transport fault.
func (c *Client) do(req *http.Request, out any) error {
	op := req.URL.Path

	resp, err := c.httpc.Do(req)
	if err != nil {
		utils.GetLogger().Error("Gateway request failed", zap.String("op", op), zap.Error(err))
		return wrapTransport(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.GetLogger().Error("Failed to read gateway response", zap.String("op", op), zap.Error(err))
		return wrapTransport(op, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		utils.GetLogger().Error("Malformed gateway response",
			zap.String("op", op), zap.Int("status", resp.StatusCode), zap.Error(err))
		return wrapTransport(op, fmt.Errorf("malformed response (status %d): %w", resp.StatusCode, err))
	}
	return nil
}
