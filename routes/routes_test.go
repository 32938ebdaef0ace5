package routes_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"farmereats/config"
	"farmereats/gateway"
	"farmereats/handlers"
	"farmereats/models"
	"farmereats/routes"
	"farmereats/services/registration"

	"github.com/gin-gonic/gin"
)

// startStub boots the stub gateway in-process and returns a client
// pointed at it, plus the bundle for reading issued OTPs.
func startStub(t *testing.T) (*gateway.Client, *handlers.HandlerBundle) {
	t.Helper()
	config.LoadConfig()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	hb := handlers.NewHandlerBundle()
	routes.RegisterRoutes(router, hb)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return gateway.NewClient(srv.URL, 5*time.Second), hb
}

func registeredState(t *testing.T) models.FormState {
	t.Helper()
	store := registration.NewFormStore()
	seedUser := map[registration.UserField]string{
		registration.UserFullName:        "New Farmer",
		registration.UserEmail:           "new@farm.com",
		registration.UserPhone:           "5559876543",
		registration.UserPassword:        "secret1",
		registration.UserConfirmPassword: "secret1",
	}
	for field, value := range seedUser {
		if _, err := store.UpdateUser(field, value); err != nil {
			t.Fatalf("seed %s: %v", field, err)
		}
	}
	seedBusiness := map[registration.BusinessField]string{
		registration.BusinessName:              "Sunrise Farm",
		registration.BusinessInformalName:      "Sunrise",
		registration.BusinessAddress:           "2 Field Ln",
		registration.BusinessCity:              "Austin",
		registration.BusinessState:             "TX",
		registration.BusinessZipCode:           "73301",
		registration.BusinessRegistrationProof: "proof.pdf",
	}
	for field, value := range seedBusiness {
		if _, err := store.UpdateBusinessInfo(field, value); err != nil {
			t.Fatalf("seed %s: %v", field, err)
		}
	}
	store.SetFileAttached(true)
	if _, err := store.UpdateBusinessHours(models.Saturday, []models.TimeSlot{models.SlotMorning}); err != nil {
		t.Fatalf("seed hours: %v", err)
	}
	return store.Snapshot()
}

func TestStub_RegisterThenLogin(t *testing.T) {
	client, _ := startStub(t)
	ctx := context.Background()

	resp, err := client.Register(ctx, registration.BuildRegisterRequest(registeredState(t)))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("register returned no token")
	}

	login, err := client.Login(ctx, models.LoginRequest{
		Email: "new@farm.com", Password: "secret1", Role: "farmer", Type: "email",
	})
	if err != nil {
		t.Fatalf("login after register: %v", err)
	}
	if login.Token == "" {
		t.Fatal("login returned no token")
	}
}

func TestStub_LoginFailureCopy(t *testing.T) {
	client, _ := startStub(t)
	ctx := context.Background()

	cases := []struct {
		req     models.LoginRequest
		message string
	}{
		{models.LoginRequest{Email: "ghost@farm.com", Password: "pw", Role: "farmer", Type: "email"}, "Account does not exist."},
		{models.LoginRequest{Email: "farmer@example.com", Password: "wrong", Role: "farmer", Type: "email"}, "Invalid password."},
		{models.LoginRequest{Email: "farmer@example.com", Password: "secret1", Role: "buyer", Type: "email"}, "Role not matched."},
		{models.LoginRequest{Email: "pending@example.com", Password: "secret1", Role: "farmer", Type: "email"}, "Account is not verified, please contact administrator."},
	}
	for _, tc := range cases {
		_, err := client.Login(ctx, tc.req)
		var berr gateway.BusinessRuleError
		if !errors.As(err, &berr) {
			t.Fatalf("%s: expected BusinessRuleError, got %v", tc.message, err)
		}
		if berr.Message != tc.message {
			t.Fatalf("expected %q, got %q", tc.message, berr.Message)
		}
	}
}

func TestStub_PasswordRecoveryFlow(t *testing.T) {
	client, hb := startStub(t)
	ctx := context.Background()

	forgot, err := client.ForgotPassword(ctx, models.ForgotPasswordRequest{PhoneNumber: "5551234567"})
	if err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if !forgot.AccountExists {
		t.Fatal("seeded account not found by phone")
	}

	code := hb.Store.LastOTP()
	if code == "" {
		t.Fatal("no OTP issued")
	}

	if _, err := client.VerifyOTP(ctx, models.VerifyOTPRequest{OTP: "000000"}); err == nil {
		t.Fatal("wrong OTP should fail")
	}
	if _, err := client.VerifyOTP(ctx, models.VerifyOTPRequest{OTP: code}); err != nil {
		t.Fatalf("verify OTP: %v", err)
	}
	if _, err := client.ResetPassword(ctx, models.ResetPasswordRequest{NewPassword: "newsecret"}); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	// The new password works, the old one does not.
	if _, err := client.Login(ctx, models.LoginRequest{
		Email: "farmer@example.com", Password: "newsecret", Role: "farmer", Type: "email",
	}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	_, err = client.Login(ctx, models.LoginRequest{
		Email: "farmer@example.com", Password: "secret1", Role: "farmer", Type: "email",
	})
	var berr gateway.BusinessRuleError
	if !errors.As(err, &berr) || berr.Message != "Invalid password." {
		t.Fatalf("old password should be rejected, got %v", err)
	}
}

func TestStub_ForgotPasswordUnknownPhone(t *testing.T) {
	client, _ := startStub(t)

	resp, err := client.ForgotPassword(context.Background(), models.ForgotPasswordRequest{PhoneNumber: "5551112222"})
	if err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if resp.AccountExists {
		t.Fatal("unknown phone reported as existing account")
	}
}
