package registration_test

import (
	"context"
	"errors"
	"testing"

	"farmereats/models"
	"farmereats/services/registration"
)

func validState(t *testing.T) models.FormState {
	t.Helper()
	store := registration.NewFormStore()
	fillAccount(t, store)
	fillBusinessInfo(t, store)
	store.SetFileAttached(true)
	if _, err := store.UpdateBusinessInfo(registration.BusinessRegistrationProof, "proof.pdf"); err != nil {
		t.Fatalf("seed proof: %v", err)
	}
	if _, err := store.UpdateBusinessHours(models.Monday, []models.TimeSlot{models.SlotMorning, models.SlotAfternoon}); err != nil {
		t.Fatalf("seed hours: %v", err)
	}
	return store.Snapshot()
}

func TestSubmit_RevalidatesDefensively(t *testing.T) {
	gw := okGateway()
	sub := &registration.GatewaySubmitter{Gateway: gw}

	state := validState(t)
	state.Verification.IsFileAttached = false

	_, err := sub.Submit(context.Background(), state)
	var verr registration.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatal("gateway called despite invalid aggregate")
	}
}

func TestSubmit_SuccessYieldsConfirmation(t *testing.T) {
	gw := okGateway()
	sub := &registration.GatewaySubmitter{Gateway: gw}

	conf, err := sub.Submit(context.Background(), validState(t))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if conf.Token != "tok" {
		t.Fatalf("confirmation token missing, got %+v", conf)
	}
}

func TestBuildRegisterRequest_WireNames(t *testing.T) {
	req := registration.BuildRegisterRequest(validState(t))

	if req.User.FullName != "Jane Doe" || req.User.Type != "email" || req.User.Role != "farmer" {
		t.Fatalf("user payload wrong: %+v", req.User)
	}
	if req.FormInfo.ZipCode != "33101" || req.FormInfo.RegistrationProof != "proof.pdf" {
		t.Fatalf("formInfo payload wrong: %+v", req.FormInfo)
	}
	if !req.Verification.IsFileAttached {
		t.Fatalf("verification payload wrong: %+v", req.Verification)
	}
	if got := req.BusinessHours["mon"]; len(got) != 2 || got[0] != "9AM - 11AM" || got[1] != "1PM - 3PM" {
		t.Fatalf("monday hours wrong: %v", got)
	}
	for _, day := range []string{"tue", "wed", "thu", "fri", "sat", "sun"} {
		if len(req.BusinessHours[day]) != 0 {
			t.Fatalf("%s should be empty", day)
		}
	}
	// social_id travels both nested and top-level, defaulting to empty.
	if req.SocialID != "" || req.User.SocialID != "" {
		t.Fatalf("social_id should default to empty, got %q / %q", req.SocialID, req.User.SocialID)
	}
}
