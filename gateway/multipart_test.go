package gateway

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"reflect"
	"testing"

	"farmereats/models"
)

func sampleRequest() models.RegisterRequest {
	return models.RegisterRequest{
		User: models.RegisterUserPayload{
			FullName:    "Jane Doe",
			Password:    "secret1",
			Email:       "jane@farm.com",
			Phone:       "5551234567",
			Role:        "farmer",
			DeviceToken: "device-1",
			Type:        "email",
		},
		FormInfo: models.RegisterBusinessPayload{
			BusinessName:      "Green Acres",
			InformalName:      "Greens",
			Address:           "1 Farm Rd",
			City:              "Miami",
			State:             "FL",
			ZipCode:           "33101",
			RegistrationProof: "proof.pdf",
		},
		Verification: models.RegisterVerificationPayload{IsFileAttached: true, OTP: "123456"},
		BusinessHours: models.BusinessHoursPayload{
			"mon": {"9AM - 11AM", "1PM - 3PM"},
			"tue": {}, "wed": {}, "thu": {}, "fri": {"3PM - 5PM"}, "sat": {}, "sun": {},
		},
	}
}

// Serializing a fully-populated payload and parsing it back preserves
// every field's value.
func TestBuildRegisterForm_RoundTrip(t *testing.T) {
	req := sampleRequest()

	body, contentType, err := buildRegisterForm(req)
	if err != nil {
		t.Fatalf("build form: %v", err)
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}

	fields := map[string]string{}
	reader := multipart.NewReader(body, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		raw, err := io.ReadAll(part)
		if err != nil {
			t.Fatalf("read part body: %v", err)
		}
		fields[part.FormName()] = string(raw)
	}

	var user models.RegisterUserPayload
	if err := json.Unmarshal([]byte(fields["user"]), &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if !reflect.DeepEqual(user, req.User) {
		t.Fatalf("user section changed:\nsent %+v\ngot  %+v", req.User, user)
	}

	var formInfo models.RegisterBusinessPayload
	if err := json.Unmarshal([]byte(fields["formInfo"]), &formInfo); err != nil {
		t.Fatalf("decode formInfo: %v", err)
	}
	if !reflect.DeepEqual(formInfo, req.FormInfo) {
		t.Fatalf("formInfo section changed:\nsent %+v\ngot  %+v", req.FormInfo, formInfo)
	}

	var verification models.RegisterVerificationPayload
	if err := json.Unmarshal([]byte(fields["verification"]), &verification); err != nil {
		t.Fatalf("decode verification: %v", err)
	}
	if verification != req.Verification {
		t.Fatalf("verification section changed: %+v", verification)
	}

	var hours models.BusinessHoursPayload
	if err := json.Unmarshal([]byte(fields["businessHours"]), &hours); err != nil {
		t.Fatalf("decode businessHours: %v", err)
	}
	if !reflect.DeepEqual(hours, req.BusinessHours) {
		t.Fatalf("businessHours changed:\nsent %+v\ngot  %+v", req.BusinessHours, hours)
	}

	if got, ok := fields["social_id"]; !ok || got != req.SocialID {
		t.Fatalf("social_id field wrong: %q present=%v", got, ok)
	}
}
