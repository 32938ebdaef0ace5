package registration_test

import (
	"reflect"
	"testing"

	"farmereats/models"
	"farmereats/services/registration"
)

func TestUpdateUser_OnlyTargetedFieldChanges(t *testing.T) {
	store := registration.NewFormStore()
	before := store.Snapshot()

	after, err := store.UpdateUser(registration.UserEmail, "jane@farm.com")
	if err != nil {
		t.Fatalf("update user email: %v", err)
	}

	if after.User.Email != "jane@farm.com" {
		t.Fatalf("email not updated, got %q", after.User.Email)
	}
	// Every other field across all sections is unchanged.
	after.User.Email = before.User.Email
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("update touched more than the targeted field:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestUpdateBusinessInfo_DoesNotTouchOtherSections(t *testing.T) {
	store := registration.NewFormStore()
	if _, err := store.UpdateUser(registration.UserFullName, "Jane Doe"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	after, err := store.UpdateBusinessInfo(registration.BusinessCity, "Miami")
	if err != nil {
		t.Fatalf("update city: %v", err)
	}
	if after.BusinessInfo.City != "Miami" {
		t.Fatalf("city not updated, got %q", after.BusinessInfo.City)
	}
	if after.User.FullName != "Jane Doe" {
		t.Fatalf("user section changed by business update")
	}
}

func TestUpdateBusinessHours_ReplacesOneDayOnly(t *testing.T) {
	store := registration.NewFormStore()
	if _, err := store.UpdateBusinessHours(models.Tuesday, []models.TimeSlot{models.SlotMorning}); err != nil {
		t.Fatalf("seed tuesday: %v", err)
	}

	after, err := store.UpdateBusinessHours(models.Monday, []models.TimeSlot{models.SlotAfternoon})
	if err != nil {
		t.Fatalf("update monday: %v", err)
	}
	if got := after.BusinessHours[models.Monday]; len(got) != 1 || got[0] != models.SlotAfternoon {
		t.Fatalf("monday slots wrong: %v", got)
	}
	if got := after.BusinessHours[models.Tuesday]; len(got) != 1 || got[0] != models.SlotMorning {
		t.Fatalf("tuesday slots disturbed: %v", got)
	}
	for _, day := range []models.Weekday{models.Wednesday, models.Thursday, models.Friday, models.Saturday, models.Sunday} {
		if len(after.BusinessHours[day]) != 0 {
			t.Fatalf("%s gained slots unexpectedly", day)
		}
	}
}

func TestUpdate_UnknownFieldRejected(t *testing.T) {
	store := registration.NewFormStore()
	if _, err := store.UpdateUser("nickname", "x"); err == nil {
		t.Fatal("expected error for unknown user field")
	}
	if _, err := store.UpdateBusinessHours("funday", nil); err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}

func TestReset_Idempotent(t *testing.T) {
	store := registration.NewFormStore()
	if _, err := store.UpdateUser(registration.UserEmail, "jane@farm.com"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store.Reset()
	once := store.Snapshot()
	store.Reset()
	twice := store.Snapshot()

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("double reset differs from single reset")
	}
	if !reflect.DeepEqual(once, models.DefaultFormState()) {
		t.Fatalf("reset state is not the default state")
	}
}

func TestSnapshot_IsIsolatedFromStore(t *testing.T) {
	store := registration.NewFormStore()
	snap := store.Snapshot()
	snap.BusinessHours[models.Monday] = append(snap.BusinessHours[models.Monday], models.SlotMorning)

	if got := store.Snapshot().BusinessHours[models.Monday]; len(got) != 0 {
		t.Fatalf("mutating a snapshot leaked into the store: %v", got)
	}
}
