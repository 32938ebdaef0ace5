package registration

import (
	"regexp"

	"farmereats/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	zipPattern   = regexp.MustCompile(`^[0-9]{5}$`)
)

// Validators are pure: they read one section and return nil or a
// non-empty list of user-facing reasons, in check order.

// ValidateUser checks the account-creation fields.
func ValidateUser(u models.UserSection) []string {
	var reasons []string

	if u.FullName == "" || u.Email == "" || u.Phone == "" || u.Password == "" || u.ConfirmPassword == "" {
		reasons = append(reasons, "All fields are required.")
	}
	if u.Email != "" && !emailPattern.MatchString(u.Email) {
		reasons = append(reasons, "Please enter a valid email address.")
	}
	if u.Phone != "" && !phonePattern.MatchString(u.Phone) {
		reasons = append(reasons, "Please enter a valid 10-digit phone number.")
	}
	if u.Password != u.ConfirmPassword {
		reasons = append(reasons, "Passwords do not match.")
	}
	if u.Password != "" && len(u.Password) < 6 {
		reasons = append(reasons, "Password must be at least 6 characters long.")
	}
	return reasons
}

// ValidateBusinessInfo checks the farm details collected on step two.
func ValidateBusinessInfo(b models.BusinessInfoSection) []string {
	var reasons []string

	if b.BusinessName == "" || b.InformalName == "" || b.Address == "" || b.City == "" || b.State == "" || b.ZipCode == "" {
		reasons = append(reasons, "All fields are required.")
	}
	if b.ZipCode != "" && !zipPattern.MatchString(b.ZipCode) {
		reasons = append(reasons, "Please enter a valid 5-digit zipcode.")
	}
	return reasons
}

// ValidateVerification requires a registration proof to be attached.
func ValidateVerification(v models.VerificationSection) []string {
	if !v.IsFileAttached {
		return []string{"Please attach a file before continuing."}
	}
	return nil
}

// ValidateBusinessHours requires at least one day with a slot selected,
// and only slots from the fixed set.
func ValidateBusinessHours(h models.BusinessHours) []string {
	var reasons []string

	selected := false
	for _, slots := range h {
		if len(slots) > 0 {
			selected = true
			break
		}
	}
	if !selected {
		reasons = append(reasons, "Please select at least one day and one time slot.")
	}

	known := make(map[models.TimeSlot]bool, len(models.AllTimeSlots))
	for _, slot := range models.AllTimeSlots {
		known[slot] = true
	}
	for _, slots := range h {
		for _, slot := range slots {
			if !known[slot] {
				reasons = append(reasons, "Please choose time slots from the available options.")
				return reasons
			}
		}
	}
	return reasons
}

// ValidateAll re-checks every section, in wizard order. Submission runs
// this defensively in case a step's own gate was bypassed.
func ValidateAll(state models.FormState) []string {
	var reasons []string
	reasons = append(reasons, ValidateUser(state.User)...)
	reasons = append(reasons, ValidateBusinessInfo(state.BusinessInfo)...)
	reasons = append(reasons, ValidateVerification(state.Verification)...)
	reasons = append(reasons, ValidateBusinessHours(state.BusinessHours)...)
	return reasons
}
