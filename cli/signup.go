package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"farmereats/models"
	"farmereats/services/auth"
	"farmereats/services/registration"

	"github.com/spf13/cobra"
)

func signupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Run the four-step farmer signup wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignupWizard(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), wizard)
		},
	}
}

// errBack is returned by prompts when the user types "back".
var errBack = errors.New("back")

// runSignupWizard drives the step controller from terminal input. Each
// step collects its fields into the form store and then continues; a
// failing gate keeps the user on the step with the first reason shown,
// exactly as the app's screens behave. Typing "back" navigates to the
// previous step without validation.
func runSignupWizard(ctx context.Context, in io.Reader, out io.Writer, wiz *registration.Wizard) error {
	scanner := bufio.NewScanner(in)

	for {
		var err error
		switch wiz.Step() {
		case registration.StepAccountCreation:
			err = collectAccount(scanner, out, wiz.Store())
		case registration.StepFormInfo:
			err = collectBusinessInfo(scanner, out, wiz.Store())
		case registration.StepVerification:
			err = collectVerification(scanner, out, wiz.Store())
		case registration.StepBusinessHours:
			err = collectBusinessHours(scanner, out, wiz.Store())
		case registration.StepSuccess:
			fmt.Fprintln(out, "You're all done! Your account has been created.")
			return nil
		case registration.StepAbandoned:
			return nil
		}
		if errors.Is(err, errBack) {
			wiz.Back()
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := wiz.Continue(ctx); err != nil {
			fmt.Fprintln(out, auth.UserMessage(err))
		}
	}
}

func collectAccount(r *bufio.Scanner, out io.Writer, store *registration.FormStore) error {
	fmt.Fprintln(out, "-- Create your account --")
	fields := []struct {
		label string
		field registration.UserField
	}{
		{"Full name", registration.UserFullName},
		{"Email", registration.UserEmail},
		{"Phone (10 digits)", registration.UserPhone},
		{"Password", registration.UserPassword},
		{"Confirm password", registration.UserConfirmPassword},
	}
	for _, f := range fields {
		value, err := promptLine(r, out, f.label)
		if err != nil {
			return err
		}
		if _, err := store.UpdateUser(f.field, value); err != nil {
			return err
		}
	}
	return nil
}

func collectBusinessInfo(r *bufio.Scanner, out io.Writer, store *registration.FormStore) error {
	fmt.Fprintln(out, "-- Tell us about your farm --")
	fields := []struct {
		label string
		field registration.BusinessField
	}{
		{"Business name", registration.BusinessName},
		{"Informal name", registration.BusinessInformalName},
		{"Street address", registration.BusinessAddress},
		{"City", registration.BusinessCity},
		{"State", registration.BusinessState},
		{"Zipcode (5 digits)", registration.BusinessZipCode},
	}
	for _, f := range fields {
		value, err := promptLine(r, out, f.label)
		if err != nil {
			return err
		}
		if _, err := store.UpdateBusinessInfo(f.field, value); err != nil {
			return err
		}
	}
	return nil
}

func collectVerification(r *bufio.Scanner, out io.Writer, store *registration.FormStore) error {
	fmt.Fprintln(out, "-- Verification --")
	answer, err := promptLine(r, out, "Attach registration proof? (y/n)")
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		if _, err := store.UpdateBusinessInfo(registration.BusinessRegistrationProof, "registration_proof.pdf"); err != nil {
			return err
		}
		store.SetFileAttached(true)
		fmt.Fprintln(out, "File attached successfully!")
	}
	return nil
}

func collectBusinessHours(r *bufio.Scanner, out io.Writer, store *registration.FormStore) error {
	fmt.Fprintln(out, "-- Business hours --")
	fmt.Fprintln(out, "Pick slots per day, comma separated; blank means closed:")
	for i, slot := range models.AllTimeSlots {
		fmt.Fprintf(out, "  %d) %s\n", i+1, slot)
	}
	for _, day := range models.AllWeekdays {
		for {
			value, err := promptLine(r, out, string(day))
			if err != nil {
				return err
			}
			slots, perr := parseSlotChoices(value)
			if perr != nil {
				fmt.Fprintln(out, perr.Error())
				continue
			}
			if _, err := store.UpdateBusinessHours(day, slots); err != nil {
				return err
			}
			break
		}
	}
	return nil
}

// parseSlotChoices turns "1,3" into the matching slot labels.
func parseSlotChoices(value string) ([]models.TimeSlot, error) {
	if value == "" {
		return nil, nil
	}
	var slots []models.TimeSlot
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > len(models.AllTimeSlots) {
			return nil, fmt.Errorf("Please pick slots between 1 and %d.", len(models.AllTimeSlots))
		}
		slots = append(slots, models.AllTimeSlots[n-1])
	}
	return slots, nil
}

// promptLine reads one trimmed line. Typing "back" aborts the step;
// end of input reads as io.EOF.
func promptLine(r *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	if !r.Scan() {
		if err := r.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	value := strings.TrimSpace(r.Text())
	if strings.EqualFold(value, "back") {
		return "", errBack
	}
	return value, nil
}
