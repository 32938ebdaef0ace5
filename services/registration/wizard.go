package registration

import (
	"context"

	"farmereats/utils"

	"go.uber.org/zap"
)

// Step identifies one screen-sized unit of the signup flow.
type Step string

const (
	StepAccountCreation Step = "account_creation"
	StepFormInfo        Step = "form_info"
	StepVerification    Step = "verification"
	StepBusinessHours   Step = "business_hours"
	StepSuccess         Step = "success"
	StepAbandoned       Step = "abandoned"
)

// forward order of the four gated steps.
var stepOrder = []Step{StepAccountCreation, StepFormInfo, StepVerification, StepBusinessHours}

// Wizard drives the four-step signup flow. Forward transitions are
// gated by the current step's validator; the last one also submits.
// Backward transitions are unconditional and mutate nothing but the
// position. The wizard runs on a single logical thread: inputs and
// gateway callbacks are handled one at a time.
type Wizard struct {
	store     *FormStore
	submitter Submitter
	step      Step
}

// NewWizard starts a session at account creation.
func NewWizard(store *FormStore, submitter Submitter) *Wizard {
	return &Wizard{store: store, submitter: submitter, step: StepAccountCreation}
}

// Store exposes the session's form store to screens.
func (w *Wizard) Store() *FormStore {
	return w.store
}

// Step reports the current position.
func (w *Wizard) Step() Step {
	return w.step
}

// Continue validates the current step against a fresh snapshot. Invalid
// input keeps the position and returns a ValidationError. On the final
// step a valid aggregate is submitted; submission failure also keeps
// the position. Success resets the form state.
func (w *Wizard) Continue(ctx context.Context) (Step, error) {
	state := w.store.Snapshot()

	var reasons []string
	switch w.step {
	case StepAccountCreation:
		reasons = ValidateUser(state.User)
	case StepFormInfo:
		reasons = ValidateBusinessInfo(state.BusinessInfo)
	case StepVerification:
		reasons = ValidateVerification(state.Verification)
	case StepBusinessHours:
		reasons = ValidateBusinessHours(state.BusinessHours)
	default:
		return w.step, nil
	}
	if len(reasons) > 0 {
		return w.step, ValidationError{Reasons: reasons}
	}

	if w.step != StepBusinessHours {
		w.step = w.nextStep()
		return w.step, nil
	}

	_, err := w.submitter.Submit(ctx, state)
	if w.step != StepBusinessHours {
		// The user navigated away while the request was in flight;
		// the outcome is discarded, not acted upon.
		utils.GetLogger().Debug("Discarding stale submission result", zap.String("step", string(w.step)))
		return w.step, nil
	}
	if err != nil {
		return w.step, err
	}

	w.step = StepSuccess
	w.store.Reset()
	return w.step, nil
}

// Back moves to the previous step without validation and without
// touching the form state. Backing out of the first step abandons the
// session; entered data is retained until Abandon is called.
func (w *Wizard) Back() Step {
	for i, step := range stepOrder {
		if step != w.step {
			continue
		}
		if i == 0 {
			w.step = StepAbandoned
		} else {
			w.step = stepOrder[i-1]
		}
		return w.step
	}
	return w.step
}

// Abandon ends the session and discards entered data.
func (w *Wizard) Abandon() {
	w.step = StepAbandoned
	w.store.Reset()
}

func (w *Wizard) nextStep() Step {
	for i, step := range stepOrder {
		if step == w.step && i+1 < len(stepOrder) {
			return stepOrder[i+1]
		}
	}
	return w.step
}
