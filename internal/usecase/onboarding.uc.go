package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"cotisation-service/internal/domain"
	"cotisation-service/internal/otp"
	"cotisation-service/internal/validation"
	"cotisation-service/pkg/xerrors"
)

// Toaster surfaces transient notifications to the active page.
type Toaster interface {
	Success(message string)
	Error(message string)
}

// CompletedContribution is the finalized payload handed to the completion
// callback, with the total already computed.
type CompletedContribution struct {
	BankID        string  `json:"bank_id"`
	AccountNumber string  `json:"account_number"`
	Amount        float64 `json:"amount"`
	Months        int     `json:"months"`
	Total         float64 `json:"total"`
}

// CompletionFunc fires exactly once per successful flow. The caller owns
// persistence of the result.
type CompletionFunc func(profile domain.Profile, c CompletedContribution, otpVerified bool)

// Summary is the live right-hand panel: current step state plus derived total.
type Summary struct {
	Step     string                   `json:"step"`
	Profile  domain.Profile           `json:"profile"`
	Otp      domain.OtpState          `json:"otp"`
	Draft    domain.ContributionDraft `json:"draft"`
	Total    float64                  `json:"total"`
	Errors   domain.FieldErrors       `json:"errors,omitempty"`
	Complete bool                     `json:"complete"`
}

// OnboardingFlow orchestrates the three-step flow: PROFILE -> OTP ->
// CONTRIBUTION. It is created fresh per onboarding attempt and torn down by
// the caller after completion.
type OnboardingFlow struct {
	mu      sync.Mutex
	step    domain.Step
	profile domain.Profile
	draft   domain.ContributionDraft
	errs    domain.FieldErrors
	otp     *otp.Manager
	done    bool

	bankExists func(string) bool
	onDone     CompletionFunc
	toasts     Toaster
	log        *zap.Logger
}

// NewOnboardingFlow starts at the profile step, optionally pre-seeded from an
// existing identity.
func NewOnboardingFlow(mgr *otp.Manager, bankExists func(string) bool, onDone CompletionFunc, toasts Toaster, log *zap.Logger, seed *domain.Identity) *OnboardingFlow {
	f := &OnboardingFlow{
		step:       domain.StepProfile,
		errs:       domain.FieldErrors{},
		otp:        mgr,
		bankExists: bankExists,
		onDone:     onDone,
		toasts:     toasts,
		log:        log,
	}
	if seed != nil {
		f.profile = domain.Profile{
			FullName: seed.FullName,
			Phone:    seed.Phone,
			Email:    seed.Email,
			Address:  seed.Address,
		}
	}
	return f
}

// Close releases the cooldown runner when the flow is discarded.
func (f *OnboardingFlow) Close() { f.otp.Close() }

func (f *OnboardingFlow) Step() domain.Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// SetProfile replaces the step-1 form values. Allowed until final submission
// since "back" makes the profile editable again.
func (f *OnboardingFlow) SetProfile(p domain.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = p
}

// SubmitProfile advances to the OTP step when validation passes.
func (f *OnboardingFlow) SubmitProfile() (domain.FieldErrors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return nil, xerrors.ErrFlowCompleted
	}
	if f.step != domain.StepProfile {
		return nil, xerrors.ErrWrongStep
	}
	if e := validation.ValidateProfile(f.profile); !e.Ok() {
		f.errs = e
		return e, nil
	}
	f.errs = domain.FieldErrors{}
	f.step = domain.StepOTP
	f.toasts.Success("Profile validated")
	return nil, nil
}

// SendOtp asks the OTP subsystem to deliver a fresh code to the profile
// phone. The code is returned for the demo summary panel only.
func (f *OnboardingFlow) SendOtp(ctx context.Context) (string, error) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return "", xerrors.ErrFlowCompleted
	}
	phone := f.profile.Phone
	f.mu.Unlock()

	code, err := f.otp.Send(ctx, phone)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrPhoneRequired):
			f.mu.Lock()
			f.errs = domain.FieldErrors{"phone": "Phone required to send OTP."}
			f.mu.Unlock()
		case errors.Is(err, xerrors.ErrOTPCooldown), errors.Is(err, xerrors.ErrOTPBusy):
			f.toasts.Error("OTP send unavailable, retry shortly")
		}
		return "", err
	}

	f.mu.Lock()
	delete(f.errs, "otp")
	f.mu.Unlock()
	f.toasts.Success(fmt.Sprintf("OTP sent to %s", phone))
	return code, nil
}

// VerifyOtp runs the verification and advances to the contribution step on a
// match. Digits are retained on mismatch so the user can correct in place.
func (f *OnboardingFlow) VerifyOtp(ctx context.Context) (domain.VerifyOutcome, domain.FieldErrors, error) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return "", nil, xerrors.ErrFlowCompleted
	}
	if f.step != domain.StepOTP {
		f.mu.Unlock()
		return "", nil, xerrors.ErrWrongStep
	}
	f.mu.Unlock()

	outcome, fieldErrs, err := f.otp.Verify(ctx)
	if err != nil {
		return "", nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	switch outcome {
	case domain.VerifyInvalid:
		for k, v := range fieldErrs {
			f.errs[k] = v
		}
	case domain.VerifyIncorrect:
		f.toasts.Error("OTP incorrect")
	case domain.VerifyVerified:
		delete(f.errs, "otp")
		f.step = domain.StepContribution
		f.toasts.Success("OTP verified")
	}
	return outcome, fieldErrs, nil
}

// OtpManager exposes the digit-entry operations to the shell.
func (f *OnboardingFlow) OtpManager() *otp.Manager { return f.otp }

// SetDraft replaces the step-3 form values.
func (f *OnboardingFlow) SetDraft(d domain.ContributionDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// Total recomputes the live summary total on demand.
func (f *OnboardingFlow) Total() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Total()
}

// SubmitContribution validates the draft, fires the completion callback once
// and marks the flow finished.
func (f *OnboardingFlow) SubmitContribution(ctx context.Context) (domain.FieldErrors, error) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return nil, xerrors.ErrFlowCompleted
	}
	if f.step != domain.StepContribution {
		f.mu.Unlock()
		return nil, xerrors.ErrWrongStep
	}
	if e := validation.ValidateContribution(f.draft, f.bankExists); !e.Ok() {
		f.errs = e
		f.mu.Unlock()
		return e, nil
	}
	f.errs = domain.FieldErrors{}

	amount, _ := strconv.ParseFloat(strings.TrimSpace(f.draft.Amount), 64)
	months, _ := strconv.Atoi(strings.TrimSpace(f.draft.Months))
	completed := CompletedContribution{
		BankID:        f.draft.BankID,
		AccountNumber: strings.TrimSpace(f.draft.AccountNumber),
		Amount:        amount,
		Months:        months,
		Total:         f.draft.Total(),
	}
	profile := f.profile
	verified := f.otp.State().Verified
	f.done = true
	onDone := f.onDone
	f.mu.Unlock()

	if onDone != nil {
		onDone(profile, completed, verified)
	}
	f.toasts.Success("Contribution confirmed")
	f.log.Info("onboarding complete",
		zap.String("bank_id", completed.BankID),
		zap.Float64("total", completed.Total))
	return nil, nil
}

// Back steps CONTRIBUTION -> OTP or OTP -> PROFILE unconditionally. Nothing
// is cleared; in particular a verified OTP stays verified.
func (f *OnboardingFlow) Back() domain.Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.step {
	case domain.StepContribution:
		f.step = domain.StepOTP
	case domain.StepOTP:
		f.step = domain.StepProfile
	}
	return f.step
}

// Summary snapshots the whole flow for the live panel.
func (f *OnboardingFlow) Summary() Summary {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := domain.FieldErrors{}
	for k, v := range f.errs {
		errs[k] = v
	}
	return Summary{
		Step:     f.step.String(),
		Profile:  f.profile,
		Otp:      f.otp.State(),
		Draft:    f.draft,
		Total:    f.draft.Total(),
		Errors:   errs,
		Complete: f.done,
	}
}
