package validation

import (
	"math"
	"strconv"
	"strings"

	"cotisation-service/internal/domain"
)

// Pure field validators, one per onboarding step. Each returns an empty map
// iff every check passes.

func ValidateProfile(p domain.Profile) domain.FieldErrors {
	e := domain.FieldErrors{}
	if strings.TrimSpace(p.FullName) == "" {
		e["full_name"] = "Name required."
	}
	if strings.TrimSpace(p.Phone) == "" {
		e["phone"] = "Phone required."
	}
	if strings.TrimSpace(p.Email) != "" && !strings.Contains(p.Email, "@") {
		e["email"] = "Invalid email."
	}
	if strings.TrimSpace(p.Address) == "" {
		e["address"] = "Address required."
	}
	return e
}

// ValidateOtpStep keeps the original overwrite order: the not-sent message is
// replaced by the length message whenever both apply.
func ValidateOtpStep(s domain.OtpState) domain.FieldErrors {
	e := domain.FieldErrors{}
	if !s.Sent {
		e["otp"] = "Send the OTP first."
	}
	if code := s.Code(); len(code) != domain.OTPDigits {
		e["otp"] = "Invalid OTP (6 digits)."
	}
	return e
}

// ValidateContribution checks the step-3 draft. bankExists resolves BankID
// against the reference data. Blank and length checks on the account number
// are independent, the length message overwriting the blank one.
func ValidateContribution(d domain.ContributionDraft, bankExists func(string) bool) domain.FieldErrors {
	e := domain.FieldErrors{}
	if d.BankID == "" {
		e["bank_id"] = "Choose a bank."
	} else if bankExists != nil && !bankExists(d.BankID) {
		e["bank_id"] = "Unknown bank."
	}

	account := strings.TrimSpace(d.AccountNumber)
	if account == "" {
		e["account_number"] = "Account number required."
	}
	if len(account) < 6 {
		e["account_number"] = "Account number too short."
	}

	// ParseFloat parses "NaN" and "Inf" without error; both must fail here.
	amount, errA := strconv.ParseFloat(strings.TrimSpace(d.Amount), 64)
	if d.Amount == "" || errA != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		e["amount"] = "Invalid amount."
	}
	months, errM := strconv.ParseFloat(strings.TrimSpace(d.Months), 64)
	if d.Months == "" || errM != nil || math.IsNaN(months) || math.IsInf(months, 0) || months <= 0 {
		e["months"] = "Invalid months."
	}

	if !d.Accepted {
		e["accepted"] = "You must accept the terms."
	}
	return e
}
