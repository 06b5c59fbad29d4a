package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cotisation-service/internal/domain"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.Profile
		want    map[string]string
	}{
		{
			name:    "valid full profile",
			profile: domain.Profile{FullName: "A B", Phone: "77123456", Email: "a@b.com", Address: "X"},
			want:    map[string]string{},
		},
		{
			name:    "email optional",
			profile: domain.Profile{FullName: "A B", Phone: "77123456", Address: "X"},
			want:    map[string]string{},
		},
		{
			name:    "all blank",
			profile: domain.Profile{},
			want: map[string]string{
				"full_name": "Name required.",
				"phone":     "Phone required.",
				"address":   "Address required.",
			},
		},
		{
			name:    "whitespace only counts as blank",
			profile: domain.Profile{FullName: "  ", Phone: "\t", Address: " "},
			want: map[string]string{
				"full_name": "Name required.",
				"phone":     "Phone required.",
				"address":   "Address required.",
			},
		},
		{
			name:    "email without at sign",
			profile: domain.Profile{FullName: "A", Phone: "7", Email: "nope", Address: "X"},
			want:    map[string]string{"email": "Invalid email."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, domain.FieldErrors(tt.want), ValidateProfile(tt.profile))
		})
	}
}

func TestValidateOtpStep(t *testing.T) {
	var full domain.OtpState
	full.Sent = true
	full.Digits = [domain.OTPDigits]string{"1", "2", "3", "4", "5", "6"}
	assert.True(t, ValidateOtpStep(full).Ok())

	// not sent and empty: length message wins over the not-sent message
	var fresh domain.OtpState
	e := ValidateOtpStep(fresh)
	assert.Equal(t, "Invalid OTP (6 digits).", e["otp"])

	var short domain.OtpState
	short.Sent = true
	short.Digits = [domain.OTPDigits]string{"1", "2", "3", "", "", ""}
	e = ValidateOtpStep(short)
	assert.Equal(t, "Invalid OTP (6 digits).", e["otp"])

	// sent but complete code missing one slot
	var gap domain.OtpState
	gap.Sent = true
	gap.Digits = [domain.OTPDigits]string{"1", "2", "", "4", "5", "6"}
	assert.False(t, ValidateOtpStep(gap).Ok())
}

func TestValidateContribution(t *testing.T) {
	knownBank := func(id string) bool { return id == "exim" }

	valid := domain.ContributionDraft{
		BankID:        "exim",
		AccountNumber: "100200300",
		Amount:        "6000",
		Months:        "6",
		Accepted:      true,
	}
	assert.True(t, ValidateContribution(valid, knownBank).Ok())

	t.Run("empty bank rejected regardless of other fields", func(t *testing.T) {
		d := valid
		d.BankID = ""
		e := ValidateContribution(d, knownBank)
		assert.Equal(t, "Choose a bank.", e["bank_id"])
	})

	t.Run("unknown bank rejected", func(t *testing.T) {
		d := valid
		d.BankID = "ghost"
		e := ValidateContribution(d, knownBank)
		assert.Equal(t, "Unknown bank.", e["bank_id"])
	})

	t.Run("account length five gets the length message", func(t *testing.T) {
		d := valid
		d.AccountNumber = "12345"
		e := ValidateContribution(d, knownBank)
		assert.Equal(t, "Account number too short.", e["account_number"])
	})

	t.Run("blank account overwritten by length message", func(t *testing.T) {
		d := valid
		d.AccountNumber = "   "
		e := ValidateContribution(d, knownBank)
		assert.Equal(t, "Account number too short.", e["account_number"])
	})

	t.Run("amount must be a finite positive number", func(t *testing.T) {
		for _, bad := range []string{"", "abc", "0", "-5", "NaN", "Inf", "+Inf", "-Inf"} {
			d := valid
			d.Amount = bad
			e := ValidateContribution(d, knownBank)
			assert.Equal(t, "Invalid amount.", e["amount"], "amount=%q", bad)
		}
	})

	t.Run("months must be a finite positive number", func(t *testing.T) {
		for _, bad := range []string{"", "x", "0", "-1", "NaN", "Inf"} {
			d := valid
			d.Months = bad
			e := ValidateContribution(d, knownBank)
			assert.Equal(t, "Invalid months.", e["months"], "months=%q", bad)
		}
	})

	t.Run("terms must be accepted", func(t *testing.T) {
		d := valid
		d.Accepted = false
		e := ValidateContribution(d, knownBank)
		assert.Equal(t, "You must accept the terms.", e["accepted"])
	})
}
