package domain

type Step int

const (
	StepProfile Step = iota + 1
	StepOTP
	StepContribution
)

func (s Step) String() string {
	switch s {
	case StepProfile:
		return "PROFILE"
	case StepOTP:
		return "OTP"
	case StepContribution:
		return "CONTRIBUTION"
	default:
		return "UNKNOWN"
	}
}

// Profile is the step-1 form. Email is optional.
type Profile struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address"`
}

const OTPDigits = 6

// OtpState mirrors the six-box OTP entry. Digits holds "" or one decimal
// digit per slot. ServerCode is meaningful only while Sent is true.
type OtpState struct {
	Sent       bool              `json:"sent"`
	Digits     [OTPDigits]string `json:"digits"`
	ServerCode string            `json:"server_code"` // demo only, never exposed in production
	Sending    bool              `json:"sending"`
	Verifying  bool              `json:"verifying"`
	Verified   bool              `json:"verified"`
	Cooldown   int               `json:"cooldown"`
}

// Code joins the entered digits.
func (s OtpState) Code() string {
	var b []byte
	for _, d := range s.Digits {
		b = append(b, d...)
	}
	return string(b)
}

type VerifyOutcome string

const (
	VerifyVerified  VerifyOutcome = "VERIFIED"
	VerifyIncorrect VerifyOutcome = "INCORRECT"
	VerifyInvalid   VerifyOutcome = "INVALID"
)

// FieldErrors maps a form field to a human-readable message.
type FieldErrors map[string]string

func (e FieldErrors) Ok() bool { return len(e) == 0 }
