package xerrors

import "errors"

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
)

// Login / session
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
	ErrIdentityNotFound   = errors.New("identity not found")
)

// Onboarding flow
var (
	ErrNoActiveFlow     = errors.New("no active onboarding flow")
	ErrWrongStep        = errors.New("operation not valid for current step")
	ErrFlowCompleted    = errors.New("onboarding flow already completed")
	ErrValidationFailed = errors.New("validation failed")
)

// OTP
var (
	ErrOTPBusy         = errors.New("an otp operation is already in flight")
	ErrOTPCooldown     = errors.New("please wait before requesting another otp")
	ErrPhoneRequired   = errors.New("phone required to send otp")
	ErrInvalidOTPDigit = errors.New("otp slot accepts a single decimal digit")
	ErrInvalidOTPIndex = errors.New("otp slot index out of range")
)

// Reference data
var (
	ErrBankNotFound = errors.New("bank not found")
)
