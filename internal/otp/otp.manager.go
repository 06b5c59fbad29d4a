package otp

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"cotisation-service/internal/domain"
	"cotisation-service/internal/validation"
	"cotisation-service/pkg/xerrors"
)

const codeMin = 100000

// Manager drives the OTP entry state for one onboarding flow. Exactly one
// send or verify may be in flight at a time; a second request fails with
// ErrOTPBusy instead of racing the first.
type Manager struct {
	mu       sync.Mutex
	state    domain.OtpState
	busy     bool
	ticking  bool
	done     chan struct{}
	closed   bool
	delivery Delivery

	verifyDelay  time.Duration
	cooldownSecs int
	tickEvery    time.Duration
	log          *zap.Logger
}

func NewManager(delivery Delivery, verifyDelay time.Duration, cooldownSecs int, log *zap.Logger) *Manager {
	return &Manager{
		delivery:     delivery,
		verifyDelay:  verifyDelay,
		cooldownSecs: cooldownSecs,
		tickEvery:    time.Second,
		log:          log,
		done:         make(chan struct{}),
	}
}

// State returns a snapshot of the current OTP state.
func (m *Manager) State() domain.OtpState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Close stops the cooldown runner. Safe to call more than once.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.done)
	}
}

// Send generates a fresh 6-digit code and hands it to the delivery transport.
// The generated code is returned for the demo summary panel only.
func (m *Manager) Send(ctx context.Context, phone string) (string, error) {
	m.mu.Lock()
	if strings.TrimSpace(phone) == "" {
		m.mu.Unlock()
		return "", xerrors.ErrPhoneRequired
	}
	if m.state.Cooldown > 0 {
		m.mu.Unlock()
		return "", xerrors.ErrOTPCooldown
	}
	if m.busy {
		m.mu.Unlock()
		return "", xerrors.ErrOTPBusy
	}
	m.busy = true
	m.state.Sending = true
	m.mu.Unlock()

	code := randomCode()
	if err := m.delivery.Deliver(ctx, phone, code); err != nil {
		m.mu.Lock()
		m.state.Sending = false
		m.busy = false
		m.mu.Unlock()
		return "", err
	}

	m.mu.Lock()
	m.state.Sent = true
	m.state.ServerCode = code
	m.state.Digits = [domain.OTPDigits]string{}
	m.state.Verified = false
	m.state.Sending = false
	m.state.Cooldown = m.cooldownSecs
	m.busy = false
	m.startCooldownLocked()
	m.mu.Unlock()

	return code, nil
}

// Verify compares the entered digits against the server code. Digits are kept
// on mismatch so the user can correct them in place.
func (m *Manager) Verify(ctx context.Context) (domain.VerifyOutcome, domain.FieldErrors, error) {
	m.mu.Lock()
	if m.busy {
		m.mu.Unlock()
		return "", nil, xerrors.ErrOTPBusy
	}
	if e := validation.ValidateOtpStep(m.state); !e.Ok() {
		m.mu.Unlock()
		return domain.VerifyInvalid, e, nil
	}
	m.busy = true
	m.state.Verifying = true
	entered := m.state.Code()
	server := m.state.ServerCode
	m.mu.Unlock()

	if m.verifyDelay > 0 {
		select {
		case <-ctx.Done():
			m.mu.Lock()
			m.state.Verifying = false
			m.busy = false
			m.mu.Unlock()
			return "", nil, ctx.Err()
		case <-time.After(m.verifyDelay):
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Verifying = false
	m.busy = false

	if entered != server {
		m.log.Info("otp mismatch", zap.String("provided", entered))
		return domain.VerifyIncorrect, nil, nil
	}
	m.state.Verified = true
	return domain.VerifyVerified, nil, nil
}

// Tick decrements the cooldown by one second, stopping at zero.
func (m *Manager) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Cooldown > 0 {
		m.state.Cooldown--
	}
}

// SetDigit replaces one slot with "" or a single decimal digit.
func (m *Manager) SetDigit(index int, ch string) error {
	if index < 0 || index >= domain.OTPDigits {
		return xerrors.ErrInvalidOTPIndex
	}
	if ch != "" {
		if len(ch) != 1 || ch[0] < '0' || ch[0] > '9' {
			return xerrors.ErrInvalidOTPDigit
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Digits[index] = ch
	return nil
}

// Backspace clears slot index; clearing an already-empty slot clears the
// previous one instead. Returns the slot that should take focus.
func (m *Manager) Backspace(index int) (int, error) {
	if index < 0 || index >= domain.OTPDigits {
		return 0, xerrors.ErrInvalidOTPIndex
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Digits[index] != "" {
		m.state.Digits[index] = ""
		return index, nil
	}
	if index > 0 {
		m.state.Digits[index-1] = ""
		return index - 1, nil
	}
	return index, nil
}

// Paste strips non-digit characters, truncates to six and distributes left
// to right, overwriting every slot.
func (m *Manager) Paste(text string) {
	var digits []string
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits = append(digits, string(r))
			if len(digits) == domain.OTPDigits {
				break
			}
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var next [domain.OTPDigits]string
	copy(next[:], digits)
	m.state.Digits = next
}

// startCooldownLocked launches the one-second ticker if it is not already
// running. The goroutine exits the moment the counter reaches zero.
func (m *Manager) startCooldownLocked() {
	if m.ticking || m.state.Cooldown <= 0 {
		return
	}
	m.ticking = true
	go func() {
		t := time.NewTicker(m.tickEvery)
		defer t.Stop()
		for {
			select {
			case <-m.done:
				m.mu.Lock()
				m.ticking = false
				m.mu.Unlock()
				return
			case <-t.C:
				m.mu.Lock()
				if m.state.Cooldown > 0 {
					m.state.Cooldown--
				}
				if m.state.Cooldown == 0 {
					m.ticking = false
					m.mu.Unlock()
					return
				}
				m.mu.Unlock()
			}
		}
	}()
}

// randomCode draws a uniform 6-digit code in [100000, 999999].
func randomCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9*codeMin))
	if err != nil {
		panic(err)
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10)
}
