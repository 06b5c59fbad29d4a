package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"cotisation-service/internal/domain"
	"cotisation-service/internal/usecase"
	"cotisation-service/pkg/response"
	"cotisation-service/pkg/xerrors"
)

// FlowFactory builds a fresh onboarding flow, optionally pre-seeded from the
// logged-in identity.
type FlowFactory func(seed *domain.Identity) *usecase.OnboardingFlow

// OnboardingHandler drives the single active onboarding flow of the demo
// shell. One logical user at a time, per the demo contract.
type OnboardingHandler struct {
	mu      sync.Mutex
	flow    *usecase.OnboardingFlow
	newFlow FlowFactory
	auth    *usecase.AuthUsecase
	log     *zap.Logger
}

func NewOnboardingHandler(newFlow FlowFactory, auth *usecase.AuthUsecase, log *zap.Logger) *OnboardingHandler {
	return &OnboardingHandler{newFlow: newFlow, auth: auth, log: log}
}

func (h *OnboardingHandler) activeFlow() (*usecase.OnboardingFlow, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.flow == nil {
		return nil, xerrors.ErrNoActiveFlow
	}
	return h.flow, nil
}

// Start discards any previous flow and begins a new attempt, pre-filled from
// the current session's identity when one exists.
func (h *OnboardingHandler) Start(w http.ResponseWriter, r *http.Request) {
	var seed *domain.Identity
	if ident, err := h.auth.CurrentIdentity(r.Context()); err == nil && ident.ID != "" {
		seed = &ident
	}

	h.mu.Lock()
	if h.flow != nil {
		h.flow.Close()
	}
	h.flow = h.newFlow(seed)
	flow := h.flow
	h.mu.Unlock()

	response.JSON(w, http.StatusCreated, flow.Summary())
}

func (h *OnboardingHandler) SubmitProfile(w http.ResponseWriter, r *http.Request) {
	flow, err := h.activeFlow()
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}
	var req profileRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}
	flow.SetProfile(req.toDomain())

	fieldErrs, err := flow.SubmitProfile()
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}
	if len(fieldErrs) > 0 {
		response.FieldErrors(w, http.StatusBadRequest, xerrors.ErrValidationFailed.Error(), fieldErrs)
		return
	}
	response.JSON(w, http.StatusOK, flow.Summary())
}

func (h *OnboardingHandler) SendOtp(w http.ResponseWriter, r *http.Request) {
	flow, err := h.activeFlow()
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}

	code, err := flow.SendOtp(r.Context())
	switch {
	case errors.Is(err, xerrors.ErrPhoneRequired):
		response.FieldErrors(w, http.StatusBadRequest, err.Error(), flow.Summary().Errors)
		return
	case errors.Is(err, xerrors.ErrOTPCooldown):
		response.Error(w, http.StatusTooManyRequests, err.Error())
		return
	case errors.Is(err, xerrors.ErrOTPBusy):
		response.Error(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.log.Error("otp send failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}

	// The code is returned for the demo summary panel only. A real transport
	// must never echo it back.
	response.JSON(w, http.StatusOK, map[string]any{
		"code":    code,
		"summary": flow.Summary(),
	})
}

func (h *OnboardingHandler) SetDigit(w http.ResponseWriter, r *http.Request) {
	flow, err := h.activeFlow()
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}
	var req digitRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}
	if err := flow.OtpManager().SetDigit(req.Index, req.Value); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, flow.Summary().Otp)
}

func (h *OnboardingHandler) Backspace(w http.ResponseWriter, r *http.Request) {
	flow, err := h.activeFlow()
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}
	var req backspaceRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}
	focus, err := flow.OtpManager().Backspace(req.Index)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"focus": focus,
		"otp":   flow.Summary().Otp,
	})
}

func (h *OnboardingHandler) Paste(w http.ResponseWriter, r *http.Request) {
	flow, err := h.activeFlow()
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}
	var req pasteRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}
	flow.OtpManager().Paste(req.Text)
	response.JSON(w, http.StatusOK, flow.Summary().Otp)
}

func (h *OnboardingHandler) VerifyOtp(w http.ResponseWriter, r *http.Request) {
	flow, err := h.activeFlow()
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}

	outcome, fieldErrs, err := flow.VerifyOtp(r.Context())
	switch {
	case errors.Is(err, xerrors.ErrOTPBusy):
		response.Error(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.log.Error("otp verify failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}

	if outcome == domain.VerifyInvalid {
		response.FieldErrors(w, http.StatusBadRequest, xerrors.ErrValidationFailed.Error(), fieldErrs)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"outcome": outcome,
		"summary": flow.Summary(),
	})
}

func (h *OnboardingHandler) SubmitContribution(w http.ResponseWriter, r *http.Request) {
	flow, err := h.activeFlow()
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}
	var req contributionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}
	flow.SetDraft(req.toDomain())

	fieldErrs, err := flow.SubmitContribution(r.Context())
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}
	if len(fieldErrs) > 0 {
		response.FieldErrors(w, http.StatusBadRequest, xerrors.ErrValidationFailed.Error(), fieldErrs)
		return
	}
	response.JSON(w, http.StatusOK, flow.Summary())
}

func (h *OnboardingHandler) Back(w http.ResponseWriter, r *http.Request) {
	flow, err := h.activeFlow()
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}
	step := flow.Back()
	response.JSON(w, http.StatusOK, map[string]any{"step": step.String()})
}

func (h *OnboardingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	flow, err := h.activeFlow()
	if err != nil {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, flow.Summary())
}
