package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"cotisation-service/internal/domain"
	"cotisation-service/internal/usecase"
	"cotisation-service/pkg/response"
	"cotisation-service/pkg/xerrors"
)

type AuthHandler struct {
	auth *usecase.AuthUsecase
	log  *zap.Logger
}

func NewAuthHandler(auth *usecase.AuthUsecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}

	role := domain.Role(req.Role)
	if role != domain.RoleClient && role != domain.RoleAdmin {
		response.Error(w, http.StatusBadRequest, "role must be CLIENT or ADMIN")
		return
	}

	ident, err := h.auth.Login(r.Context(), role, req.Email, req.Secret)
	if errors.Is(err, xerrors.ErrInvalidCredentials) {
		response.Error(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		h.log.Error("login failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}
	response.JSON(w, http.StatusOK, ident)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		h.log.Error("logout failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Session returns the restored session record, 404 when none is stored.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auth.Restore(r.Context())
	if errors.Is(err, xerrors.ErrNoSession) {
		response.Error(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.log.Error("session restore failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}
	response.JSON(w, http.StatusOK, sess)
}
