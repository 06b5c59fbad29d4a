package handler

import (
	"net/http"

	"go.uber.org/zap"

	"cotisation-service/internal/display"
	"cotisation-service/internal/repository"
	"cotisation-service/internal/usecase"
	"cotisation-service/pkg/response"
	"cotisation-service/pkg/xerrors"
)

type AdminHandler struct {
	admin *usecase.AdminUsecase
	banks *repository.BankRepo
	log   *zap.Logger
}

func NewAdminHandler(admin *usecase.AdminUsecase, banks *repository.BankRepo, log *zap.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, banks: banks, log: log}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rows, stats, err := h.admin.Dashboard(r.Context())
	if err != nil {
		h.log.Error("dashboard failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}

	type rowView struct {
		ClientName  string `json:"client_name"`
		ClientPhone string `json:"client_phone"`
		BankName    string `json:"bank_name"`
		Account     string `json:"account"`
		Total       string `json:"total"`
		Status      string `json:"status"`
		StatusLabel string `json:"status_label"`
	}
	views := make([]rowView, 0, len(rows))
	for _, row := range rows {
		views = append(views, rowView{
			ClientName:  row.ClientName,
			ClientPhone: row.ClientPhone,
			BankName:    row.BankName,
			Account:     row.AccountNumber,
			Total:       display.DJF(row.Total),
			Status:      string(row.Status),
			StatusLabel: display.StatusLabel(row.Status),
		})
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"rows":  views,
		"stats": stats,
	})
}

func (h *AdminHandler) Banks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.banks.List(r.Context())
	if err != nil {
		h.log.Error("banks list failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}
	response.JSON(w, http.StatusOK, banks)
}
