package handler

import "net/http"

type GetConfigResponse struct {
	UpdateInterval int64   `json:"updateInterval" example:"10000"`
	ServiceFee     float64 `json:"serviceFee" example:"0.01"`
}

// GetConfig godoc
// @Summary Get service config
// @Description Update interval in milliseconds and service fee in percent
// @Tags Price
// @Produce json
// @Success 200 {object} GetConfigResponse
// @Router /price/config [get]
func (h *Handler) GetConfig(w http.ResponseWriter, _ *http.Request) {
	cfg := h.prices.ServiceConfig()
	writeJSON(w, http.StatusOK, GetConfigResponse{
		UpdateInterval: cfg.UpdateIntervalMs,
		ServiceFee:     cfg.ServiceFee,
	})
}
