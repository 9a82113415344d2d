package handler

import (
	"encoding/json"
	"net/http"
	"pricesvc/internal/domain"
)

// PriceReader is the read side of the price cache.
type PriceReader interface {
	CurrentPrice() (domain.PriceSnapshot, bool)
	ServiceConfig() domain.ServiceConfig
}

type Handler struct {
	prices PriceReader
}

func NewPriceHandler(prices PriceReader) *Handler {
	return &Handler{prices: prices}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
