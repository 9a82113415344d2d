package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

const msgPriceNotAvailable = "Price data not available yet"

type GetPriceResponse struct {
	Symbol          string `json:"symbol" example:"BTCUSDT"`
	BidPrice        string `json:"bidPrice" example:"50000.00000000"`
	BidQty          string `json:"bidQty" example:"1.25000000"`
	AskPrice        string `json:"askPrice" example:"50010.00000000"`
	AskQty          string `json:"askQty" example:"0.50000000"`
	Timestamp       int64  `json:"timestamp" example:"1735830245000"`
	BidPriceWithFee string `json:"bidPriceWithFee" example:"50005.00"`
	AskPriceWithFee string `json:"askPriceWithFee" example:"50005.00"`
	MidPrice        string `json:"midPrice" example:"50005.00"`
}

// GetPrice godoc
// @Summary Get current price
// @Description Latest BTCUSDT best bid/ask with the service fee applied.
// @Description Before the first successful refresh the body is {"error":"Price data not available yet"}.
// @Tags Price
// @Produce json
// @Success 200 {object} GetPriceResponse
// @Router /price [get]
func (h *Handler) GetPrice(w http.ResponseWriter, _ *http.Request) {
	snapshot, ok := h.prices.CurrentPrice()
	if !ok {
		logrus.WithField("handler", "GetPrice").Debug("price requested before first successful refresh")
		writeError(w, http.StatusOK, msgPriceNotAvailable)
		return
	}

	writeJSON(w, http.StatusOK, GetPriceResponse{
		Symbol:          snapshot.Symbol,
		BidPrice:        snapshot.BidPrice,
		BidQty:          snapshot.BidQty,
		AskPrice:        snapshot.AskPrice,
		AskQty:          snapshot.AskQty,
		Timestamp:       snapshot.Timestamp,
		BidPriceWithFee: snapshot.BidPriceWithFee,
		AskPriceWithFee: snapshot.AskPriceWithFee,
		MidPrice:        snapshot.MidPrice,
	})
}
