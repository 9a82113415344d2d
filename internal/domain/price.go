package domain

// Quote is the best bid/ask as reported by the exchange. Prices and
// quantities are kept as the exchange's decimal strings.
type Quote struct {
	Symbol   string
	BidPrice string
	BidQty   string
	AskPrice string
	AskQty   string
}

// PriceSnapshot is a quote with the service fee applied. Timestamp is in
// milliseconds since epoch.
type PriceSnapshot struct {
	Symbol          string
	BidPrice        string
	BidQty          string
	AskPrice        string
	AskQty          string
	Timestamp       int64
	BidPriceWithFee string
	AskPriceWithFee string
	MidPrice        string
}

type ServiceConfig struct {
	UpdateIntervalMs int64
	ServiceFee       float64 // percent
}
