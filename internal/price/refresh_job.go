package price

import (
	"context"
	"fmt"
	"pricesvc/internal/domain"
	"pricesvc/internal/metrics"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const defaultRequestTimeout = 10 * time.Second

// feePrices are the fee-adjusted values a snapshot was formatted from.
type feePrices struct {
	bid decimal.Decimal
	ask decimal.Decimal
	mid decimal.Decimal
}

// refresh fetches a fresh quote and swaps it into the cache. Failures are
// logged and leave the previous snapshot in place; the next tick retries.
func (c *PriceCache) refresh(ctx context.Context, execID string) {
	start := time.Now()
	log := logrus.WithFields(logrus.Fields{"exec_id": execID, "symbol": Symbol})

	// a hung exchange call must not hold the singleton job past one request
	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	quote, err := c.client.GetBookTicker(reqCtx, Symbol)
	if err != nil {
		log.WithError(err).Warn("Price refresh skipped, exchange call failed")
		c.metrics.ObserveRefresh(metrics.ResultFailure, time.Since(start))
		return
	}

	computedAt := c.now()
	snapshot, prices, err := buildSnapshot(quote, c.cfg.ServiceFee, computedAt)
	if err != nil {
		log.WithError(err).Warn("Price refresh skipped, exchange returned unusable quote")
		c.metrics.ObserveRefresh(metrics.ResultFailure, time.Since(start))
		return
	}

	c.latest.Store(&snapshot)

	c.metrics.ObserveRefresh(metrics.ResultSuccess, time.Since(start))
	c.metrics.ObservePrices(
		prices.bid.InexactFloat64(),
		prices.ask.InexactFloat64(),
		computedAt,
	)

	log.WithFields(logrus.Fields{
		"bid_with_fee": snapshot.BidPriceWithFee,
		"ask_with_fee": snapshot.AskPriceWithFee,
		"mid":          snapshot.MidPrice,
	}).Debug("Price refreshed")
}

// buildSnapshot computes every derived field before returning, so a snapshot
// is either complete or not produced at all.
func buildSnapshot(quote domain.Quote, feePercent float64, at time.Time) (domain.PriceSnapshot, feePrices, error) {
	if quote.Symbol == "" {
		return domain.PriceSnapshot{}, feePrices{}, fmt.Errorf("empty symbol: %w", domain.ErrQuoteUnavailable)
	}
	bid, err := parsePrice("bidPrice", quote.BidPrice)
	if err != nil {
		return domain.PriceSnapshot{}, feePrices{}, err
	}
	ask, err := parsePrice("askPrice", quote.AskPrice)
	if err != nil {
		return domain.PriceSnapshot{}, feePrices{}, err
	}

	prices := feePrices{
		bid: ApplyFee(bid, feePercent, Bid),
		ask: ApplyFee(ask, feePercent, Ask),
	}
	prices.mid = MidPrice(prices.bid, prices.ask)

	return domain.PriceSnapshot{
		Symbol:          quote.Symbol,
		BidPrice:        quote.BidPrice,
		BidQty:          quote.BidQty,
		AskPrice:        quote.AskPrice,
		AskQty:          quote.AskQty,
		Timestamp:       at.UnixMilli(),
		BidPriceWithFee: formatPrice(prices.bid),
		AskPriceWithFee: formatPrice(prices.ask),
		MidPrice:        formatPrice(prices.mid),
	}, prices, nil
}
