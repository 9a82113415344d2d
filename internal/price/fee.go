package price

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const pricePlaces = 2

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// Side selects which way ApplyFee moves a price.
type Side int

const (
	Bid Side = iota
	Ask
)

// ApplyFee marks price up by feePercent on the bid side and down on the ask
// side, so the spread always widens in the service's favour.
func ApplyFee(price decimal.Decimal, feePercent float64, side Side) decimal.Decimal {
	multiplier := decimal.NewFromFloat(feePercent).Div(hundred)
	if side == Bid {
		return price.Mul(one.Add(multiplier)).Round(pricePlaces)
	}
	return price.Mul(one.Sub(multiplier)).Round(pricePlaces)
}

// MidPrice averages the already fee-adjusted bid and ask. This is the
// customer-facing mid and differs from the market mid whenever the fee is
// non-zero.
func MidPrice(bidWithFee, askWithFee decimal.Decimal) decimal.Decimal {
	return bidWithFee.Add(askWithFee).Div(two).Round(pricePlaces)
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(pricePlaces)
}

func parsePrice(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: negative price", field, raw)
	}
	return d, nil
}
