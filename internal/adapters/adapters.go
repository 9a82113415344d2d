package adapters

import (
	"context"
	"pricesvc/internal/domain"
)

type QuoteClient interface {
	GetBookTicker(ctx context.Context, symbol string) (domain.Quote, error)
}
