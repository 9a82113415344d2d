package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"pricesvc/internal/domain"
	"strings"
)

const bookTickerPath = "/api/v3/ticker/bookTicker"

// BookTickerClient reads the best bid/ask for a symbol from the exchange.
type BookTickerClient struct {
	http    *http.Client
	baseURL string
}

type bookTickerResponse struct {
	Symbol   string `json:"symbol"`
	BidPrice string `json:"bidPrice"`
	BidQty   string `json:"bidQty"`
	AskPrice string `json:"askPrice"`
	AskQty   string `json:"askQty"`
}

type apiError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (c *BookTickerClient) GetBookTicker(ctx context.Context, symbol string) (domain.Quote, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + bookTickerPath
	q := u.Query()
	q.Set("symbol", symbol)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to create request for symbol %q: %w", symbol, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to execute request for symbol %q: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096)); readErr == nil && json.Unmarshal(body, &apiErr) == nil && apiErr.Msg != "" {
			return domain.Quote{}, fmt.Errorf("unexpected status code %d for symbol %q: %s (code %d)", resp.StatusCode, symbol, apiErr.Msg, apiErr.Code)
		}
		return domain.Quote{}, fmt.Errorf("unexpected status code %d for symbol %q: %s", resp.StatusCode, symbol, resp.Status)
	}

	var body bookTickerResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Quote{}, fmt.Errorf("failed to decode response for symbol %q: %w", symbol, err)
	}

	if body.Symbol == "" || body.BidPrice == "" || body.AskPrice == "" {
		return domain.Quote{}, fmt.Errorf("incomplete book ticker for symbol %q: %w", symbol, domain.ErrQuoteUnavailable)
	}

	return domain.Quote{
		Symbol:   body.Symbol,
		BidPrice: body.BidPrice,
		BidQty:   body.BidQty,
		AskPrice: body.AskPrice,
		AskQty:   body.AskQty,
	}, nil
}

func NewBookTickerClient(httpClient *http.Client, baseURL string) *BookTickerClient {
	return &BookTickerClient{http: httpClient, baseURL: baseURL}
}
