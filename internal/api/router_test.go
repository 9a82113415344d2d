package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pricesvc/internal/domain"
	"pricesvc/internal/metrics"
	"pricesvc/internal/price/handler"

	"github.com/stretchr/testify/require"
)

type stubPrices struct {
	snapshot domain.PriceSnapshot
	ok       bool
}

func (s stubPrices) CurrentPrice() (domain.PriceSnapshot, bool) { return s.snapshot, s.ok }

func (s stubPrices) ServiceConfig() domain.ServiceConfig {
	return domain.ServiceConfig{UpdateIntervalMs: 10000, ServiceFee: 0.01}
}

func serve(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestRouter_Routes(t *testing.T) {
	router := NewRouter(handler.NewPriceHandler(stubPrices{}), metrics.New())

	cases := []struct {
		name   string
		method string
		target string
		status int
	}{
		{name: "price before first refresh", method: http.MethodGet, target: "/price", status: http.StatusOK},
		{name: "config", method: http.MethodGet, target: "/price/config", status: http.StatusOK},
		{name: "health", method: http.MethodGet, target: "/healthz", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, target: "/metrics", status: http.StatusOK},
		{name: "swagger doc", method: http.MethodGet, target: "/swagger/doc.json", status: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, target: "/prices", status: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPost, target: "/price", status: http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(t, router, tc.method, tc.target)
			require.Equal(t, tc.status, rr.Code)
		})
	}
}

func TestRouter_PriceNotAvailableYet(t *testing.T) {
	router := NewRouter(handler.NewPriceHandler(stubPrices{}), nil)

	rr := serve(t, router, http.MethodGet, "/price")

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"error":"Price data not available yet"}`, rr.Body.String())
}

func TestRouter_PriceAvailable(t *testing.T) {
	prices := stubPrices{ok: true, snapshot: domain.PriceSnapshot{Symbol: "BTCUSDT", MidPrice: "50005.00"}}
	router := NewRouter(handler.NewPriceHandler(prices), nil)

	rr := serve(t, router, http.MethodGet, "/price")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"midPrice":"50005.00"`)
}

func TestRouter_MetricsCountRequests(t *testing.T) {
	router := NewRouter(handler.NewPriceHandler(stubPrices{}), metrics.New())

	serve(t, router, http.MethodGet, "/price/config")
	serve(t, router, http.MethodGet, "/price")

	body := serve(t, router, http.MethodGet, "/metrics").Body.String()
	require.Contains(t, body, `pricesvc_http_requests_total{method="GET",route="/price/config",status="200"} 1`)
	require.Contains(t, body, `pricesvc_http_requests_total{method="GET",route="/price",status="200"} 1`)
}

func TestRouter_SwaggerDocDescribesPriceRoutes(t *testing.T) {
	router := NewRouter(handler.NewPriceHandler(stubPrices{}), nil)

	rr := serve(t, router, http.MethodGet, "/swagger/doc.json")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"/price/config"`)
	require.Contains(t, rr.Body.String(), `"/price"`)
	require.Contains(t, rr.Body.String(), "handler.GetPriceResponse")
}
