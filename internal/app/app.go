package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pricesvc/internal/adapters/httpclient"
	"pricesvc/internal/api"
	"pricesvc/internal/config"
	"pricesvc/internal/metrics"
	httpserver "pricesvc/internal/platform/http"
	"pricesvc/internal/price"
	"pricesvc/internal/price/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts the price refresher and HTTP server
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	configureLogger(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	quoteClient := httpclient.NewBookTickerClient(baseHTTPClient, strings.TrimSuffix(appCfg.Exchange.BaseURL, "/"))
	m := metrics.New()

	priceCache := price.NewPriceCache(appCfg.ServiceConfig(), quoteClient, m, price.WithRequestTimeout(httpTimeout))
	defer func() {
		if shutDownErr := priceCache.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Price refresher shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := priceCache.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start price refresher")
		return startErr
	}
	logrus.WithFields(logrus.Fields{
		"symbol":           price.Symbol,
		"update_interval":  appCfg.Price.UpdateIntervalMs,
		"service_fee":      appCfg.Price.ServiceFeePercent,
		"exchange_baseurl": appCfg.Exchange.BaseURL,
	}).Info("✅ Price refresher activation successful")

	priceHandler := handler.NewPriceHandler(priceCache)
	router := api.NewRouter(priceHandler, m)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func configureLogger(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
