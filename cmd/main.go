package main

import (
	"pricesvc/internal/app"

	"github.com/sirupsen/logrus"
)

// @title BTCUSDT Price Service API
// @version 1.0
// @description Fee-adjusted BTCUSDT best bid/ask refreshed from the exchange.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		logrus.Fatalf("application stopped: %v", err)
	}
}
