package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"net/url"
	"pricesvc/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnvFile    = ".env"
	defaultConfigFile = "config.yaml"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Exchange struct {
	BaseURL string `mapstructure:"base_url"`
}

type Price struct {
	UpdateIntervalMs  int64   `mapstructure:"update_interval_ms"`
	ServiceFeePercent float64 `mapstructure:"service_fee_percent"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Exchange   Exchange   `mapstructure:"exchange"`
	Price      Price      `mapstructure:"price"`
	Logging    Logging    `mapstructure:"logging"`
}

// ServiceConfig returns the part of the config exposed by the price service.
func (c *AppConfig) ServiceConfig() domain.ServiceConfig {
	return domain.ServiceConfig{
		UpdateIntervalMs: c.Price.UpdateIntervalMs,
		ServiceFee:       c.Price.ServiceFeePercent,
	}
}

func (c *AppConfig) Validate() error {
	if c.HTTPServer.Port == "" {
		return errors.New("http server port is required")
	}
	if c.Price.UpdateIntervalMs <= 0 {
		return fmt.Errorf("update interval must be positive, got %d", c.Price.UpdateIntervalMs)
	}
	fee := c.Price.ServiceFeePercent
	if math.IsNaN(fee) || math.IsInf(fee, 0) || fee < 0 || fee >= 100 {
		return fmt.Errorf("service fee must be within [0, 100), got %v", fee)
	}
	u, err := url.ParseRequestURI(c.Exchange.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid exchange base url: %q", c.Exchange.BaseURL)
	}
	return nil
}

func Init() (*AppConfig, error) {
	return Load(defaultEnvFile, defaultConfigFile)
}

// Load reads envFile and configFile (both optional), applies defaults and
// environment overrides, and validates the result.
func Load(envFile, configFile string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "3000")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("exchange.base_url", "https://api.binance.com")
	v.SetDefault("price.update_interval_ms", 10000)
	v.SetDefault("price.service_fee_percent", 0.01)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("exchange.base_url", "EXCHANGE_BASE_URL")

	// price env vars
	_ = v.BindEnv("price.update_interval_ms", "UPDATE_INTERVAL_MS")
	_ = v.BindEnv("price.service_fee_percent", "SERVICE_FEE_PERCENT")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
