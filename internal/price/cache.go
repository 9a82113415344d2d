package price

import (
	"pricesvc/internal/adapters"
	"pricesvc/internal/domain"
	"pricesvc/internal/metrics"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Symbol is the only trading pair the service quotes.
const Symbol = "BTCUSDT"

const defaultUpdateInterval = 10 * time.Second

// PriceCache keeps the latest fee-adjusted snapshot of Symbol and refreshes
// it on a fixed interval once started. Reads never block on a refresh.
type PriceCache struct {
	cfg     domain.ServiceConfig
	client  adapters.QuoteClient
	metrics *metrics.Metrics
	now     func() time.Time

	requestTimeout time.Duration

	latest atomic.Pointer[domain.PriceSnapshot]

	mu      sync.Mutex
	sched   gocron.Scheduler
	stopped chan struct{}
}

// CurrentPrice returns a copy of the latest snapshot. ok is false until the
// first refresh succeeds.
func (c *PriceCache) CurrentPrice() (domain.PriceSnapshot, bool) {
	snapshot := c.latest.Load()
	if snapshot == nil {
		return domain.PriceSnapshot{}, false
	}
	return *snapshot, true
}

func (c *PriceCache) ServiceConfig() domain.ServiceConfig {
	return c.cfg
}

func (c *PriceCache) updateInterval() time.Duration {
	if c.cfg.UpdateIntervalMs <= 0 {
		return defaultUpdateInterval
	}
	return time.Duration(c.cfg.UpdateIntervalMs) * time.Millisecond
}

type Option func(*PriceCache)

// WithRequestTimeout bounds each exchange call made by a refresh. Non-positive
// values keep the default.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *PriceCache) {
		if d > 0 {
			c.requestTimeout = d
		}
	}
}

// NewPriceCache stores the config; nothing is fetched until Start.
func NewPriceCache(cfg domain.ServiceConfig, client adapters.QuoteClient, m *metrics.Metrics, opts ...Option) *PriceCache {
	c := &PriceCache{
		cfg:            cfg,
		client:         client,
		metrics:        m,
		now:            time.Now,
		requestTimeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
