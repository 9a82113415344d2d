package price

import (
	"context"
	"errors"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrAlreadyStarted = errors.New("price cache already started")

// Start refreshes immediately and then every update interval until ctx is
// canceled or Shutdown is called. A tick that fires while the previous
// refresh is still running is skipped.
func (c *PriceCache) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sched != nil {
		return ErrAlreadyStarted
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		c.refresh(jobCtx, uuid.NewString())
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(c.updateInterval()),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	scheduler.Start()
	c.sched = scheduler
	stopped := make(chan struct{})
	c.stopped = stopped

	// Stop scheduler when the provided context is canceled.
	go func() {
		select {
		case <-ctx.Done():
			if sdErr := c.Shutdown(); sdErr != nil {
				logrus.Errorf("Price scheduler shutdown error: %v", sdErr)
			}
		case <-stopped:
		}
	}()
	return nil
}

// Shutdown stops the refresh schedule. It is safe to call more than once.
func (c *PriceCache) Shutdown() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sched == nil {
		return nil
	}
	err := c.sched.Shutdown()
	c.sched = nil
	close(c.stopped)
	c.stopped = nil
	return err
}

func (c *PriceCache) running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sched != nil
}
