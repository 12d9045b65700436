package cache

import (
	"time"

	"go.uber.org/zap"

	"go-url-cache/internal/scheduler"
)

// StartSweeper starts a background task that calls ClearExpired every
// interval. The caller owns the returned scheduler and must Stop it.
func (c *Cache) StartSweeper(interval time.Duration) *scheduler.Scheduler {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	sweeper := scheduler.NewWithClock(c.clock, interval, c.sweep)
	sweeper.Start()

	c.logger.Debug("Started URL cache sweeper", zap.Duration("interval", interval))
	return sweeper
}

func (c *Cache) sweep() {
	removed := c.ClearExpired()
	if removed > 0 {
		c.logger.Debug("Swept expired URL cache entries",
			zap.Int("removed", removed),
			zap.Int("remaining", c.Len()))
	}
}
