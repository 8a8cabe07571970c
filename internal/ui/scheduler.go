package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tartampluch/go-nepalidate/internal/config"
)

// startRolloverScheduler runs onRollover at every local midnight so the
// tray label follows the date even when nothing else changes.
func startRolloverScheduler(onRollover func()) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.Local))
	if _, err := c.AddFunc(config.RolloverSchedule, onRollover); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrScheduler, err)
	}
	c.Start()

	slog.Debug(config.MsgRollover,
		config.LogKeyComponent, config.CompWorker,
		config.LogKeySchedule, config.RolloverSchedule,
		config.LogKeyDate, nextRollover(time.Now()).Format(time.RFC3339))
	return c, nil
}

// nextRollover returns the first midnight strictly after now, in now's
// location.
func nextRollover(now time.Time) time.Time {
	sched, err := cron.ParseStandard(config.RolloverSchedule)
	if err != nil {
		return time.Time{}
	}
	return sched.Next(now)
}
