package scheduler

import (
	"context"
	"fmt"
	"time"

	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/service"

	"github.com/robfig/cron/v3"
)

const purgeTimeout = 30 * time.Second

// Scheduler runs periodic maintenance jobs.
type Scheduler struct {
	cron  *cron.Cron
	maint service.Maintenance
	log   *logger.Logger
}

func New(maint service.Maintenance, log *logger.Logger) *Scheduler {
	log = log.With("component", "scheduler")
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{log}),
		cron.SkipIfStillRunning(cronLogger{log}),
	))
	return &Scheduler{cron: c, maint: maint, log: log}
}

// SchedulePurge registers the expired-state purge under a cron spec
// such as "@every 5m".
func (s *Scheduler) SchedulePurge(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.purge); err != nil {
		return fmt.Errorf("schedule purge %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := s.maint.PurgeExpiredAuthorizationRequests(ctx)
	if err != nil {
		s.log.Errorw("purge expired authorization requests", "error", err)
		return
	}
	if n > 0 {
		s.log.Infow("purged expired authorization requests", "count", n)
	}
}

// cronLogger adapts the zap logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
