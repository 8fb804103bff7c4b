package scheduler

import (
	"context"
	"log"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/robfig/cron/v3"
)

// Scheduler owns the two recurring upload passes: a minutely dispatch of due
// videos and an hourly slot-assignment batch. Each job skips its tick while a
// previous run is still going, so passes never overlap themselves.
type Scheduler struct {
	cron     *cron.Cron
	batch    port.BatchScheduler
	dispatch port.DueDispatcher
}

func New(batch port.BatchScheduler, dispatch port.DueDispatcher) *Scheduler {
	cronLogger := cron.VerbosePrintfLogger(log.Default())
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cronLogger),
		cron.Recover(cronLogger),
	))
	return &Scheduler{cron: c, batch: batch, dispatch: dispatch}
}

// Start registers the jobs and launches the cron loop in its own goroutine.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc("* * * * *", func() {
		if err := s.dispatch.DispatchDue(ctx); err != nil {
			logger.Errorf(ctx, "dispatch pass failed: %v", err)
		}
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc("0 * * * *", func() {
		count, err := s.batch.ScheduleBatch(ctx)
		if err != nil {
			logger.Errorf(ctx, "schedule pass failed: %v", err)
			return
		}
		if count > 0 {
			logger.Infof(ctx, "scheduled %d videos", count)
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	logger.Info(ctx, "upload scheduler started")
	return nil
}

// Stop halts the cron loop and waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
