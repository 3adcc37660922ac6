package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sirfuzzalot/discord-aqi-bot/internal/config"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/observability"
)

// jobTimeout bounds a single scheduled report cycle. Both AirNow calls and the
// webhook delivery have 30s client timeouts, so a healthy cycle finishes well
// under this.
const jobTimeout = 2 * time.Minute

// Scheduler triggers report cycles on a cron schedule. Schedule expressions
// use six fields (seconds included) and are evaluated in UTC.
type Scheduler struct {
	reporter *Reporter
	cron     *cron.Cron
	spec     string
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewScheduler creates a Scheduler for the configured cron expression.
func NewScheduler(r *Reporter, cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		reporter: r,
		// Prevent overlapping runs when a cycle outlasts the schedule interval.
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		spec:    cfg.Schedule,
		logger:  logger,
		metrics: metrics,
	}
}

// Start registers the report job and runs the scheduler until the context is
// cancelled. Already-running jobs are given until jobTimeout to finish.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.runJob(ctx) }); err != nil {
		return fmt.Errorf("register schedule %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.reporter.ready.Store(true)
	s.metrics.SchedulerRunning.Set(1)
	defer s.metrics.SchedulerRunning.Set(0)
	s.logger.Info("scheduler started", "schedule", s.spec)

	<-ctx.Done()
	s.logger.Info("scheduler stopping", "reason", ctx.Err())
	<-s.cron.Stop().Done()
	return nil
}

func (s *Scheduler) runJob(ctx context.Context) {
	jobCtx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	if err := s.reporter.Run(jobCtx); err != nil {
		s.logger.Error("scheduled report cycle failed", "error", err)
	}
}
