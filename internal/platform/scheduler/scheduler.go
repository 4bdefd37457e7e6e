package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/forexapps/forex_data_app/internal/core/domain"
	portssvc "github.com/forexapps/forex_data_app/internal/core/ports/services"
	"github.com/forexapps/forex_data_app/internal/platform/config"
	"github.com/robfig/cron/v3"
)

// entry binds one cron spec to the periods scraped when it fires.
type entry struct {
	spec    string
	periods []domain.Period
}

// Scheduler triggers scrape runs on fixed calendar rules. It is built
// once at process start, started after the HTTP wiring, and stopped at
// shutdown. The pipeline itself stays stateless; the scheduler only
// invokes it the way an API handler would.
type Scheduler struct {
	cron    *cron.Cron
	scraper portssvc.ForexScraperSvc
	from    string
	to      string
	logger  *slog.Logger
}

// New creates a Scheduler with one entry per configured cron spec:
// daily -> 1W, weekly -> 1M, monthly -> 3M+6M+9M, yearly -> 1Y.
func New(cfg *config.Config, scraper portssvc.ForexScraperSvc, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	loc, err := time.LoadLocation(cfg.SchedulerTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler timezone %q: %w", cfg.SchedulerTimezone, err)
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		scraper: scraper,
		from:    cfg.ScheduledFrom,
		to:      cfg.ScheduledTo,
		logger:  logger,
	}

	entries := []entry{
		{spec: cfg.CronDailySpec, periods: []domain.Period{domain.PeriodOneWeek}},
		{spec: cfg.CronWeeklySpec, periods: []domain.Period{domain.PeriodOneMonth}},
		{spec: cfg.CronMonthlySpec, periods: []domain.Period{domain.PeriodThreeMonths, domain.PeriodSixMonths, domain.PeriodNineMonths}},
		{spec: cfg.CronYearlySpec, periods: []domain.Period{domain.PeriodOneYear}},
	}

	for _, e := range entries {
		periods := e.periods
		if _, err := s.cron.AddFunc(e.spec, func() { s.run(periods) }); err != nil {
			return nil, fmt.Errorf("invalid cron spec %q: %w", e.spec, err)
		}
	}

	return s, nil
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started",
		slog.String("from", s.from),
		slog.String("to", s.to),
		slog.Int("entries", len(s.cron.Entries())),
	)
}

// Stop halts the cron runner and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) run(periods []domain.Period) {
	for _, period := range periods {
		logger := s.logger.With(
			slog.String("from", s.from),
			slog.String("to", s.to),
			slog.String("period", string(period)),
		)
		logger.Info("Scheduled task: scraping and saving exchange rates")

		rates, err := s.scraper.ScrapeAndSaveExchangeRates(context.Background(), s.from, s.to, period)
		if err != nil {
			logger.Error("Scheduled scrape failed", slog.String("error", err.Error()))
			continue
		}
		if len(rates) == 0 {
			logger.Warn("Scheduled scrape produced no records")
			continue
		}
		logger.Info("Scheduled scrape completed", slog.Int("count", len(rates)))
	}
}
