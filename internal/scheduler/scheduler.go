package scheduler

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/lvmeteo/heatwave-dashboard/internal/climate"
	"github.com/lvmeteo/heatwave-dashboard/internal/observability"
)

// Loader produces a fresh dataset snapshot, typically by re-reading the CSV
// files from disk.
type Loader func() (*climate.Dataset, error)

// Scheduler periodically reloads the dataset and publishes the new snapshot.
// On a failed load the previous snapshot stays in place.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     *climate.Store
	load      Loader
	interval  time.Duration
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Scheduler. An interval of zero disables reloading.
func New(store *climate.Store, load Loader, interval time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     store,
		load:      load,
		interval:  interval,
		logger:    logger,
		metrics:   metrics,
	}
}

// Start schedules the periodic reload job and starts the underlying
// scheduler. With reloading disabled it is a no-op.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("dataset reload disabled; startup snapshot is final")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.reload)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("dataset reload scheduled", "interval", s.interval)
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) reload() {
	ds, err := s.load()
	if err != nil {
		s.metrics.DatasetReloads.WithLabelValues("error").Inc()
		s.logger.Error("dataset reload failed; keeping previous snapshot", "error", err)
		return
	}

	s.store.Replace(ds)
	s.metrics.DatasetReloads.WithLabelValues("success").Inc()
	s.metrics.ObserveDataset(len(ds.HWI), len(ds.HeatwaveDays))
	s.logger.Info("dataset reloaded",
		"snapshot_id", ds.ID,
		"hwi_rows", len(ds.HWI),
		"heatwave_day_rows", len(ds.HeatwaveDays))
}
