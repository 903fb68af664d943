package timelog

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"tod/internal/providers"
	"tod/internal/services"
	"tod/internal/structures"
	"tod/internal/timelog/interfaces"
)

// Scheduler persists snapshots on an interval and keeps the score gauges
// fresh. Restore runs once on boot, Persist once more on shutdown.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.TimeLogServiceInterface
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	cron        *cron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = cron.New()

	_, err := s.cron.AddFunc("@every "+s.config.Persistence.SaveInterval.String(), func() {
		if err := s.Persist(); err != nil {
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted data to file %s", s.config.Persistence.FilePath)
	})
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to schedule persistence: %s", err)
	}

	_, err = s.cron.AddFunc("@every "+s.config.Analytics.Interval.String(), s.refreshMetrics)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to schedule metrics refresh: %s", err)
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
	if err != nil {
		return err
	}
	s.refreshMetrics()
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

func (s *Scheduler) refreshMetrics() {
	score := s.service.ComputeScore()
	if score == nil {
		return
	}
	s.metrics.SetProductivityScore(score.Score)
	s.metrics.SetTrackedDays(score.TotalDays)
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.TimeLogServiceInterface, fileManager *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
		metrics:     metrics,
	}
}
