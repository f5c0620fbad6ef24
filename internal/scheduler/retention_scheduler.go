package scheduler

import (
	"github.com/jmlee/storefront-backend/internal/app/service"
	"github.com/jmlee/storefront-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// RetentionScheduler purges visitor logs past the retention window once a
// day. Visitor logs are the only data with a cleanup policy; everything
// else is kept until an admin deletes it.
type RetentionScheduler struct {
	cron           *cron.Cron
	visitorService service.VisitorService
	retentionDays  int
}

func NewRetentionScheduler(visitorService service.VisitorService, retentionDays int) *RetentionScheduler {
	return &RetentionScheduler{
		cron:           cron.New(),
		visitorService: visitorService,
		retentionDays:  retentionDays,
	}
}

// Start schedules the daily purge at 04:00 server time.
func (s *RetentionScheduler) Start() error {
	_, err := s.cron.AddFunc("0 4 * * *", func() {
		logger.Info("Starting scheduled visitor log purge", map[string]interface{}{
			"retention_days": s.retentionDays,
		})

		deleted, err := s.visitorService.PurgeExpired(s.retentionDays)
		if err != nil {
			logger.Error("Scheduled visitor log purge failed", err)
			return
		}

		logger.Info("Scheduled visitor log purge completed", map[string]interface{}{
			"deleted": deleted,
		})
	})
	if err != nil {
		logger.Error("Failed to add cron job for visitor log purge", err)
		return err
	}

	s.cron.Start()
	logger.Info("Visitor log retention scheduler started (daily at 4:00 AM)", map[string]interface{}{
		"retention_days": s.retentionDays,
	})
	return nil
}

// Stop stops the scheduler.
func (s *RetentionScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Visitor log retention scheduler stopped", nil)
}
