package service

import (
	"time"

	"github.com/jmlee/storefront-backend/internal/app/model"
	"github.com/jmlee/storefront-backend/internal/app/repository"
	"github.com/jmlee/storefront-backend/pkg/logger"
	"github.com/jmlee/storefront-backend/pkg/util"
)

// VisitorStats is the aggregate view served to the admin dashboard.
type VisitorStats struct {
	TotalVisits  int64                    `json:"total_visits"`
	VisitsToday  int64                    `json:"visits_today"`
	VisitsPerDay []repository.BucketCount `json:"visits_per_day"`
	ByDevice     []repository.BucketCount `json:"by_device"`
	ByBrowser    []repository.BucketCount `json:"by_browser"`
	ByOS         []repository.BucketCount `json:"by_os"`
	TopPages     []repository.BucketCount `json:"top_pages"`
}

type VisitorService interface {
	RecordVisit(path, userAgent, referrer, clientIP string) error
	GetStats() (*VisitorStats, error)
	PurgeExpired(retentionDays int) (int64, error)
}

type visitorService struct {
	visitorRepo repository.VisitorLogRepository
}

func NewVisitorService(visitorRepo repository.VisitorLogRepository) VisitorService {
	return &visitorService{visitorRepo: visitorRepo}
}

func (s *visitorService) RecordVisit(path, userAgent, referrer, clientIP string) error {
	info := util.ClassifyUserAgent(userAgent)

	visit := &model.VisitorLog{
		Timestamp: time.Now(),
		Path:      path,
		Device:    info.Device,
		Browser:   info.Browser,
		OS:        info.OS,
		Referrer:  referrer,
		IP:        util.CoarsenIP(clientIP),
	}

	if err := s.visitorRepo.Create(visit); err != nil {
		logger.Error("Failed to record visit", err, map[string]interface{}{
			"path": path,
		})
		return err
	}

	logger.Debug("Visit recorded", map[string]interface{}{
		"path":    path,
		"device":  visit.Device,
		"browser": visit.Browser,
	})
	return nil
}

func (s *visitorService) GetStats() (*VisitorStats, error) {
	logger.Debug("Building visitor statistics", nil)

	stats := &VisitorStats{}
	var err error

	if stats.TotalVisits, err = s.visitorRepo.CountAll(); err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stats.VisitsToday, err = s.visitorRepo.CountSince(midnight); err != nil {
		return nil, err
	}

	if stats.VisitsPerDay, err = s.visitorRepo.CountPerDay(midnight.AddDate(0, 0, -29)); err != nil {
		return nil, err
	}
	if stats.ByDevice, err = s.visitorRepo.CountByField("device"); err != nil {
		return nil, err
	}
	if stats.ByBrowser, err = s.visitorRepo.CountByField("browser"); err != nil {
		return nil, err
	}
	if stats.ByOS, err = s.visitorRepo.CountByField("os"); err != nil {
		return nil, err
	}
	if stats.TopPages, err = s.visitorRepo.TopPages(10); err != nil {
		return nil, err
	}

	logger.Info("Visitor statistics built", map[string]interface{}{
		"total_visits": stats.TotalVisits,
	})
	return stats, nil
}

func (s *visitorService) PurgeExpired(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	deleted, err := s.visitorRepo.DeleteOlderThan(cutoff)
	if err != nil {
		logger.Error("Failed to purge expired visitor logs", err, map[string]interface{}{
			"retention_days": retentionDays,
		})
		return 0, err
	}

	logger.Info("Expired visitor logs purged", map[string]interface{}{
		"deleted":        deleted,
		"retention_days": retentionDays,
	})
	return deleted, nil
}
