package repository

import (
	"time"

	"github.com/jmlee/storefront-backend/internal/app/model"
	"github.com/jmlee/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

// BucketCount is one row of an aggregate breakdown (per device, browser,
// OS, day or page).
type BucketCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type VisitorLogRepository interface {
	Create(log *model.VisitorLog) error
	CountAll() (int64, error)
	CountSince(since time.Time) (int64, error)
	CountPerDay(since time.Time) ([]BucketCount, error)
	CountByField(field string) ([]BucketCount, error)
	TopPages(limit int) ([]BucketCount, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

// visitorLogFields whitelists the columns CountByField may group by.
var visitorLogFields = map[string]bool{
	"device":  true,
	"browser": true,
	"os":      true,
}

type visitorLogRepository struct {
	db *gorm.DB
}

func NewVisitorLogRepository(db *gorm.DB) VisitorLogRepository {
	return &visitorLogRepository{db: db}
}

func (r *visitorLogRepository) Create(visit *model.VisitorLog) error {
	if err := r.db.Create(visit).Error; err != nil {
		logger.Error("Failed to record visit in database", err, map[string]interface{}{
			"path": visit.Path,
		})
		return err
	}
	return nil
}

func (r *visitorLogRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.VisitorLog{}).Count(&count).Error
	return count, err
}

func (r *visitorLogRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.VisitorLog{}).
		Where("timestamp >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *visitorLogRepository) CountPerDay(since time.Time) ([]BucketCount, error) {
	var buckets []BucketCount
	err := r.db.Model(&model.VisitorLog{}).
		Select("DATE(timestamp) AS key, COUNT(*) AS count").
		Where("timestamp >= ?", since).
		Group("DATE(timestamp)").
		Order("key ASC").
		Scan(&buckets).Error
	if err != nil {
		logger.Error("Failed to count visits per day", err)
		return nil, err
	}
	return buckets, nil
}

func (r *visitorLogRepository) CountByField(field string) ([]BucketCount, error) {
	if !visitorLogFields[field] {
		return nil, gorm.ErrInvalidField
	}

	var buckets []BucketCount
	err := r.db.Model(&model.VisitorLog{}).
		Select(field + " AS key, COUNT(*) AS count").
		Group(field).
		Order("count DESC").
		Scan(&buckets).Error
	if err != nil {
		logger.Error("Failed to count visits by field", err, map[string]interface{}{
			"field": field,
		})
		return nil, err
	}
	return buckets, nil
}

func (r *visitorLogRepository) TopPages(limit int) ([]BucketCount, error) {
	var buckets []BucketCount
	err := r.db.Model(&model.VisitorLog{}).
		Select("path AS key, COUNT(*) AS count").
		Group("path").
		Order("count DESC").
		Limit(limit).
		Scan(&buckets).Error
	if err != nil {
		logger.Error("Failed to find top pages", err)
		return nil, err
	}
	return buckets, nil
}

func (r *visitorLogRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Unscoped().
		Where("timestamp < ?", cutoff).
		Delete(&model.VisitorLog{})
	if result.Error != nil {
		logger.Error("Failed to purge old visitor logs", result.Error, map[string]interface{}{
			"cutoff": cutoff,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
