package service

import (
	"testing"
	"time"

	"github.com/jmlee/storefront-backend/internal/app/model"
	"github.com/jmlee/storefront-backend/internal/app/repository"
	"github.com/jmlee/storefront-backend/internal/db"
	"github.com/jmlee/storefront-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	safariIPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
)

func setupVisitorServiceTest(t *testing.T) (VisitorService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	visitorRepo := repository.NewVisitorLogRepository(testDB)
	return NewVisitorService(visitorRepo), testDB
}

func TestVisitorService_RecordVisit(t *testing.T) {
	visitorService, testDB := setupVisitorServiceTest(t)

	err := visitorService.RecordVisit("/products", chromeDesktopUA, "https://google.com", "203.0.113.42")
	require.NoError(t, err)

	var logs []model.VisitorLog
	require.NoError(t, testDB.Find(&logs).Error)
	require.Len(t, logs, 1)

	assert.Equal(t, "/products", logs[0].Path)
	assert.Equal(t, util.DeviceDesktop, logs[0].Device)
	assert.Equal(t, "Chrome", logs[0].Browser)
	assert.Equal(t, "Windows", logs[0].OS)
	assert.Equal(t, "https://google.com", logs[0].Referrer)
	// Only the /24 prefix is stored.
	assert.Equal(t, "203.0.113.0", logs[0].IP)
}

func TestVisitorService_RecordVisit_MobileClient(t *testing.T) {
	visitorService, testDB := setupVisitorServiceTest(t)

	err := visitorService.RecordVisit("/", safariIPhoneUA, "", "198.51.100.7")
	require.NoError(t, err)

	var visit model.VisitorLog
	require.NoError(t, testDB.First(&visit).Error)
	assert.Equal(t, util.DeviceMobile, visit.Device)
	assert.Equal(t, "Safari", visit.Browser)
	assert.Equal(t, "iOS", visit.OS)
}

func TestVisitorService_GetStats(t *testing.T) {
	visitorService, testDB := setupVisitorServiceTest(t)

	require.NoError(t, visitorService.RecordVisit("/products", chromeDesktopUA, "", "203.0.113.1"))
	require.NoError(t, visitorService.RecordVisit("/products", safariIPhoneUA, "", "203.0.113.2"))
	require.NoError(t, visitorService.RecordVisit("/cart", chromeDesktopUA, "", "203.0.113.3"))

	// One old visit outside today's window.
	old := model.VisitorLog{
		Timestamp: time.Now().AddDate(0, 0, -2),
		Path:      "/products",
		Device:    util.DeviceDesktop,
		Browser:   "Firefox",
		OS:        "Linux",
	}
	require.NoError(t, testDB.Create(&old).Error)

	stats, err := visitorService.GetStats()
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalVisits)
	assert.Equal(t, int64(3), stats.VisitsToday)

	deviceCounts := bucketMap(stats.ByDevice)
	assert.Equal(t, int64(3), deviceCounts[util.DeviceDesktop])
	assert.Equal(t, int64(1), deviceCounts[util.DeviceMobile])

	browserCounts := bucketMap(stats.ByBrowser)
	assert.Equal(t, int64(2), browserCounts["Chrome"])

	require.NotEmpty(t, stats.TopPages)
	assert.Equal(t, "/products", stats.TopPages[0].Key)
	assert.Equal(t, int64(3), stats.TopPages[0].Count)
}

func TestVisitorService_PurgeExpired(t *testing.T) {
	visitorService, testDB := setupVisitorServiceTest(t)

	require.NoError(t, visitorService.RecordVisit("/", chromeDesktopUA, "", "203.0.113.1"))

	expired := model.VisitorLog{
		Timestamp: time.Now().AddDate(0, 0, -120),
		Path:      "/",
		Device:    util.DeviceDesktop,
	}
	require.NoError(t, testDB.Create(&expired).Error)

	deleted, err := visitorService.PurgeExpired(90)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var count int64
	require.NoError(t, testDB.Model(&model.VisitorLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func bucketMap(buckets []repository.BucketCount) map[string]int64 {
	m := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		m[b.Key] = b.Count
	}
	return m
}
