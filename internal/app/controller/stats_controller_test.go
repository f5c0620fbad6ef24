package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmlee/storefront-backend/internal/app/repository"
	"github.com/jmlee/storefront-backend/internal/app/service"
	"github.com/jmlee/storefront-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStatsControllerTest(t *testing.T) (*gin.Engine, service.VisitorService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	visitorRepo := repository.NewVisitorLogRepository(testDB)
	visitorService := service.NewVisitorService(visitorRepo)
	statsController := NewStatsController(visitorService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/visits", statsController.RecordVisit)
	router.GET("/admin/stats", statsController.GetStats)

	return router, visitorService
}

func TestStatsController_RecordVisit(t *testing.T) {
	router, visitorService := setupStatsControllerTest(t)

	body, _ := json.Marshal(map[string]interface{}{"path": "/products"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/visits", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Referer", "https://example.com/landing")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)

	stats, err := visitorService.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVisits)
	require.NotEmpty(t, stats.TopPages)
	assert.Equal(t, "/products", stats.TopPages[0].Key)
}

func TestStatsController_RecordVisit_MissingPath(t *testing.T) {
	router, _ := setupStatsControllerTest(t)

	w := postJSON(t, router, http.MethodPost, "/visits", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsController_GetStats(t *testing.T) {
	router, visitorService := setupStatsControllerTest(t)

	require.NoError(t, visitorService.RecordVisit("/products",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
		"", "203.0.113.9"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats service.VisitorStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Stats.TotalVisits)
	assert.Equal(t, int64(1), resp.Stats.VisitsToday)
}
