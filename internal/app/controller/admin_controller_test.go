package controller

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmlee/storefront-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminControllerTest(t *testing.T) *gin.Engine {
	adminService, err := service.NewAdminService("letmein", "test-secret", time.Hour)
	require.NoError(t, err)
	adminController := NewAdminController(adminService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin/login", adminController.Login)
	return router
}

func TestAdminController_Login(t *testing.T) {
	router := setupAdminControllerTest(t)

	w := postJSON(t, router, http.MethodPost, "/admin/login", map[string]interface{}{
		"password": "letmein",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAdminController_Login_WrongPassword(t *testing.T) {
	router := setupAdminControllerTest(t)

	w := postJSON(t, router, http.MethodPost, "/admin/login", map[string]interface{}{
		"password": "guess",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminController_Login_MissingPassword(t *testing.T) {
	router := setupAdminControllerTest(t)

	w := postJSON(t, router, http.MethodPost, "/admin/login", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
