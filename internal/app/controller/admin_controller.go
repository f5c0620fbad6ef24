package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmlee/storefront-backend/internal/app/service"
	apperrors "github.com/jmlee/storefront-backend/internal/errors"
	"github.com/jmlee/storefront-backend/internal/middleware"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login exchanges the shared admin password for a session token
// POST /api/v1/admin/login
func (ctrl *AdminController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid admin login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Password is required")
		return
	}

	token, err := ctrl.adminService.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAdminPassword) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidPassword, "Wrong password")
			return
		}
		log.Error("Admin login failed", err, nil)
		apperrors.InternalError(c, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}
