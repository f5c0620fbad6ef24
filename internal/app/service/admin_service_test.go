package service

import (
	"testing"
	"time"

	"github.com/jmlee/storefront-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Login(t *testing.T) {
	adminService, err := NewAdminService("letmein", "test-secret", time.Hour)
	require.NoError(t, err)

	token, err := adminService.Login("letmein")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ValidateAdminToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	adminService, err := NewAdminService("letmein", "test-secret", time.Hour)
	require.NoError(t, err)

	token, err := adminService.Login("guess")
	assert.ErrorIs(t, err, ErrInvalidAdminPassword)
	assert.Empty(t, token)
}
