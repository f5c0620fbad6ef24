package service

import (
	"errors"
	"time"

	"github.com/jmlee/storefront-backend/pkg/logger"
	"github.com/jmlee/storefront-backend/pkg/util"
)

var ErrInvalidAdminPassword = errors.New("invalid admin password")

// AdminService gates the admin panel behind a single shared password and
// issues session tokens. There is no user model.
type AdminService interface {
	Login(password string) (string, error)
}

type adminService struct {
	passwordHash string
	jwtSecret    string
	tokenExpiry  time.Duration
}

func NewAdminService(password, jwtSecret string, tokenExpiry time.Duration) (AdminService, error) {
	// The configured password is hashed once at startup so the plaintext
	// never sits in the service struct.
	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &adminService{
		passwordHash: hash,
		jwtSecret:    jwtSecret,
		tokenExpiry:  tokenExpiry,
	}, nil
}

func (s *adminService) Login(password string) (string, error) {
	if !util.VerifyPassword(s.passwordHash, password) {
		logger.Warn("Admin login rejected: wrong password", nil)
		return "", ErrInvalidAdminPassword
	}

	token, err := util.GenerateAdminToken(s.jwtSecret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to issue admin token", err)
		return "", err
	}

	logger.Info("Admin logged in", map[string]interface{}{
		"token_expiry": s.tokenExpiry.String(),
	})
	return token, nil
}
