// Package service implements demo authentication. There is no user table:
// a single demo account is derived from configuration, and credential
// checks are either a bcrypt comparison against the configured hash or, when
// no hash is set, a non-empty check suitable for demo deployments.
package service

import (
	"context"

	"leadflow_backend/internal/auth/token"
	"leadflow_backend/internal/auth/transport"
	"leadflow_backend/platform/apperr"
	"leadflow_backend/platform/config"
	"leadflow_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoUserName    = "Demo User"
	demoUserCompany = "Demo Company"
)

type Service struct {
	cfg    config.AuthServiceConfig
	issuer *token.Issuer
	log    *logger.Logger
}

func New(cfg config.AuthServiceConfig, issuer *token.Issuer, log *logger.Logger) *Service {
	return &Service{cfg: cfg, issuer: issuer, log: log}
}

// Login validates the demo credentials and issues an access token. The user
// id is derived deterministically from the email so campaigns created across
// sessions stay attached to the same owner.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	if !s.credentialsValid(req.Email, req.Password) {
		return transport.LoginResponse{}, apperr.Unauthorized("invalid credentials")
	}

	userID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(req.Email))

	signed, expiresAt, err := s.issuer.IssueAccessToken(userID, req.Email)
	if err != nil {
		s.log.Error("token signing failed", "error", err.Error())
		return transport.LoginResponse{}, apperr.Wrap(apperr.KindInternal, "failed to issue token", err)
	}

	return transport.LoginResponse{
		Success: true,
		User: transport.UserResponse{
			ID:      userID,
			Email:   req.Email,
			Name:    demoUserName,
			Company: demoUserCompany,
		},
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Service) credentialsValid(email, password string) bool {
	if email == "" || password == "" {
		return false
	}

	if demoEmail := s.cfg.GetDemoUserEmail(); demoEmail != "" && email != demoEmail {
		return false
	}

	if hash := s.cfg.GetDemoPasswordHash(); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	return true
}
