// Package auth implements the admin login flow: a single admin identity from
// config, argon2id password verification, and a signed session token carried
// in an HttpOnly cookie by the HTTP layer.
package auth

import (
	"context"
	"time"

	"github.com/gurneepeptides/storefront-backend/pkg/auth"
	"github.com/gurneepeptides/storefront-backend/pkg/config"
	"github.com/gurneepeptides/storefront-backend/pkg/errors"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
	"github.com/gurneepeptides/storefront-backend/pkg/security"
)

// devFallbackPassword is used only when a dev environment configures neither
// a password hash nor a password.
const devFallbackPassword = "changeme123"

type Service struct {
	jwtCfg       config.JWTConfig
	adminEmail   string
	passwordHash string
	log          *logger.Logger
	now          func() time.Time
}

// NewService resolves the admin credential at boot. A configured hash wins;
// otherwise the plaintext password from config is hashed. Production refuses
// to start without one of the two.
func NewService(cfg *config.Config, log *logger.Logger) (*Service, error) {
	hash := cfg.Admin.PasswordHash
	if hash == "" {
		password := cfg.Admin.Password
		if password == "" {
			if cfg.App.IsProd() {
				return nil, errors.New(errors.CodeInternal, "admin password hash or password must be configured")
			}
			log.Warn(context.Background(), "no admin credential configured, using the dev fallback password")
			password = devFallbackPassword
		}
		hashed, err := security.HashPassword(password, cfg.Password)
		if err != nil {
			return nil, errors.Wrap(errors.CodeInternal, err, "hashing admin password")
		}
		hash = hashed
	}

	return &Service{
		jwtCfg:       cfg.JWT,
		adminEmail:   cfg.Admin.Email,
		passwordHash: hash,
		log:          log,
		now:          time.Now,
	}, nil
}

// Login verifies the credentials and mints a session token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email != s.adminEmail {
		return "", errors.New(errors.CodeUnauthorized, "invalid credentials")
	}

	ok, err := security.VerifyPassword(password, s.passwordHash)
	if err != nil {
		return "", errors.Wrap(errors.CodeInternal, err, "verifying admin password")
	}
	if !ok {
		s.log.Warn(ctx, "failed admin login attempt")
		return "", errors.New(errors.CodeUnauthorized, "invalid credentials")
	}

	token, err := auth.MintAdminToken(s.jwtCfg, s.now(), auth.AdminTokenPayload{Email: email})
	if err != nil {
		return "", errors.Wrap(errors.CodeInternal, err, "minting admin token")
	}

	s.log.Info(s.log.WithAdminEmail(ctx, email), "admin logged in")
	return token, nil
}

// AdminEmail returns the configured admin identity.
func (s *Service) AdminEmail() string {
	return s.adminEmail
}

// TokenTTL is the session lifetime; the cookie Max-Age mirrors it.
func (s *Service) TokenTTL() time.Duration {
	return s.jwtCfg.TokenTTL()
}
