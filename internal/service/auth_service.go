package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/pkg/clock"
	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/alimikegami/catalog-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var errMissingSecret = errors.New("JWT_SECRET is not configured")

type AuthServiceImpl struct {
	admin     config.AdminConfig
	jwtSecret string
	clock     clock.Clock
}

func CreateNewAuthService(conf config.Config, clk clock.Clock) AuthService {
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &AuthServiceImpl{admin: conf.AdminConfig, jwtSecret: conf.JWTSecret, clock: clk}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	if req.Username == "" || req.Password == "" {
		return res, errs.Validation("Username and password are required")
	}

	if !s.checkCredentials(req.Username, req.Password) {
		log.Ctx(ctx).Warn().Str("component", "Login").Str("username", req.Username).Msg("rejected admin login")
		return res, errs.ErrInvalidCredentials
	}

	if s.jwtSecret == "" {
		return res, errMissingSecret
	}

	token, claims, err := utils.CreateJWTToken(s.admin.Username, config.AdminRole, s.jwtSecret, s.clock.Now(), config.TokenTTL)
	if err != nil {
		return res, err
	}

	res.Token = token
	res.Username = claims.Username
	res.ExpiresAt = claims.ExpiresAt

	return res, nil
}

// Authenticate verifies a bearer token and returns the admin it was issued
// to. Every rejection is errs.ErrForbidden.
func (s *AuthServiceImpl) Authenticate(token string) (principal domain.Principal, err error) {
	if s.jwtSecret == "" {
		return principal, errs.ErrForbidden
	}

	claims, err := utils.ParseJWTToken(token, s.jwtSecret)
	if err != nil {
		log.Debug().Err(err).Str("component", "Authenticate").Msg("")
		return principal, errs.ErrForbidden
	}

	if claims.Role != config.AdminRole || claims.Username != s.admin.Username {
		return principal, errs.ErrForbidden
	}

	return domain.Principal{Username: claims.Username, Role: claims.Role}, nil
}

func (s *AuthServiceImpl) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1

	var passOK bool
	if s.admin.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
	} else {
		passOK = s.admin.Password != "" && subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	}

	return userOK && passOK
}
