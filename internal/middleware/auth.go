package middleware

import (
	"context"
	"strings"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/alimikegami/catalog-service/internal/service"
	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/alimikegami/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type principalCtxKey struct{}

const principalKey = "principal"

// IsAdmin rejects requests without a valid admin bearer token. A missing or
// malformed header is 401, a token that fails verification is 403.
func IsAdmin(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn)
			}

			principal, err := auth.Authenticate(token)
			if err != nil {
				return response.WriteErrorResponse(c, err)
			}

			c.Set(principalKey, principal)

			ctx := context.WithValue(c.Request().Context(), principalCtxKey{}, principal)
			logger := log.Ctx(ctx).With().Str("admin", principal.Username).Logger()
			c.SetRequest(c.Request().WithContext(logger.WithContext(ctx)))

			return next(c)
		}
	}
}

func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(domain.Principal)
	return p, ok
}

func PrincipalFromEcho(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
