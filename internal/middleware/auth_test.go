package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/alimikegami/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	validToken string
}

func (s stubAuth) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	return dto.LoginResponse{}, nil
}

func (s stubAuth) Authenticate(token string) (domain.Principal, error) {
	if token != s.validToken {
		return domain.Principal{}, errs.ErrForbidden
	}
	return domain.Principal{Username: "admin", Role: "admin"}, nil
}

func TestIsAdmin(t *testing.T) {
	e := echo.New()
	e.Use(Logger)
	e.POST("/guarded", func(c echo.Context) error {
		p, ok := PrincipalFromEcho(c)
		assert.True(t, ok)
		fromCtx, ok := PrincipalFromContext(c.Request().Context())
		assert.True(t, ok)
		assert.Equal(t, p, fromCtx)
		return c.String(http.StatusOK, p.Username)
	}, IsAdmin(stubAuth{validToken: "good"}))

	testCases := []struct {
		Name           string
		Header         string
		ExpectedStatus int
		ExpectedError  string
	}{
		{Name: "no header", Header: "", ExpectedStatus: http.StatusUnauthorized, ExpectedError: errs.ErrNotLoggedIn.Error()},
		{Name: "wrong scheme", Header: "Basic good", ExpectedStatus: http.StatusUnauthorized, ExpectedError: errs.ErrNotLoggedIn.Error()},
		{Name: "empty bearer", Header: "Bearer ", ExpectedStatus: http.StatusUnauthorized, ExpectedError: errs.ErrNotLoggedIn.Error()},
		{Name: "bad token", Header: "Bearer bad", ExpectedStatus: http.StatusForbidden, ExpectedError: errs.ErrForbidden.Error()},
		{Name: "valid token", Header: "Bearer good", ExpectedStatus: http.StatusOK},
		{Name: "lowercase scheme", Header: "bearer good", ExpectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
			if tc.Header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.Header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.ExpectedStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
			if tc.ExpectedError != "" {
				var body response.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tc.ExpectedError, body.Error)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = bearerToken("abc.def")
	assert.False(t, ok)
}
