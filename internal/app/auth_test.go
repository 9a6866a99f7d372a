package app_test

import (
	"net/http"
	"time"

	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/pkg/utils"
)

func (s *IntegrationTestSuite) Test_Login() {
	type TestCase struct {
		Name           string
		Request        dto.LoginRequest
		ExpectedStatus int
		AssertResponse func(s *IntegrationTestSuite, body []byte)
	}

	testCases := []TestCase{
		{
			Name:           "Valid credentials",
			Request:        dto.LoginRequest{Username: adminUsername, Password: adminPassword},
			ExpectedStatus: http.StatusOK,
			AssertResponse: func(s *IntegrationTestSuite, body []byte) {
				var res dto.LoginResponse
				s.decode(body, &res)
				s.NotEmpty(res.Token)
				s.Equal(adminUsername, res.Username)
				s.Greater(res.ExpiresAt, time.Now().Unix())
			},
		},
		{
			Name:           "Wrong password",
			Request:        dto.LoginRequest{Username: adminUsername, Password: "wrong"},
			ExpectedStatus: http.StatusUnauthorized,
			AssertResponse: func(s *IntegrationTestSuite, body []byte) {
				s.NotContains(string(body), "token")
				s.Equal("Invalid credentials", s.errorMessage(body))
			},
		},
		{
			Name:           "Missing password",
			Request:        dto.LoginRequest{Username: adminUsername},
			ExpectedStatus: http.StatusBadRequest,
			AssertResponse: func(s *IntegrationTestSuite, body []byte) {
				s.Equal("Username and password are required", s.errorMessage(body))
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			resp, body := s.do(http.MethodPost, "/auth/login", tc.Request, "")
			s.Equal(tc.ExpectedStatus, resp.StatusCode, string(body))
			tc.AssertResponse(s, body)
		})
	}
}

func (s *IntegrationTestSuite) Test_TokenGatesWrites() {
	expired, _, err := utils.CreateJWTToken(adminUsername, config.AdminRole, s.app.Config.JWTSecret, time.Now().Add(-48*time.Hour), config.TokenTTL)
	s.Require().NoError(err)
	forged, _, err := utils.CreateJWTToken(adminUsername, config.AdminRole, "someone-else", time.Now(), config.TokenTTL)
	s.Require().NoError(err)

	type TestCase struct {
		Name           string
		Token          string
		ExpectedStatus int
	}

	testCases := []TestCase{
		{Name: "No token", Token: "", ExpectedStatus: http.StatusUnauthorized},
		{Name: "Expired token", Token: expired, ExpectedStatus: http.StatusForbidden},
		{Name: "Forged token", Token: forged, ExpectedStatus: http.StatusForbidden},
		{Name: "Garbage token", Token: "abc", ExpectedStatus: http.StatusForbidden},
		{Name: "Login token", Token: s.token, ExpectedStatus: http.StatusCreated},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			resp, body := s.do(http.MethodPost, "/collections", map[string]string{"name": "Gated " + tc.Name}, tc.Token)
			s.Equal(tc.ExpectedStatus, resp.StatusCode, string(body))
		})
	}

	resp, body := s.do(http.MethodGet, "/collections", nil, "")
	s.Equal(http.StatusOK, resp.StatusCode)
	var list []dto.CollectionResponse
	s.decode(body, &list)
	s.Len(list, 1)
}
