package controller

import (
	"net/http"

	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/internal/service"
	"github.com/alimikegami/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type AuthController struct {
	service service.AuthService
}

func CreateAuthController(e *echo.Group, service service.AuthService) {
	ac := AuthController{
		service: service,
	}
	e.POST("/auth/login", ac.Login)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if err := bindBody(e, &payload, "Login"); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, respPayload)
}
