package response

import (
	"net/http"

	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteSuccessResponse(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, data)
}

func WriteMessageResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// WriteErrorResponse maps err to its status code. Server side failures are
// logged with their detail and answered with a generic message.
func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	message := err.Error()

	if statusCode >= http.StatusInternalServerError {
		log.Ctx(c.Request().Context()).Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request failed")
		message = errs.ErrInternalServer.Error()
	}

	return c.JSON(statusCode, ErrorResponse{Error: message})
}
