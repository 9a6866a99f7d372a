package controller

import (
	"net/http"

	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetCollections(e echo.Context) error {
	res, err := c.service.GetCollections(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, res)
}

func (c *Controller) GetCollection(e echo.Context) error {
	id, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	res, err := c.service.GetCollection(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, res)
}

func (c *Controller) AddCollection(e echo.Context) error {
	payload := dto.CollectionRequest{}
	if err := bindBody(e, &payload, "AddCollection"); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	res, err := c.service.AddCollection(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, res)
}

func (c *Controller) UpdateCollection(e echo.Context) error {
	id, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	payload := dto.CollectionRequest{}
	if err := bindBody(e, &payload, "UpdateCollection"); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	res, err := c.service.UpdateCollection(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, res)
}

func (c *Controller) DeleteCollection(e echo.Context) error {
	id, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.DeleteCollection(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Collection deleted")
}

func (c *Controller) ReorderCollections(e echo.Context) error {
	payload := dto.ReorderRequest{}
	if err := bindBody(e, &payload, "ReorderCollections"); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.ReorderCollections(e.Request().Context(), payload.OrderedIDs); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Collections reordered")
}
