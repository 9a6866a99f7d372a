package controller

import (
	"net/http"

	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetSubcollections(e echo.Context) error {
	collectionID, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	res, err := c.service.GetSubcollections(e.Request().Context(), collectionID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, res)
}

func (c *Controller) GetAllSubcollections(e echo.Context) error {
	res, err := c.service.GetAllSubcollections(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, res)
}

func (c *Controller) AddSubcollection(e echo.Context) error {
	collectionID, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	payload := dto.SubcollectionRequest{}
	if err := bindBody(e, &payload, "AddSubcollection"); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	res, err := c.service.AddSubcollection(e.Request().Context(), collectionID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, res)
}

func (c *Controller) UpdateSubcollection(e echo.Context) error {
	collectionID, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	id, err := pathID(e, "subId")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	payload := dto.SubcollectionRequest{}
	if err := bindBody(e, &payload, "UpdateSubcollection"); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	res, err := c.service.UpdateSubcollection(e.Request().Context(), collectionID, id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, res)
}

func (c *Controller) DeleteSubcollection(e echo.Context) error {
	collectionID, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	id, err := pathID(e, "subId")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.DeleteSubcollection(e.Request().Context(), collectionID, id); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Subcollection deleted")
}

func (c *Controller) ReorderSubcollections(e echo.Context) error {
	collectionID, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	payload := dto.ReorderRequest{}
	if err := bindBody(e, &payload, "ReorderSubcollections"); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.ReorderSubcollections(e.Request().Context(), collectionID, payload.OrderedIDs); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Subcollections reordered")
}
