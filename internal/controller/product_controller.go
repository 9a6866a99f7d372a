package controller

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/internal/service"
	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/alimikegami/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func (c *Controller) GetProducts(e echo.Context) error {
	subcollectionID, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	res, err := c.service.GetProducts(e.Request().Context(), subcollectionID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, res)
}

func (c *Controller) GetProduct(e echo.Context) error {
	id, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	res, err := c.service.GetProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, res)
}

func (c *Controller) GetProductImage(e echo.Context) error {
	id, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	img, err := c.service.GetProductImage(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	e.Response().Header().Set("Cache-Control", config.ImageCacheControl)
	return e.Blob(http.StatusOK, img.MimeType, img.Data)
}

// AddProduct reads the multipart form fields subcollection_id, name, price,
// description and the optional file part image.
func (c *Controller) AddProduct(e echo.Context) error {
	form, err := e.MultipartForm()
	if err != nil {
		log.Ctx(e.Request().Context()).Debug().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.Validation("expected a multipart form"))
	}

	payload := dto.ProductRequest{
		Name:  formValue(form.Value, "name"),
		Price: formValue(form.Value, "price"),
	}

	if raw := formValue(form.Value, "subcollection_id"); raw != "" {
		payload.SubcollectionID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.WriteErrorResponse(e, errs.Validation("invalid subcollection_id"))
		}
	}

	if desc := formValue(form.Value, "description"); desc != "" {
		payload.Description = &desc
	}

	if files := form.File["image"]; len(files) > 0 {
		file := files[0]
		mimeType, err := service.ValidateImage(file.Header.Get(echo.HeaderContentType), file.Size)
		if err != nil {
			return response.WriteErrorResponse(e, err)
		}

		src, err := file.Open()
		if err != nil {
			return response.WriteErrorResponse(e, err)
		}
		defer src.Close()

		payload.Image, err = io.ReadAll(io.LimitReader(src, config.MaxImageSize+1))
		if err != nil {
			return response.WriteErrorResponse(e, err)
		}
		payload.ImageMimeType = mimeType
		payload.ImageSize = file.Size
	}

	res, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, res)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	id, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	payload := dto.ProductUpdateRequest{}
	if err := bindBody(e, &payload, "UpdateProduct"); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	res, err := c.service.UpdateProduct(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, res)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	id, err := pathID(e, "id")
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.DeleteProduct(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Product deleted")
}

func formValue(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}
