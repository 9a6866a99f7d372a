package controller

import (
	"fmt"
	"strconv"

	"github.com/alimikegami/catalog-service/internal/service"
	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// Multipart overhead on top of the largest accepted image.
const productFormLimit = "6M"

type Controller struct {
	service service.CatalogService
}

func CreateController(e *echo.Group, service service.CatalogService, isAdmin echo.MiddlewareFunc) {
	c := Controller{
		service: service,
	}

	e.GET("/collections", c.GetCollections)
	e.POST("/collections", c.AddCollection, isAdmin)
	e.PUT("/collections/reorder", c.ReorderCollections, isAdmin)
	e.GET("/collections/:id", c.GetCollection)
	e.PUT("/collections/:id", c.UpdateCollection, isAdmin)
	e.DELETE("/collections/:id", c.DeleteCollection, isAdmin)

	e.GET("/collections/:id/subcollections", c.GetSubcollections)
	e.POST("/collections/:id/subcollections", c.AddSubcollection, isAdmin)
	e.PUT("/collections/:id/subcollections/reorder", c.ReorderSubcollections, isAdmin)
	e.PUT("/collections/:id/subcollections/:subId", c.UpdateSubcollection, isAdmin)
	e.DELETE("/collections/:id/subcollections/:subId", c.DeleteSubcollection, isAdmin)

	e.GET("/products/subcollections/all", c.GetAllSubcollections)
	e.GET("/products/subcollection/:id", c.GetProducts)
	e.GET("/products/:id", c.GetProduct)
	e.GET("/products/:id/image", c.GetProductImage)
	e.POST("/products", c.AddProduct, isAdmin, middleware.BodyLimit(productFormLimit))
	e.PUT("/products/:id", c.UpdateProduct, isAdmin)
	e.DELETE("/products/:id", c.DeleteProduct, isAdmin)
}

func pathID(e echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(e.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Validation(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

func bindBody(e echo.Context, payload interface{}, component string) error {
	if err := (&echo.DefaultBinder{}).BindBody(e, payload); err != nil {
		log.Ctx(e.Request().Context()).Debug().Err(err).Str("component", component).Msg("")
		return errs.Validation("invalid request body")
	}
	return nil
}
