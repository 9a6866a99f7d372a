package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/internal/repository"
	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/shopspring/decimal"
)

const msgProductNotFound = "Product not found"

// NUMERIC(10, 2)
var maxPrice = decimal.New(1, 8)

func (s *CatalogServiceImpl) GetProducts(ctx context.Context, subcollectionID int64) (res []dto.ProductResponse, err error) {
	if _, err = s.repo.GetSubcollectionByID(ctx, subcollectionID); err != nil {
		return nil, withNotFound(err, msgSubcollectionNotFound)
	}

	data, err := s.repo.GetProductsBySubcollectionID(ctx, subcollectionID)
	if err != nil {
		return nil, err
	}

	res = make([]dto.ProductResponse, 0, len(data))
	for _, p := range data {
		res = append(res, toProductResponse(p))
	}

	return res, nil
}

func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id int64) (res dto.ProductResponse, err error) {
	data, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return res, withNotFound(err, msgProductNotFound)
	}

	return toProductResponse(data), nil
}

func (s *CatalogServiceImpl) GetProductImage(ctx context.Context, id int64) (res dto.ImageResponse, err error) {
	data, err := s.repo.GetProductImage(ctx, id)
	if err != nil {
		return res, withNotFound(err, "Image not found")
	}

	return dto.ImageResponse{Data: data.Data, MimeType: data.MimeType}, nil
}

func (s *CatalogServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (res dto.ProductResponse, err error) {
	if req.SubcollectionID <= 0 {
		return res, errs.Validation("subcollection_id is required")
	}

	name, err := requiredName(&req.Name)
	if err != nil {
		return res, err
	}

	if strings.TrimSpace(req.Price) == "" {
		return res, errs.Validation("price is required")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		return res, errs.Validation("price must be a number")
	}
	if price, err = validPrice(price); err != nil {
		return res, err
	}

	data := domain.Product{
		SubcollectionID: req.SubcollectionID,
		Name:            name,
		Price:           price,
		Description:     req.Description,
		CreatedAt:       s.clock.Now().UnixMilli(),
	}

	if len(req.Image) > 0 {
		mimeType, err := ValidateImage(req.ImageMimeType, max(req.ImageSize, int64(len(req.Image))))
		if err != nil {
			return res, err
		}
		data.Image = req.Image
		data.ImageMimeType = &mimeType
		data.HasImage = true
	}

	data.ID, err = s.repo.AddProduct(ctx, data)
	if err != nil {
		return res, withNotFound(err, msgSubcollectionNotFound)
	}

	res = toProductResponse(data)
	s.publish(ctx, dto.EventProductCreated, res)

	return res, nil
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, id int64, req dto.ProductUpdateRequest) (res dto.ProductResponse, err error) {
	if err = optionalName(req.Name); err != nil {
		return res, err
	}

	var price decimal.Decimal
	if req.Price != nil {
		if price, err = validPrice(*req.Price); err != nil {
			return res, err
		}
	}

	var data domain.Product
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.CatalogRepository) (txErr error) {
		data, txErr = repo.GetProductByID(ctx, id)
		if txErr != nil {
			return txErr
		}

		if req.Name != nil {
			data.Name = strings.TrimSpace(*req.Name)
		}
		if req.Price != nil {
			data.Price = price
		}
		if req.Description != nil {
			data.Description = req.Description
		}

		return repo.UpdateProduct(ctx, data)
	})
	if err != nil {
		return res, withNotFound(err, msgProductNotFound)
	}

	res = toProductResponse(data)
	s.publish(ctx, dto.EventProductUpdated, res)

	return res, nil
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	err = s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return withNotFound(err, msgProductNotFound)
	}

	s.publish(ctx, dto.EventProductDeleted, dto.DeletedEntity{ID: id})

	return nil
}

func validPrice(price decimal.Decimal) (decimal.Decimal, error) {
	if price.IsNegative() {
		return price, errs.Validation("price must not be negative")
	}

	price = price.Round(2)
	if price.GreaterThanOrEqual(maxPrice) {
		return price, errs.Validation("price is too large")
	}

	return price, nil
}

func ProductImageURL(id int64) string {
	return fmt.Sprintf("/api/v1/products/%d/image", id)
}

func toProductResponse(p domain.Product) dto.ProductResponse {
	res := dto.ProductResponse{
		ID:              p.ID,
		SubcollectionID: p.SubcollectionID,
		Name:            p.Name,
		Price:           p.Price,
		Description:     p.Description,
		HasImage:        p.HasImage,
		CreatedAt:       p.CreatedAt,
	}

	if p.HasImage {
		url := ProductImageURL(p.ID)
		res.ImageURL = &url
		res.ImageMimeType = p.ImageMimeType
	}

	return res
}
