package repository

import (
	"context"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Listing columns leave the image payload out.
const productColumns = "id, subcollection_id, name, price, description, image_mime_type, (image IS NOT NULL) AS has_image, created_at"

func (r *CatalogRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	args := map[string]interface{}{
		"subcollection_id": data.SubcollectionID,
		"name":             data.Name,
		"price":            data.Price,
		"description":      data.Description,
		"image":            nil,
		"image_mime_type":  nil,
		"created_at":       data.CreatedAt,
	}
	// an empty slice would be stored as a zero length blob rather than NULL
	if len(data.Image) > 0 {
		args["image"] = data.Image
		args["image_mime_type"] = data.ImageMimeType
	}

	id, err = r.insertReturningID(ctx, "INSERT INTO products(subcollection_id, name, price, description, image, image_mime_type, created_at) VALUES (:subcollection_id, :name, :price, :description, :image, :image_mime_type, :created_at) RETURNING id", args)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, translateError(err)
	}

	return id, nil
}

func (r *CatalogRepositoryImpl) GetProductsBySubcollectionID(ctx context.Context, subcollectionID int64) (data []domain.Product, err error) {
	conn := r.conn()
	data = []domain.Product{}
	err = sqlx.SelectContext(ctx, conn, &data, conn.Rebind("SELECT "+productColumns+" FROM products WHERE subcollection_id = ? ORDER BY name ASC, id ASC"), subcollectionID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsBySubcollectionID").Msg("")
		return nil, translateError(err)
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) GetProductByID(ctx context.Context, id int64) (data domain.Product, err error) {
	conn := r.conn()
	err = sqlx.GetContext(ctx, conn, &data, conn.Rebind("SELECT "+productColumns+" FROM products WHERE id = ?"), id)
	if err != nil {
		return data, translateError(err)
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) GetProductImage(ctx context.Context, id int64) (data domain.ProductImage, err error) {
	conn := r.conn()
	err = sqlx.GetContext(ctx, conn, &data, conn.Rebind("SELECT image, image_mime_type FROM products WHERE id = ? AND image IS NOT NULL"), id)
	if err != nil {
		return data, translateError(err)
	}

	if len(data.Data) == 0 {
		return data, errs.ErrNotFound
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	err = r.execAffectingOne(ctx, "UPDATE products SET name = ?, price = ?, description = ? WHERE id = ?", data.Name, data.Price, data.Description, data.ID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return translateError(err)
	}

	return nil
}

func (r *CatalogRepositoryImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	err = r.execAffectingOne(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Int64("id", id).Msg("")
		return translateError(err)
	}

	return nil
}
