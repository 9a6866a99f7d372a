package repository

import (
	"context"

	"github.com/alimikegami/catalog-service/internal/domain"
)

type CatalogRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo CatalogRepository) error) error

	AddCollection(ctx context.Context, data domain.Collection) (id int64, err error)
	GetCollections(ctx context.Context) (data []domain.Collection, err error)
	GetCollectionByID(ctx context.Context, id int64) (data domain.Collection, err error)
	GetCollectionIDs(ctx context.Context) (ids []int64, err error)
	UpdateCollection(ctx context.Context, data domain.Collection) (err error)
	UpdateCollectionDisplayOrder(ctx context.Context, id int64, displayOrder int) (err error)
	DeleteCollection(ctx context.Context, id int64) (err error)

	AddSubcollection(ctx context.Context, data domain.Subcollection) (id int64, err error)
	GetSubcollectionsByCollectionID(ctx context.Context, collectionID int64) (data []domain.Subcollection, err error)
	GetSubcollectionsWithCollection(ctx context.Context) (data []domain.SubcollectionWithCollection, err error)
	GetSubcollectionByID(ctx context.Context, id int64) (data domain.Subcollection, err error)
	GetSubcollectionIDs(ctx context.Context, collectionID int64) (ids []int64, err error)
	UpdateSubcollection(ctx context.Context, data domain.Subcollection) (err error)
	UpdateSubcollectionDisplayOrder(ctx context.Context, collectionID int64, id int64, displayOrder int) (err error)
	DeleteSubcollection(ctx context.Context, id int64) (err error)

	AddProduct(ctx context.Context, data domain.Product) (id int64, err error)
	GetProductsBySubcollectionID(ctx context.Context, subcollectionID int64) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id int64) (data domain.Product, err error)
	GetProductImage(ctx context.Context, id int64) (data domain.ProductImage, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id int64) (err error)

	ClearCatalog(ctx context.Context) (err error)
}
