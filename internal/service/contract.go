package service

import (
	"context"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/alimikegami/catalog-service/internal/dto"
)

type CatalogService interface {
	GetCollections(ctx context.Context) (res []dto.CollectionResponse, err error)
	GetCollection(ctx context.Context, id int64) (res dto.CollectionResponse, err error)
	AddCollection(ctx context.Context, req dto.CollectionRequest) (res dto.CollectionResponse, err error)
	UpdateCollection(ctx context.Context, id int64, req dto.CollectionRequest) (res dto.CollectionResponse, err error)
	DeleteCollection(ctx context.Context, id int64) (err error)
	ReorderCollections(ctx context.Context, orderedIDs []int64) (err error)

	GetSubcollections(ctx context.Context, collectionID int64) (res []dto.SubcollectionResponse, err error)
	GetAllSubcollections(ctx context.Context) (res []dto.SubcollectionResponse, err error)
	AddSubcollection(ctx context.Context, collectionID int64, req dto.SubcollectionRequest) (res dto.SubcollectionResponse, err error)
	UpdateSubcollection(ctx context.Context, collectionID int64, id int64, req dto.SubcollectionRequest) (res dto.SubcollectionResponse, err error)
	DeleteSubcollection(ctx context.Context, collectionID int64, id int64) (err error)
	ReorderSubcollections(ctx context.Context, collectionID int64, orderedIDs []int64) (err error)

	GetProducts(ctx context.Context, subcollectionID int64) (res []dto.ProductResponse, err error)
	GetProduct(ctx context.Context, id int64) (res dto.ProductResponse, err error)
	GetProductImage(ctx context.Context, id int64) (res dto.ImageResponse, err error)
	AddProduct(ctx context.Context, req dto.ProductRequest) (res dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, id int64, req dto.ProductUpdateRequest) (res dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error)
	Authenticate(token string) (principal domain.Principal, err error)
}

// EventPublisher announces committed catalog changes.
type EventPublisher interface {
	Publish(ctx context.Context, msg dto.KafkaMessage) error
}
