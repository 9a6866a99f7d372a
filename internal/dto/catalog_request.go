package dto

import "github.com/shopspring/decimal"

// Pointer fields distinguish an omitted field from a zero value so updates
// only touch what the caller sent.
type CollectionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type SubcollectionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ProductRequest is assembled from the multipart create form.
type ProductRequest struct {
	SubcollectionID int64
	Name            string
	Price           string
	Description     *string
	Image           []byte
	ImageMimeType   string
	ImageSize       int64
}

type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

type ReorderRequest struct {
	OrderedIDs []int64 `json:"orderedIds"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
