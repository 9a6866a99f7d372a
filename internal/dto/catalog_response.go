package dto

import "github.com/shopspring/decimal"

type CollectionResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
	CreatedAt    int64   `json:"created_at"`
}

type SubcollectionResponse struct {
	ID             int64   `json:"id"`
	CollectionID   int64   `json:"collection_id"`
	CollectionName string  `json:"collection_name,omitempty"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	DisplayOrder   int     `json:"display_order"`
	CreatedAt      int64   `json:"created_at"`
}

type ProductResponse struct {
	ID              int64           `json:"id"`
	SubcollectionID int64           `json:"subcollection_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Description     *string         `json:"description"`
	HasImage        bool            `json:"has_image"`
	ImageMimeType   *string         `json:"image_mime_type,omitempty"`
	ImageURL        *string         `json:"image_url"`
	CreatedAt       int64           `json:"created_at"`
}

type ImageResponse struct {
	Data     []byte
	MimeType string
}

type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresAt int64  `json:"expires_at"`
}
