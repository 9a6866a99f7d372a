package domain

import "github.com/shopspring/decimal"

type Collection struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	DisplayOrder int     `db:"display_order"`
	CreatedAt    int64   `db:"created_at"`
}

type Subcollection struct {
	ID           int64   `db:"id"`
	CollectionID int64   `db:"collection_id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	DisplayOrder int     `db:"display_order"`
	CreatedAt    int64   `db:"created_at"`
}

// SubcollectionWithCollection is a subcollection row joined with the name of
// its parent collection.
type SubcollectionWithCollection struct {
	Subcollection
	CollectionName string `db:"collection_name"`
}

// Product is a leaf catalog item. Image and ImageMimeType are only loaded by
// the image lookup; listings fill HasImage instead.
type Product struct {
	ID              int64           `db:"id"`
	SubcollectionID int64           `db:"subcollection_id"`
	Name            string          `db:"name"`
	Price           decimal.Decimal `db:"price"`
	Description     *string         `db:"description"`
	Image           []byte          `db:"image"`
	ImageMimeType   *string         `db:"image_mime_type"`
	HasImage        bool            `db:"has_image"`
	CreatedAt       int64           `db:"created_at"`
}

type ProductImage struct {
	Data     []byte `db:"image"`
	MimeType string `db:"image_mime_type"`
}

// Principal is the authenticated admin identity attached to a request.
type Principal struct {
	Username string
	Role     string
}
