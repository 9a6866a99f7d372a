// Package seed loads a small demo catalog.
package seed

import (
	"context"
	"encoding/base64"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/alimikegami/catalog-service/internal/repository"
	"github.com/alimikegami/catalog-service/pkg/clock"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// PlaceholderImage is a 1x1 PNG attached to every seeded product.
var PlaceholderImage, _ = base64.StdEncoding.DecodeString("iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==")

const placeholderMimeType = "image/png"

type product struct {
	name        string
	price       int64
	description string
}

type subcollection struct {
	name        string
	description string
	products    []product
}

type collection struct {
	name           string
	description    string
	subcollections []subcollection
}

var catalog = []collection{
	{
		name:        "Sarees",
		description: "Traditional Indian sarees with exquisite designs",
		subcollections: []subcollection{
			{name: "Silk Sarees", description: "Pure silk sarees", products: []product{
				{"Banarasi Silk Saree", 8999, "Handwoven Banarasi silk saree with golden zari work"},
				{"Kanjivaram Silk Saree", 12999, "Traditional Kanjivaram silk saree"},
				{"Mysore Silk Saree", 6999, "Elegant Mysore silk saree"},
			}},
			{name: "Cotton Sarees", description: "Comfortable cotton sarees", products: []product{
				{"Handloom Cotton Saree", 1999, "Pure handloom cotton saree"},
				{"Block Print Cotton Saree", 2499, "Beautiful block printed cotton saree"},
			}},
			{name: "Designer Sarees", description: "Premium designer sarees", products: []product{
				{"Embroidered Designer Saree", 15999, "Heavy embroidered designer saree"},
				{"Sequin Work Designer Saree", 18999, "Contemporary designer saree with sequin work"},
			}},
		},
	},
	{
		name:        "Kurtis",
		description: "Modern and traditional kurtis for every occasion",
		subcollections: []subcollection{
			{name: "Casual Kurtis", description: "Everyday wear kurtis", products: []product{
				{"Cotton Kurti", 799, "Comfortable cotton kurti for daily wear"},
				{"Printed Kurti", 999, "Trendy printed kurti"},
			}},
			{name: "Party Wear Kurtis", description: "Festive and party kurtis", products: []product{
				{"Embroidered Party Kurti", 2499, "Elegant embroidered kurti for parties"},
				{"Velvet Party Kurti", 3499, "Luxurious velvet kurti"},
			}},
		},
	},
	{
		name:        "Salwar Suits",
		description: "Elegant salwar suits and dress materials",
		subcollections: []subcollection{
			{name: "Anarkali Suits", description: "Flowing anarkali style suits", products: []product{
				{"Georgette Anarkali", 4999, "Flowing georgette anarkali suit"},
				{"Silk Anarkali", 6999, "Premium silk anarkali suit"},
			}},
			{name: "Punjabi Suits", description: "Traditional Punjabi suits", products: []product{
				{"Cotton Punjabi Suit", 2999, "Traditional cotton Punjabi suit"},
				{"Phulkari Punjabi Suit", 5999, "Authentic Phulkari embroidered suit"},
			}},
		},
	},
}

type Summary struct {
	Collections    int
	Subcollections int
	Products       int
}

// Run replaces the whole catalog with the demo data in one transaction.
// Sibling display orders follow the listing order above.
func Run(ctx context.Context, repo repository.CatalogRepository, clk clock.Clock) (summary Summary, err error) {
	if clk == nil {
		clk = clock.RealClock{}
	}

	err = repo.HandleTrx(ctx, func(ctx context.Context, repo repository.CatalogRepository) error {
		summary = Summary{}
		if err := repo.ClearCatalog(ctx); err != nil {
			return err
		}

		now := clk.Now().Unix()
		mimeType := placeholderMimeType

		for i, c := range catalog {
			collectionID, err := repo.AddCollection(ctx, domain.Collection{
				Name:         c.name,
				Description:  strPtr(c.description),
				DisplayOrder: i + 1,
				CreatedAt:    now,
			})
			if err != nil {
				return err
			}
			summary.Collections++

			for j, sc := range c.subcollections {
				subcollectionID, err := repo.AddSubcollection(ctx, domain.Subcollection{
					CollectionID: collectionID,
					Name:         sc.name,
					Description:  strPtr(sc.description),
					DisplayOrder: j + 1,
					CreatedAt:    now,
				})
				if err != nil {
					return err
				}
				summary.Subcollections++

				for _, p := range sc.products {
					_, err := repo.AddProduct(ctx, domain.Product{
						SubcollectionID: subcollectionID,
						Name:            p.name,
						Price:           decimal.NewFromInt(p.price),
						Description:     strPtr(p.description),
						Image:           PlaceholderImage,
						ImageMimeType:   &mimeType,
						CreatedAt:       now,
					})
					if err != nil {
						return err
					}
					summary.Products++
				}
			}
		}

		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	log.Ctx(ctx).Info().
		Int("collections", summary.Collections).
		Int("subcollections", summary.Subcollections).
		Int("products", summary.Products).
		Msg("catalog seeded")

	return summary, nil
}

func strPtr(v string) *string {
	return &v
}
