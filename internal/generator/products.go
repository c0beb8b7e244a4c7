package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sai-Sandilya/DBA-sub001/internal/domain"
)

const (
	productDiscountChance = 0.40
	productActiveChance   = 0.90

	minVariants = 1
	maxVariants = 5
	minRatings  = 0
	maxRatings  = 8

	minWarehouses  = 1
	maxWarehouses  = 3
	minMaterials   = 1
	maxMaterials   = 3
	minProductTags = 1
	maxProductTags = 4
)

// variantSizeSentinel is the size recorded for every non-clothing
// variant; only clothing draws from the size vocabulary.
const variantSizeSentinel = "standard"

func (g *Generator) generateProducts(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0, g.cfg.ProductCount)

	for i := 0; i < g.cfg.ProductCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := g.productPool.at(i)
		category := g.s.pick(g.vocab.categories)
		brand := g.s.pick(g.vocab.brands)
		sku := fmt.Sprintf("%s-%s-%06d", skuFragment(brand), skuFragment(category), i+1)
		name := fmt.Sprintf("%s %s %s", brand, g.s.pick(g.vocab.adjectives), g.s.pick(g.vocab.nouns))

		discount := 0.0
		if g.s.chance(productDiscountChance) {
			discount = float64(g.s.intBetween(5, 30))
		}

		warehouses, err := g.s.sampleSet(g.vocab.warehouses, minWarehouses, maxWarehouses)
		if err != nil {
			return nil, fmt.Errorf("product %s warehouses: %w", id, err)
		}
		materials, err := g.s.sampleSet(g.vocab.materials, minMaterials, maxMaterials)
		if err != nil {
			return nil, fmt.Errorf("product %s materials: %w", id, err)
		}
		tags, err := g.s.sampleSet(g.vocab.productTags, minProductTags, maxProductTags)
		if err != nil {
			return nil, fmt.Errorf("product %s tags: %w", id, err)
		}

		quantity := g.s.intBetween(0, 500)
		reserved := 0
		if quantity > 0 {
			reserved = g.s.intBetween(0, min(quantity, 25))
		}

		products = append(products, domain.Product{
			ID:          id,
			SKU:         sku,
			Name:        name,
			Description: fmt.Sprintf("%s by %s, built for everyday use.", name, brand),
			Category:    category,
			Brand:       brand,
			Pricing: domain.ProductPricing{
				BasePrice:       g.s.money(5, 500),
				Currency:        "USD",
				DiscountPercent: discount,
				TaxRate:         round2(g.s.floatBetween(0.05, 0.12)),
			},
			Inventory: domain.Inventory{
				Quantity:   quantity,
				Reserved:   reserved,
				Warehouses: warehouses,
			},
			Specifications: domain.Specifications{
				Dimensions: domain.Dimensions{
					Length: round2(g.s.floatBetween(5, 120)),
					Width:  round2(g.s.floatBetween(5, 80)),
					Height: round2(g.s.floatBetween(2, 60)),
					Unit:   "cm",
				},
				WeightKG:  round2(g.s.floatBetween(0.1, 25)),
				Materials: materials,
			},
			Variants:  g.buildVariants(category),
			Ratings:   g.buildRatings(),
			Tags:      tags,
			IsActive:  g.s.chance(productActiveChance),
			CreatedAt: baseTime.Add(-time.Duration(g.s.intBetween(1, 365*24)) * time.Hour),
		})
	}

	return products, nil
}

// buildVariants derives the size domain from the already-fixed category:
// clothing samples real sizes, everything else records the sentinel.
func (g *Generator) buildVariants(category string) []domain.Variant {
	count := g.s.intBetween(minVariants, maxVariants)
	variants := make([]domain.Variant, 0, count)
	for i := 0; i < count; i++ {
		size := variantSizeSentinel
		if category == "clothing" {
			size = g.s.pick(g.vocab.clothingSizes)
		}
		variants = append(variants, domain.Variant{
			Color:      g.s.pick(g.vocab.colors),
			Size:       size,
			PriceDelta: g.s.money(-10, 25),
			Stock:      g.s.intBetween(0, 100),
		})
	}
	return variants
}

func (g *Generator) buildRatings() []domain.Rating {
	count := g.s.intBetween(minRatings, maxRatings)
	ratings := make([]domain.Rating, 0, count)
	for i := 0; i < count; i++ {
		ratings = append(ratings, domain.Rating{
			UserID:  g.profilePool.pick(g.s.r),
			Rating:  g.s.intBetween(1, 5),
			Comment: g.s.pick(g.vocab.ratingNotes),
			Date:    baseTime.Add(-time.Duration(g.s.intBetween(1, 180*24)) * time.Hour),
		})
	}
	return ratings
}

// skuFragment uppercases the first three letters of a word for the
// brand/category portions of a SKU.
func skuFragment(word string) string {
	up := strings.ToUpper(word)
	if len(up) > 3 {
		up = up[:3]
	}
	return up
}
