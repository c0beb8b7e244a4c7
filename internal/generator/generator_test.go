package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sai-Sandilya/DBA-sub001/internal/domain"
)

func generateDataset(t *testing.T, cfg Config) Dataset {
	t.Helper()
	gen, err := New(cfg)
	require.NoError(t, err)
	dataset, err := gen.Generate(context.Background())
	require.NoError(t, err)
	return dataset
}

func requireUniqueSet(t *testing.T, elems []string, min, max int, field string) {
	t.Helper()
	require.GreaterOrEqual(t, len(elems), min, "%s below minimum", field)
	require.LessOrEqual(t, len(elems), max, "%s above maximum", field)
	seen := make(map[string]struct{}, len(elems))
	for _, e := range elems {
		_, dup := seen[e]
		require.False(t, dup, "%s contains duplicate %q", field, e)
		seen[e] = struct{}{}
	}
}

func TestGenerateCollectionSizes(t *testing.T) {
	cfg := DemoScale()
	dataset := generateDataset(t, cfg)

	assert.Len(t, dataset.Profiles, cfg.ProfileCount)
	assert.Len(t, dataset.Products, cfg.ProductCount)
	assert.Len(t, dataset.Orders, cfg.OrderCount)
	assert.Len(t, dataset.Events, cfg.EventCount)
	assert.Len(t, dataset.Content, cfg.ContentCount)
}

func TestGenerateIDOrder(t *testing.T) {
	dataset := generateDataset(t, DemoScale())

	require.Equal(t, "user_0001", dataset.Profiles[0].ID)
	require.Equal(t, "prod_000001", dataset.Products[0].ID)
	require.Equal(t, "ord_000001", dataset.Orders[0].ID)
	require.Equal(t, "evt_0000000001", dataset.Events[0].ID)
	require.Equal(t, "cont_000001", dataset.Content[0].ID)

	for i := 1; i < len(dataset.Profiles); i++ {
		require.Greater(t, dataset.Profiles[i].ID, dataset.Profiles[i-1].ID)
	}
}

func TestReferentialClosure(t *testing.T) {
	dataset := generateDataset(t, DemoScale())

	profileIDs := make(map[string]struct{}, len(dataset.Profiles))
	for _, p := range dataset.Profiles {
		profileIDs[p.ID] = struct{}{}
	}
	productIDs := make(map[string]struct{}, len(dataset.Products))
	for _, p := range dataset.Products {
		productIDs[p.ID] = struct{}{}
	}

	for _, order := range dataset.Orders {
		_, ok := profileIDs[order.CustomerID]
		require.True(t, ok, "order %s references unknown customer %s", order.ID, order.CustomerID)
		for _, item := range order.Items {
			_, ok := productIDs[item.ProductID]
			require.True(t, ok, "order %s references unknown product %s", order.ID, item.ProductID)
		}
	}

	for _, product := range dataset.Products {
		for _, rating := range product.Ratings {
			_, ok := profileIDs[rating.UserID]
			require.True(t, ok, "product %s rating references unknown user %s", product.ID, rating.UserID)
		}
	}

	for _, event := range dataset.Events {
		if event.UserID != nil {
			_, ok := profileIDs[*event.UserID]
			require.True(t, ok, "event %s references unknown user %s", event.ID, *event.UserID)
		}
		if event.Properties.ProductID != nil {
			_, ok := productIDs[*event.Properties.ProductID]
			require.True(t, ok, "event %s references unknown product %s", event.ID, *event.Properties.ProductID)
		}
	}
}

func TestOrderArithmeticClosure(t *testing.T) {
	dataset := generateDataset(t, DemoScale())

	for _, order := range dataset.Orders {
		require.GreaterOrEqual(t, len(order.Items), minOrderItems)
		require.LessOrEqual(t, len(order.Items), maxOrderItems)

		var sum float64
		for _, item := range order.Items {
			require.InDelta(t, round2(float64(item.Quantity)*item.UnitPrice), item.ItemTotal, 1e-9,
				"order %s item_total", order.ID)
			sum += item.ItemTotal
		}
		p := order.Pricing
		require.InDelta(t, round2(sum), p.Subtotal, 1e-9, "order %s subtotal", order.ID)
		require.InDelta(t, round2(p.Subtotal*p.TaxRate), p.TaxAmount, 1e-9, "order %s tax", order.ID)
		require.InDelta(t, round2(p.Subtotal+p.TaxAmount+p.ShippingCost-p.DiscountAmount), p.Total, 1e-9,
			"order %s total", order.ID)

		if p.Subtotal < freeShippingThreshold {
			require.GreaterOrEqual(t, p.ShippingCost, minShippingCost, "order %s", order.ID)
			require.LessOrEqual(t, p.ShippingCost, maxShippingCost, "order %s", order.ID)
		} else {
			require.Zero(t, p.ShippingCost, "order %s", order.ID)
		}
	}
}

func TestSetCardinalityBounds(t *testing.T) {
	dataset := generateDataset(t, DemoScale())

	for _, p := range dataset.Profiles {
		requireUniqueSet(t, p.Profile.Interests, minInterests, maxInterests, "interests")
		requireUniqueSet(t, p.Tags, minUserTags, maxUserTags, "user tags")
	}
	for _, p := range dataset.Products {
		requireUniqueSet(t, p.Inventory.Warehouses, minWarehouses, maxWarehouses, "warehouses")
		requireUniqueSet(t, p.Specifications.Materials, minMaterials, maxMaterials, "materials")
		requireUniqueSet(t, p.Tags, minProductTags, maxProductTags, "product tags")
		require.GreaterOrEqual(t, len(p.Variants), minVariants)
		require.LessOrEqual(t, len(p.Variants), maxVariants)
		require.LessOrEqual(t, len(p.Ratings), maxRatings)
	}
	for _, c := range dataset.Content {
		requireUniqueSet(t, c.SEO.Keywords, minKeywords, maxKeywords, "keywords")
		requireUniqueSet(t, c.Categories, minContentCategories, maxContentCategories, "categories")
		requireUniqueSet(t, c.Tags, minContentTags, maxContentTags, "content tags")
		if c.AccessControl.UserGroups != nil {
			requireUniqueSet(t, c.AccessControl.UserGroups, 1, 2, "user groups")
		}
	}
}

func TestVariantSizeCrossFieldDependency(t *testing.T) {
	dataset := generateDataset(t, FullScale())

	sizes := make(map[string]struct{})
	for _, s := range defaultVocabulary().clothingSizes {
		sizes[s] = struct{}{}
	}
	for _, p := range dataset.Products {
		for _, v := range p.Variants {
			if p.Category == "clothing" {
				_, ok := sizes[v.Size]
				require.True(t, ok, "clothing product %s has non-size %q", p.ID, v.Size)
			} else {
				require.Equal(t, variantSizeSentinel, v.Size, "product %s category %s", p.ID, p.Category)
			}
		}
	}
}

func TestOptionalFieldsNeverEmptyStrings(t *testing.T) {
	dataset := generateDataset(t, DemoScale())

	for _, o := range dataset.Orders {
		if o.Shipping.TrackingNumber != nil {
			require.NotEmpty(t, *o.Shipping.TrackingNumber)
		}
		if o.Payment.CardLastFour != nil {
			require.Len(t, *o.Payment.CardLastFour, 4)
		}
		if o.Metadata.Campaign != nil {
			require.NotEmpty(t, *o.Metadata.Campaign)
		}
	}
	for _, e := range dataset.Events {
		if e.UserID != nil {
			require.NotEmpty(t, *e.UserID)
		}
		if e.AnonymousID != nil {
			require.NotEmpty(t, *e.AnonymousID)
		}
	}
}

func TestCardLastFourOnlyForCardPayments(t *testing.T) {
	dataset := generateDataset(t, FullScale())

	for _, o := range dataset.Orders {
		if o.Payment.CardLastFour != nil {
			require.Contains(t, []string{"credit_card", "debit_card"}, o.Payment.Method,
				"order %s has last-four with method %s", o.ID, o.Payment.Method)
		}
	}
}

func TestContentDerivedFields(t *testing.T) {
	dataset := generateDataset(t, DemoScale())

	roster := make(map[string]struct{})
	for _, a := range defaultVocabulary().authors {
		roster[a.id] = struct{}{}
	}
	for _, c := range dataset.Content {
		require.Equal(t, len(strings.Fields(c.Content.Body)), c.Content.WordCount, "content %s", c.ID)
		require.Equal(t, readingTime(c.Content.WordCount), c.Content.ReadingTimeMin)
		_, ok := roster[c.Author.ID]
		require.True(t, ok, "content %s author %s not in roster", c.ID, c.Author.ID)
		if c.Status == "published" || c.Status == "archived" {
			require.NotNil(t, c.Publishing.PublishedAt, "content %s status %s", c.ID, c.Status)
		}
	}
}

func TestDeterminismWithFixedSeed(t *testing.T) {
	cfg := DemoScale()
	cfg.Seed = 1234

	first := generateDataset(t, cfg)
	second := generateDataset(t, cfg)
	require.Equal(t, first, second)
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := DemoScale()
	a.Seed = 1
	b := DemoScale()
	b.Seed = 2

	require.NotEqual(t, generateDataset(t, a).Profiles, generateDataset(t, b).Profiles)
}

func TestScaleInvariance(t *testing.T) {
	small := DemoScale()
	doubled := Config{
		ProfileCount: small.ProfileCount * 2,
		ProductCount: small.ProductCount * 2,
		OrderCount:   small.OrderCount * 2,
		EventCount:   small.EventCount * 2,
		ContentCount: small.ContentCount * 2,
		Seed:         small.Seed,
	}

	dataset := generateDataset(t, doubled)
	assert.Len(t, dataset.Profiles, small.ProfileCount*2)
	assert.Len(t, dataset.Products, small.ProductCount*2)
	assert.Len(t, dataset.Orders, small.OrderCount*2)
	assert.Len(t, dataset.Events, small.EventCount*2)
	assert.Len(t, dataset.Content, small.ContentCount*2)
}

func TestValidateRejectsEmptyReferencePools(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"orders without profiles", Config{ProductCount: 10, OrderCount: 5}},
		{"orders without products", Config{ProfileCount: 10, OrderCount: 5}},
		{"products without profiles", Config{ProductCount: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			require.ErrorIs(t, err, ErrEmptyReferencePool)
		})
	}
}

func TestValidateAllowsEventsOnlyRuns(t *testing.T) {
	// Events hold soft references; an events-only run is legal and emits
	// no user or product references.
	dataset := generateDataset(t, Config{EventCount: 50, Seed: 9})

	require.Len(t, dataset.Events, 50)
	for _, e := range dataset.Events {
		require.Nil(t, e.UserID)
		require.Nil(t, e.Properties.ProductID)
	}
}

func TestGenerateRespectsCancellation(t *testing.T) {
	gen, err := New(FullScale())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = gen.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCollectionsWriteOrder(t *testing.T) {
	dataset := generateDataset(t, DemoScale())

	collections := dataset.Collections()
	require.Len(t, collections, len(domain.CollectionOrdering))
	for i, name := range domain.CollectionOrdering {
		assert.Equal(t, name, collections[i].Name)
	}
}
