package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sai-Sandilya/DBA-sub001/internal/domain"
)

func fixedItems(pairs ...[2]float64) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(pairs))
	for _, p := range pairs {
		q := int(p[0])
		items = append(items, domain.OrderItem{
			ProductID: "prod_000001",
			Quantity:  q,
			UnitPrice: p[1],
			ItemTotal: round2(float64(q) * p[1]),
		})
	}
	return items
}

func TestComputePricingSubtotal(t *testing.T) {
	// Two items: 2 × 20.00 = 40.00 and 1 × 15.50 = 15.50.
	items := fixedItems([2]float64{2, 20.00}, [2]float64{1, 15.50})

	pricing := computePricing(newSampler(1), items)
	assert.InDelta(t, 55.50, pricing.Subtotal, 1e-9)
}

func TestWorkedExampleTotal(t *testing.T) {
	// subtotal 55.50, tax 4.44 (rate 0.08), shipping 12.30, no discount.
	assert.InDelta(t, 4.44, round2(55.50*0.08), 1e-9)
	assert.InDelta(t, 72.24, round2(55.50+4.44+12.30-0), 1e-9)
}

func TestComputePricingInvariants(t *testing.T) {
	for seed := int64(0); seed < 300; seed++ {
		s := newSampler(seed)
		count := s.intBetween(minOrderItems, maxOrderItems)
		pairs := make([][2]float64, 0, count)
		for i := 0; i < count; i++ {
			pairs = append(pairs, [2]float64{float64(s.intBetween(1, 5)), s.money(5, 300)})
		}
		items := fixedItems(pairs...)

		pricing := computePricing(s, items)

		var sum float64
		for _, item := range items {
			sum += item.ItemTotal
		}
		require.InDelta(t, round2(sum), pricing.Subtotal, 1e-9, "seed %d", seed)
		require.InDelta(t, round2(pricing.Subtotal*pricing.TaxRate), pricing.TaxAmount, 1e-9, "seed %d", seed)

		// Free-shipping threshold is strict less-than.
		if pricing.Subtotal < freeShippingThreshold {
			require.GreaterOrEqual(t, pricing.ShippingCost, minShippingCost, "seed %d", seed)
			require.LessOrEqual(t, pricing.ShippingCost, maxShippingCost, "seed %d", seed)
		} else {
			require.Zero(t, pricing.ShippingCost, "seed %d", seed)
		}

		require.GreaterOrEqual(t, pricing.DiscountAmount, 0.0, "seed %d", seed)
		require.LessOrEqual(t, pricing.DiscountAmount, round2(pricing.Subtotal*maxDiscountShare), "seed %d", seed)

		// The stored components must reproduce the stored total exactly.
		require.InDelta(t,
			round2(pricing.Subtotal+pricing.TaxAmount+pricing.ShippingCost-pricing.DiscountAmount),
			pricing.Total, 1e-9, "seed %d", seed)

		require.GreaterOrEqual(t, pricing.TaxRate, minTaxRate, "seed %d", seed)
		require.LessOrEqual(t, pricing.TaxRate, maxTaxRate, "seed %d", seed)
	}
}

func TestComputePricingComponentsAreRounded(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		s := newSampler(seed)
		items := fixedItems([2]float64{float64(s.intBetween(1, 5)), s.money(5, 300)})

		pricing := computePricing(s, items)
		require.Equal(t, round2(pricing.Subtotal), pricing.Subtotal)
		require.Equal(t, round2(pricing.TaxAmount), pricing.TaxAmount)
		require.Equal(t, round2(pricing.ShippingCost), pricing.ShippingCost)
		require.Equal(t, round2(pricing.DiscountAmount), pricing.DiscountAmount)
		require.Equal(t, round2(pricing.Total), pricing.Total)
	}
}
