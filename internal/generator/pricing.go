package generator

import "github.com/Sai-Sandilya/DBA-sub001/internal/domain"

// Order pricing rules. The shipping waiver is strict less-than: an order
// whose subtotal is exactly 100 ships free.
const (
	freeShippingThreshold = 100.0
	minShippingCost       = 5.0
	maxShippingCost       = 25.0
	minTaxRate            = 0.05
	maxTaxRate            = 0.10
	discountChance        = 0.30
	maxDiscountShare      = 0.20
)

// computePricing derives the monetary aggregate of an order from its
// already-built items. Each component is rounded once; the total is then
// computed from the rounded components and rounded once itself, so
// recomputing from the stored fields reproduces the stored total exactly.
func computePricing(s sampler, items []domain.OrderItem) domain.OrderPricing {
	var sum float64
	for _, item := range items {
		sum += item.ItemTotal
	}
	subtotal := round2(sum)

	taxRate := round2(s.floatBetween(minTaxRate, maxTaxRate))
	taxAmount := round2(subtotal * taxRate)

	shipping := 0.0
	if subtotal < freeShippingThreshold {
		shipping = s.money(minShippingCost, maxShippingCost)
	}

	discount := 0.0
	if s.chance(discountChance) {
		discount = round2(s.r.Float64() * subtotal * maxDiscountShare)
	}

	return domain.OrderPricing{
		Subtotal:       subtotal,
		TaxRate:        taxRate,
		TaxAmount:      taxAmount,
		ShippingCost:   shipping,
		DiscountAmount: discount,
		Total:          round2(subtotal + taxAmount + shipping - discount),
		Currency:       "USD",
	}
}
