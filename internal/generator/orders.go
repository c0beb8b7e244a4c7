package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Sai-Sandilya/DBA-sub001/internal/domain"
)

const (
	minOrderItems = 1
	maxOrderItems = 5

	trackingChance    = 0.70
	itemOptionsChance = 0.40
	giftWrapChance    = 0.20
	lastFourChance    = 0.60
	campaignChance    = 0.30
	referrerChance    = 0.40
)

func (g *Generator) generateOrders(ctx context.Context) ([]domain.Order, error) {
	orderPool := newIDPool("ord", orderIDWidth, g.cfg.OrderCount)
	orders := make([]domain.Order, 0, g.cfg.OrderCount)

	for i := 0; i < g.cfg.OrderCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items := g.buildOrderItems()
		pricing := computePricing(g.s, items)

		loc := g.vocab.cities[g.s.r.Intn(len(g.vocab.cities))]
		shipping := domain.ShippingInfo{
			Address: domain.ShippingAddress{
				Street:     fmt.Sprintf("%d %s", g.s.intBetween(1, 9999), g.s.pick(g.vocab.streets)),
				City:       loc.name,
				Country:    loc.country,
				PostalCode: fmt.Sprintf("%05d", g.s.intBetween(1000, 99999)),
			},
			Method:            g.s.pick(g.vocab.shippingMethods),
			EstimatedDelivery: baseTime.Add(time.Duration(g.s.intBetween(2, 14)) * 24 * time.Hour),
		}
		if g.s.chance(trackingChance) {
			shipping.TrackingNumber = ptr(fmt.Sprintf("TRK-%010d", g.s.r.Intn(1_000_000_000)))
		}

		payMethod := g.s.pick(g.vocab.paymentMethods)
		payment := domain.PaymentInfo{
			Method:        payMethod,
			TransactionID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("txn-%d-%d", g.cfg.Seed, i))).String(),
			Status:        g.s.pick(g.vocab.paymentStatuses),
		}
		// Last-four only makes sense for card payments.
		if (payMethod == "credit_card" || payMethod == "debit_card") && g.s.chance(lastFourChance) {
			payment.CardLastFour = ptr(fmt.Sprintf("%04d", g.s.r.Intn(10000)))
		}

		metadata := domain.OrderMetadata{Source: g.s.pick(g.vocab.orderSources)}
		if g.s.chance(campaignChance) {
			metadata.Campaign = ptr(g.s.pick(g.vocab.campaigns))
		}
		if g.s.chance(referrerChance) {
			metadata.Referrer = ptr(g.s.pick(g.vocab.referrers))
		}

		createdAt := baseTime.Add(-time.Duration(g.s.intBetween(1, 90*24)) * time.Hour)
		orders = append(orders, domain.Order{
			ID:         orderPool.at(i),
			CustomerID: g.profilePool.pick(g.s.r),
			Status:     g.s.pick(g.vocab.orderStatuses),
			Items:      items,
			Pricing:    pricing,
			Shipping:   shipping,
			Payment:    payment,
			Metadata:   metadata,
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt.Add(time.Duration(g.s.intBetween(1, 72)) * time.Hour),
		})
	}

	return orders, nil
}

func (g *Generator) buildOrderItems() []domain.OrderItem {
	count := g.s.intBetween(minOrderItems, maxOrderItems)
	items := make([]domain.OrderItem, 0, count)
	for i := 0; i < count; i++ {
		quantity := g.s.intBetween(1, 5)
		unitPrice := g.s.money(5, 300)
		item := domain.OrderItem{
			ProductID: g.productPool.pick(g.s.r),
			Quantity:  quantity,
			UnitPrice: unitPrice,
			ItemTotal: round2(float64(quantity) * unitPrice),
		}
		if g.s.chance(itemOptionsChance) {
			item.Options = map[string]string{"color": g.s.pick(g.vocab.colors)}
			if g.s.chance(giftWrapChance) {
				item.Options["gift_wrap"] = "yes"
			}
		}
		items = append(items, item)
	}
	return items
}
