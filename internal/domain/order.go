package domain

import "time"

// OrderItem is a single line of an order. ItemTotal is always
// round(Quantity × UnitPrice, 2), never an independent value.
type OrderItem struct {
	ProductID string            `json:"product_id" bson:"product_id"`
	Quantity  int               `json:"quantity" bson:"quantity"`
	UnitPrice float64           `json:"unit_price" bson:"unit_price"`
	ItemTotal float64           `json:"item_total" bson:"item_total"`
	Options   map[string]string `json:"options,omitempty" bson:"options,omitempty"`
}

// OrderPricing carries the derived monetary aggregate of an order.
// Total = round(Subtotal + TaxAmount + ShippingCost − DiscountAmount, 2),
// computed once from the already-rounded components so a verifier can
// reproduce it exactly from the stored fields.
type OrderPricing struct {
	Subtotal       float64 `json:"subtotal" bson:"subtotal"`
	TaxRate        float64 `json:"tax_rate" bson:"tax_rate"`
	TaxAmount      float64 `json:"tax_amount" bson:"tax_amount"`
	ShippingCost   float64 `json:"shipping_cost" bson:"shipping_cost"`
	DiscountAmount float64 `json:"discount_amount" bson:"discount_amount"`
	Total          float64 `json:"total" bson:"total"`
	Currency       string  `json:"currency" bson:"currency"`
}

// ShippingAddress is the destination of an order.
type ShippingAddress struct {
	Street     string `json:"street" bson:"street"`
	City       string `json:"city" bson:"city"`
	Country    string `json:"country" bson:"country"`
	PostalCode string `json:"postal_code" bson:"postal_code"`
}

// ShippingInfo nests the fulfilment details of an order.
type ShippingInfo struct {
	Address           ShippingAddress `json:"address" bson:"address"`
	Method            string          `json:"method" bson:"method"`
	TrackingNumber    *string         `json:"tracking_number,omitempty" bson:"tracking_number,omitempty"`
	EstimatedDelivery time.Time       `json:"estimated_delivery" bson:"estimated_delivery"`
}

// PaymentInfo nests how an order was paid.
type PaymentInfo struct {
	Method        string  `json:"method" bson:"method"`
	TransactionID string  `json:"transaction_id" bson:"transaction_id"`
	Status        string  `json:"status" bson:"status"`
	CardLastFour  *string `json:"card_last_four,omitempty" bson:"card_last_four,omitempty"`
}

// OrderMetadata records where an order came from.
type OrderMetadata struct {
	Source   string  `json:"source" bson:"source"`
	Campaign *string `json:"campaign,omitempty" bson:"campaign,omitempty"`
	Referrer *string `json:"referrer,omitempty" bson:"referrer,omitempty"`
}

// Order is the canonical document stored in the orders collection.
// CustomerID resolves into the profile pool and every item's ProductID
// resolves into the product pool.
type Order struct {
	ID         string        `json:"_id" bson:"_id"`
	CustomerID string        `json:"customer_id" bson:"customer_id"`
	Status     string        `json:"status" bson:"status"`
	Items      []OrderItem   `json:"items" bson:"items"`
	Pricing    OrderPricing  `json:"pricing" bson:"pricing"`
	Shipping   ShippingInfo  `json:"shipping" bson:"shipping"`
	Payment    PaymentInfo   `json:"payment" bson:"payment"`
	Metadata   OrderMetadata `json:"metadata" bson:"metadata"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}
