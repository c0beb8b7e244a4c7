package domain

import "time"

// ProductPricing groups the monetary attributes of a product.
type ProductPricing struct {
	BasePrice       float64 `json:"base_price" bson:"base_price"`
	Currency        string  `json:"currency" bson:"currency"`
	DiscountPercent float64 `json:"discount_percent" bson:"discount_percent"`
	TaxRate         float64 `json:"tax_rate" bson:"tax_rate"`
}

// Inventory tracks stock levels and warehouse placement.
type Inventory struct {
	Quantity   int      `json:"quantity" bson:"quantity"`
	Reserved   int      `json:"reserved" bson:"reserved"`
	Warehouses []string `json:"warehouses" bson:"warehouses"`
}

// Dimensions are the physical measurements of a product.
type Dimensions struct {
	Length float64 `json:"length" bson:"length"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Unit   string  `json:"unit" bson:"unit"`
}

// Specifications nests the physical description of a product.
type Specifications struct {
	Dimensions Dimensions `json:"dimensions" bson:"dimensions"`
	WeightKG   float64    `json:"weight_kg" bson:"weight_kg"`
	Materials  []string   `json:"materials" bson:"materials"`
}

// Variant is one purchasable variation of a product. Size draws from the
// clothing-size vocabulary only for clothing products; every other
// category carries the "standard" sentinel.
type Variant struct {
	Color      string  `json:"color" bson:"color"`
	Size       string  `json:"size" bson:"size"`
	PriceDelta float64 `json:"price_delta" bson:"price_delta"`
	Stock      int     `json:"stock" bson:"stock"`
}

// Rating is a customer review embedded in the product document. UserID
// always resolves into the generated profile pool.
type Rating struct {
	UserID  string    `json:"user_id" bson:"user_id"`
	Rating  int       `json:"rating" bson:"rating"`
	Comment string    `json:"comment" bson:"comment"`
	Date    time.Time `json:"date" bson:"date"`
}

// Product is the canonical document stored in the products collection.
type Product struct {
	ID             string         `json:"_id" bson:"_id"`
	SKU            string         `json:"sku" bson:"sku"`
	Name           string         `json:"name" bson:"name"`
	Description    string         `json:"description" bson:"description"`
	Category       string         `json:"category" bson:"category"`
	Brand          string         `json:"brand" bson:"brand"`
	Pricing        ProductPricing `json:"pricing" bson:"pricing"`
	Inventory      Inventory      `json:"inventory" bson:"inventory"`
	Specifications Specifications `json:"specifications" bson:"specifications"`
	Variants       []Variant      `json:"variants" bson:"variants"`
	Ratings        []Rating       `json:"ratings" bson:"ratings"`
	Tags           []string       `json:"tags" bson:"tags"`
	IsActive       bool           `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
}
