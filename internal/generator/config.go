package generator

import (
	"errors"
	"fmt"
)

// Config drives the synthetic dataset generator. Counts control the
// cardinality of each collection; Seed makes a run reproducible.
type Config struct {
	ProfileCount int
	ProductCount int
	OrderCount   int
	EventCount   int
	ContentCount int
	Seed         int64
}

// FullScale returns the full-size preset (100:200:500:1000:150).
func FullScale() Config {
	return Config{
		ProfileCount: 100,
		ProductCount: 200,
		OrderCount:   500,
		EventCount:   1000,
		ContentCount: 150,
		Seed:         42,
	}
}

// DemoScale returns the reduced preset (50:100:200:300:75) for quick
// local runs.
func DemoScale() Config {
	return Config{
		ProfileCount: 50,
		ProductCount: 100,
		OrderCount:   200,
		EventCount:   300,
		ContentCount: 75,
		Seed:         42,
	}
}

// ErrEmptyReferencePool indicates a dependent collection was requested
// while a pool it samples references from would be empty.
var ErrEmptyReferencePool = errors.New("empty reference pool")

// Validate rejects configurations that would leave a dependent generator
// without a referenceable pool. It runs before any document is built, so
// the failure surfaces before any write occurs.
func (c Config) Validate() error {
	if c.ProfileCount < 0 || c.ProductCount < 0 || c.OrderCount < 0 || c.EventCount < 0 || c.ContentCount < 0 {
		return fmt.Errorf("collection counts must be non-negative: %+v", c)
	}
	if c.ProductCount > 0 && c.ProfileCount == 0 {
		return fmt.Errorf("%w: product ratings reference user profiles, but profile_count is 0", ErrEmptyReferencePool)
	}
	if c.OrderCount > 0 {
		if c.ProfileCount == 0 {
			return fmt.Errorf("%w: orders reference user profiles, but profile_count is 0", ErrEmptyReferencePool)
		}
		if c.ProductCount == 0 {
			return fmt.Errorf("%w: order items reference products, but product_count is 0", ErrEmptyReferencePool)
		}
	}
	return nil
}
