package sink

import "github.com/Sai-Sandilya/DBA-sub001/internal/domain"

// IndexSpec declares one secondary index as dot-notation field paths.
// Multi-key behaviour on array fields (tags, interests, categories) is
// implicit in MongoDB; the plan just names the paths.
type IndexSpec struct {
	Collection string
	Keys       []string
	Unique     bool
}

// DefaultIndexPlan aligns secondary indexes to the anticipated query
// vocabulary: equality on categories/statuses, ranges on prices and
// timestamps, membership on set-valued fields, uniqueness on natural
// keys. Applied only by the live sink, after all bulk writes.
func DefaultIndexPlan() []IndexSpec {
	return []IndexSpec{
		{Collection: domain.CollectionUsers, Keys: []string{"email"}, Unique: true},
		{Collection: domain.CollectionUsers, Keys: []string{"username"}, Unique: true},
		{Collection: domain.CollectionUsers, Keys: []string{"profile.location.city"}},
		{Collection: domain.CollectionUsers, Keys: []string{"profile.interests"}},
		{Collection: domain.CollectionUsers, Keys: []string{"tags"}},
		{Collection: domain.CollectionUsers, Keys: []string{"created_at"}},

		{Collection: domain.CollectionProducts, Keys: []string{"sku"}, Unique: true},
		{Collection: domain.CollectionProducts, Keys: []string{"category", "brand"}},
		{Collection: domain.CollectionProducts, Keys: []string{"pricing.base_price"}},
		{Collection: domain.CollectionProducts, Keys: []string{"tags"}},
		{Collection: domain.CollectionProducts, Keys: []string{"ratings.user_id"}},

		{Collection: domain.CollectionOrders, Keys: []string{"customer_id"}},
		{Collection: domain.CollectionOrders, Keys: []string{"status"}},
		{Collection: domain.CollectionOrders, Keys: []string{"items.product_id"}},
		{Collection: domain.CollectionOrders, Keys: []string{"pricing.total"}},
		{Collection: domain.CollectionOrders, Keys: []string{"created_at"}},

		{Collection: domain.CollectionEvents, Keys: []string{"timestamp"}},
		{Collection: domain.CollectionEvents, Keys: []string{"event_type", "timestamp"}},
		{Collection: domain.CollectionEvents, Keys: []string{"session_id"}},
		{Collection: domain.CollectionEvents, Keys: []string{"user_id"}},

		{Collection: domain.CollectionContent, Keys: []string{"slug"}, Unique: true},
		{Collection: domain.CollectionContent, Keys: []string{"content_type", "status"}},
		{Collection: domain.CollectionContent, Keys: []string{"author.id"}},
		{Collection: domain.CollectionContent, Keys: []string{"categories"}},
		{Collection: domain.CollectionContent, Keys: []string{"tags"}},
		{Collection: domain.CollectionContent, Keys: []string{"publishing.published_at"}},
	}
}

// ExampleQuery documents one query shape a consumer is expected to run.
// The file sink serializes these into mongodb_queries.json; nothing in
// the generator consumes them.
type ExampleQuery struct {
	Description string         `json:"description"`
	Filter      map[string]any `json:"filter"`
}

// ExampleQueries returns per-collection query shapes matching the index
// plan above.
func ExampleQueries() map[string][]ExampleQuery {
	return map[string][]ExampleQuery{
		domain.CollectionUsers: {
			{Description: "profiles in a city", Filter: map[string]any{"profile.location.city": "Berlin"}},
			{Description: "profiles sharing an interest", Filter: map[string]any{"profile.interests": "photography"}},
			{Description: "active premium profiles", Filter: map[string]any{"is_active": true, "tags": "premium"}},
		},
		domain.CollectionProducts: {
			{Description: "products by category and brand", Filter: map[string]any{"category": "electronics", "brand": "Acme"}},
			{Description: "products in a price band", Filter: map[string]any{"pricing.base_price": map[string]any{"$gte": 50, "$lte": 150}}},
			{Description: "products reviewed by a user", Filter: map[string]any{"ratings.user_id": "user_0001"}},
		},
		domain.CollectionOrders: {
			{Description: "orders of one customer", Filter: map[string]any{"customer_id": "user_0001"}},
			{Description: "orders containing a product", Filter: map[string]any{"items.product_id": "prod_000001"}},
			{Description: "high-value delivered orders", Filter: map[string]any{"status": "delivered", "pricing.total": map[string]any{"$gte": 200}}},
		},
		domain.CollectionEvents: {
			{Description: "purchases in a time window", Filter: map[string]any{"event_type": "purchase", "timestamp": map[string]any{"$gte": "2025-05-01T00:00:00Z"}}},
			{Description: "events of one session", Filter: map[string]any{"session_id": "<session uuid>"}},
			{Description: "events attributed to a user", Filter: map[string]any{"user_id": "user_0001"}},
		},
		domain.CollectionContent: {
			{Description: "published articles", Filter: map[string]any{"content_type": "article", "status": "published"}},
			{Description: "documents by author", Filter: map[string]any{"author.id": "auth_001"}},
			{Description: "documents in a category", Filter: map[string]any{"categories": "engineering"}},
		},
	}
}
