package domain

// Collection names, in the order collections are written to a sink.
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
	CollectionOrders   = "orders"
	CollectionEvents   = "analytics_events"
	CollectionContent  = "content"
)

// CollectionOrdering fixes the write order so runs are reproducible and
// referenced pools land before their dependents.
var CollectionOrdering = []string{
	CollectionUsers,
	CollectionProducts,
	CollectionOrders,
	CollectionEvents,
	CollectionContent,
}

// Collection pairs a collection name with its generated documents, in id
// order. Documents are opaque to sinks; a sink must deliver them without
// altering content.
type Collection struct {
	Name      string
	Documents []any
}
