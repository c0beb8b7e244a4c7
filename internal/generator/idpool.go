package generator

import (
	"fmt"
	"math/rand"
)

// Zero-padding widths per entity type. Events get the widest range since
// they dominate the document count.
const (
	profileIDWidth = 4
	productIDWidth = 6
	orderIDWidth   = 6
	contentIDWidth = 6
	eventIDWidth   = 10
)

// idPool holds the finalized identifiers of one entity type. Pools for
// independent entities are allocated in full before any dependent
// generator runs; dependents sample from the pool by index, so the pool
// size defines the valid reference range.
type idPool struct {
	prefix string
	ids    []string
}

// newIDPool allocates count identifiers of the form
// <prefix>_<zero-padded sequence>, starting at 1, monotonically
// increasing.
func newIDPool(prefix string, width, count int) *idPool {
	ids := make([]string, count)
	for i := 0; i < count; i++ {
		ids[i] = fmt.Sprintf("%s_%0*d", prefix, width, i+1)
	}
	return &idPool{prefix: prefix, ids: ids}
}

func (p *idPool) size() int { return len(p.ids) }

// at returns the identifier at a known index.
func (p *idPool) at(i int) string { return p.ids[i] }

// pick returns a uniformly random identifier from the pool. Callers must
// have validated the pool is non-empty (Config.Validate guards this).
func (p *idPool) pick(r *rand.Rand) string {
	return p.ids[r.Intn(len(p.ids))]
}
