// Package sink delivers generated collections to a destination: a live
// MongoDB database or a JSON file export. Both implementations share one
// contract so the generation phase never learns where documents go.
package sink

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrMissingURI indicates the live sink was selected without a MongoDB
// connection string.
var ErrMissingURI = errors.New("mongodb uri is required")

// Summary is the manifest of one completed run.
type Summary struct {
	Collections    map[string]int `json:"collections"`
	TotalDocuments int            `json:"total_documents"`
	CreatedAt      time.Time      `json:"created_at"`
	Description    string         `json:"description"`
}

// NewSummary builds a manifest from per-collection counts.
func NewSummary(counts map[string]int, description string) Summary {
	total := 0
	for _, n := range counts {
		total += n
	}
	return Summary{
		Collections:    counts,
		TotalDocuments: total,
		CreatedAt:      time.Now().UTC(),
		Description:    description,
	}
}

// Sink is the destination contract. Write delivers one collection as a
// single unit of work; a write failure is final for the run, never
// retried here. Finalize runs after every collection has been written
// (manifest for files, index plan for the live store). Close releases
// any underlying resources.
type Sink interface {
	Write(ctx context.Context, collection string, docs []any) (int, error)
	Finalize(ctx context.Context, summary Summary) error
	Close(ctx context.Context) error
}

// WriteError reports which collection failed, for the run summary.
type WriteError struct {
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write collection %q: %v", e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// MemorySink captures written documents in memory. It stands in for a
// real destination in unit tests.
type MemorySink struct {
	mu         sync.Mutex
	written    map[string][]any
	order      []string
	writeErr   error
	finalized  *Summary
	closeCalls int
}

// NewMemorySink instantiates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{written: make(map[string][]any)}
}

// WithWriteError configures the sink to fail every subsequent Write.
func (m *MemorySink) WithWriteError(err error) *MemorySink {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
	return m
}

func (m *MemorySink) Write(ctx context.Context, collection string, docs []any) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return 0, &WriteError{Collection: collection, Err: m.writeErr}
	}
	m.written[collection] = append(m.written[collection], docs...)
	m.order = append(m.order, collection)
	return len(docs), nil
}

func (m *MemorySink) Finalize(_ context.Context, summary Summary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finalized = &summary
	return nil
}

func (m *MemorySink) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalls++
	return nil
}

// Written returns the documents captured for a collection.
func (m *MemorySink) Written(collection string) []any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.written[collection]
}

// WriteOrder returns collection names in the order they were written.
func (m *MemorySink) WriteOrder() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

// Finalized returns the summary passed to Finalize, or nil.
func (m *MemorySink) Finalized() *Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.finalized
}
