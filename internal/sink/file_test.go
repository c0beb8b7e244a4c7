package sink

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSinkWritesCollectionArrays(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileSink(dir)
	require.NoError(t, err)

	docs := []any{
		map[string]any{"_id": "user_0001", "username": "jane_doe_1"},
		map[string]any{"_id": "user_0002", "username": "omar_khan_2"},
	}
	n, err := fs.Write(context.Background(), "users", docs)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	raw, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "user_0001", decoded[0]["_id"])
	assert.Equal(t, "user_0002", decoded[1]["_id"])
}

func TestFileSinkFinalizeWritesManifestAndQueries(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileSink(dir)
	require.NoError(t, err)

	counts := map[string]int{"users": 2, "products": 3}
	require.NoError(t, fs.Finalize(context.Background(), NewSummary(counts, "test run")))

	raw, err := os.ReadFile(filepath.Join(dir, summaryFileName))
	require.NoError(t, err)

	var manifest Summary
	require.NoError(t, json.Unmarshal(raw, &manifest))
	assert.Equal(t, counts, manifest.Collections)
	assert.Equal(t, 5, manifest.TotalDocuments)
	assert.Equal(t, "test run", manifest.Description)
	assert.False(t, manifest.CreatedAt.IsZero())

	raw, err = os.ReadFile(filepath.Join(dir, queriesFileName))
	require.NoError(t, err)

	var queries map[string][]ExampleQuery
	require.NoError(t, json.Unmarshal(raw, &queries))
	for name, plan := range ExampleQueries() {
		require.Len(t, queries[name], len(plan), "collection %s", name)
	}
}

func TestFileSinkCreatesNestedOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	fs, err := NewFileSink(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, fs.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileSinkWriteReportsCollectionOnFailure(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileSink(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fs.Write(ctx, "orders", []any{map[string]any{"_id": "ord_000001"}})
	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "orders", writeErr.Collection)
}
