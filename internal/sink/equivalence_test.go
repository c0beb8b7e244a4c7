package sink

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sai-Sandilya/DBA-sub001/internal/generator"
)

// A fixed seed written through the file sink and through an alternate
// sink must yield structurally identical documents; only the destination
// differs. The memory sink stands in for the live store here.
func TestSinkEquivalenceWithFixedSeed(t *testing.T) {
	cfg := generator.DemoScale()
	cfg.Seed = 777

	gen, err := generator.New(cfg)
	require.NoError(t, err)
	dataset, err := gen.Generate(context.Background())
	require.NoError(t, err)

	dir := t.TempDir()
	fileSink, err := NewFileSink(dir)
	require.NoError(t, err)
	memSink := NewMemorySink()

	ctx := context.Background()
	for _, coll := range dataset.Collections() {
		_, err := fileSink.Write(ctx, coll.Name, coll.Documents)
		require.NoError(t, err)
		_, err = memSink.Write(ctx, coll.Name, coll.Documents)
		require.NoError(t, err)
	}

	for _, coll := range dataset.Collections() {
		raw, err := os.ReadFile(filepath.Join(dir, coll.Name+".json"))
		require.NoError(t, err)

		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		require.NoError(t, encoder.Encode(memSink.Written(coll.Name)))

		require.Equal(t, buf.String(), string(raw), "collection %s diverged between sinks", coll.Name)
	}
}
