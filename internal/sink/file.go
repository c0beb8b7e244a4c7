package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

const (
	summaryFileName = "summary.json"
	queriesFileName = "mongodb_queries.json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileSink serializes each collection as an ordered JSON array to
// <collection>.json under one directory, then writes a summary manifest
// and an informational example-queries companion on Finalize.
type FileSink struct {
	dir string
}

// NewFileSink creates the output directory if needed.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &FileSink{dir: dir}, nil
}

// Dir returns the export directory.
func (f *FileSink) Dir() string { return f.dir }

func (f *FileSink) Write(ctx context.Context, collection string, docs []any) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, &WriteError{Collection: collection, Err: err}
	}
	path := filepath.Join(f.dir, collection+".json")
	if err := writeJSON(path, docs); err != nil {
		return 0, &WriteError{Collection: collection, Err: err}
	}
	return len(docs), nil
}

func (f *FileSink) Finalize(_ context.Context, summary Summary) error {
	if err := writeJSON(filepath.Join(f.dir, summaryFileName), summary); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := writeJSON(filepath.Join(f.dir, queriesFileName), ExampleQueries()); err != nil {
		return fmt.Errorf("write example queries: %w", err)
	}
	return nil
}

func (f *FileSink) Close(context.Context) error { return nil }

func writeJSON(path string, data any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode json for %s: %w", path, err)
	}
	return nil
}
