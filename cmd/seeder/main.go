package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sai-Sandilya/DBA-sub001/internal/config"
	"github.com/Sai-Sandilya/DBA-sub001/internal/generator"
	"github.com/Sai-Sandilya/DBA-sub001/internal/logging"
	"github.com/Sai-Sandilya/DBA-sub001/internal/sink"
)

func main() {
	var (
		preset    = flag.String("preset", "full", "scale preset: full (100:200:500:1000:150) or demo (50:100:200:300:75)")
		profiles  = flag.Int("profiles", -1, "number of user profiles (overrides preset)")
		products  = flag.Int("products", -1, "number of products (overrides preset)")
		orders    = flag.Int("orders", -1, "number of orders (overrides preset)")
		events    = flag.Int("events", -1, "number of analytics events (overrides preset)")
		content   = flag.Int("content", -1, "number of content documents (overrides preset)")
		seed      = flag.Int64("seed", 0, "random seed for deterministic generation (0 uses the preset seed)")
		sinkKind  = flag.String("sink", "file", "destination: file (JSON export) or mongo (live database)")
		outputDir = flag.String("output-dir", "", "export directory for the file sink (overrides OUTPUT_DIR)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "seeder")

	scale, err := resolveScale(*preset, *profiles, *products, *orders, *events, *content, *seed)
	if err != nil {
		logger.Error("invalid scale configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen, err := generator.New(scale)
	if err != nil {
		logger.Error("invalid scale configuration", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	dataset, err := gen.Generate(ctx)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("dataset generated", "duration", time.Since(start).String(), "seed", scale.Seed)

	dest, err := buildSink(ctx, logger, cfg, *sinkKind, *outputDir)
	if err != nil {
		logger.Error("failed to create sink", "sink", *sinkKind, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dest.Close(context.Background()); err != nil {
			logger.Warn("closing sink failed", "error", err)
		}
	}()

	counts := make(map[string]int)
	for _, coll := range dataset.Collections() {
		n, err := dest.Write(ctx, coll.Name, coll.Documents)
		if err != nil {
			var writeErr *sink.WriteError
			if errors.As(err, &writeErr) {
				logger.Error("collection write failed", "collection", writeErr.Collection, "error", writeErr.Err)
			} else {
				logger.Error("collection write failed", "collection", coll.Name, "error", err)
			}
			os.Exit(1)
		}
		counts[coll.Name] = n
		logger.Info("collection written", "collection", coll.Name, "documents", n)
	}

	summary := sink.NewSummary(counts, fmt.Sprintf("synthetic seed dataset (seed %d)", scale.Seed))
	if err := dest.Finalize(ctx, summary); err != nil {
		logger.Error("finalize failed", "error", err)
		os.Exit(1)
	}

	logger.Info("run complete",
		"total_documents", summary.TotalDocuments,
		"collections", len(counts),
		"duration", time.Since(start).String(),
	)
}

// resolveScale merges the preset with per-collection overrides.
func resolveScale(preset string, profiles, products, orders, events, content int, seed int64) (generator.Config, error) {
	var scale generator.Config
	switch preset {
	case "full":
		scale = generator.FullScale()
	case "demo":
		scale = generator.DemoScale()
	default:
		return generator.Config{}, fmt.Errorf("unknown preset %q (want full or demo)", preset)
	}

	if profiles >= 0 {
		scale.ProfileCount = profiles
	}
	if products >= 0 {
		scale.ProductCount = products
	}
	if orders >= 0 {
		scale.OrderCount = orders
	}
	if events >= 0 {
		scale.EventCount = events
	}
	if content >= 0 {
		scale.ContentCount = content
	}
	if seed != 0 {
		scale.Seed = seed
	}
	return scale, nil
}

func buildSink(ctx context.Context, logger *slog.Logger, cfg config.Config, kind, outputDir string) (sink.Sink, error) {
	switch kind {
	case "file":
		dir := cfg.Output.Dir
		if outputDir != "" {
			dir = outputDir
		}
		return sink.NewFileSink(dir)
	case "mongo":
		if cfg.Mongo.URI == "" {
			return nil, fmt.Errorf("%w: set MONGO_URI", sink.ErrMissingURI)
		}
		s, err := sink.NewMongoSink(ctx, sink.MongoOptions{
			URI:          cfg.Mongo.URI,
			Database:     cfg.Mongo.Database,
			WriteTimeout: cfg.Mongo.WriteTimeout,
		}, sink.DefaultIndexPlan(), logger)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to mongodb", "database", cfg.Mongo.Database)
		return s, nil
	default:
		return nil, fmt.Errorf("unknown sink %q (want file or mongo)", kind)
	}
}
