package sink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOptions configures the live sink.
type MongoOptions struct {
	URI          string
	Database     string
	WriteTimeout time.Duration
}

// MongoSink bulk-inserts each collection into a live MongoDB database
// and applies the index plan once every collection has been written.
type MongoSink struct {
	client       *mongo.Client
	db           *mongo.Database
	plan         []IndexSpec
	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewMongoSink connects to the database and verifies connectivity before
// any document is generated or written.
func NewMongoSink(ctx context.Context, opts MongoOptions, plan []IndexSpec, logger *slog.Logger) (*MongoSink, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}
	if opts.Database == "" {
		opts.Database = "seeddata"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoSink{
		client:       client,
		db:           client.Database(opts.Database),
		plan:         plan,
		writeTimeout: opts.WriteTimeout,
		logger:       logger,
	}, nil
}

// Write inserts one collection as a single ordered InsertMany. The whole
// collection is one unit of work: a failure aborts it and surfaces a
// WriteError naming the collection; nothing is retried or rolled back.
func (m *MongoSink) Write(ctx context.Context, collection string, docs []any) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	if m.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.writeTimeout)
		defer cancel()
	}

	res, err := m.db.Collection(collection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return 0, &WriteError{Collection: collection, Err: err}
	}
	return len(res.InsertedIDs), nil
}

// Finalize applies the index plan. Index failures degrade query
// performance but never data correctness, so they are logged and
// skipped rather than aborting the run.
func (m *MongoSink) Finalize(ctx context.Context, _ Summary) error {
	for _, spec := range m.plan {
		keys := make(bson.D, 0, len(spec.Keys))
		for _, path := range spec.Keys {
			keys = append(keys, bson.E{Key: path, Value: 1})
		}
		model := mongo.IndexModel{Keys: keys}
		if spec.Unique {
			model.Options = options.Index().SetUnique(true)
		}

		if _, err := m.db.Collection(spec.Collection).Indexes().CreateOne(ctx, model); err != nil {
			m.logger.Warn("index creation failed, queries will be degraded",
				"collection", spec.Collection, "keys", spec.Keys, "error", err)
		}
	}
	return nil
}

// Close disconnects from the database.
func (m *MongoSink) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
