// Package config loads process configuration from environment variables
// with defaults. Generation scale is controlled by CLI flags, not here;
// this covers the run's surroundings: destination, output, logging.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates process configuration values.
type Config struct {
	Mongo   MongoConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// MongoConfig describes connectivity to the live document store. URI is
// only required when the live sink is selected.
type MongoConfig struct {
	URI          string        `env:"MONGO_URI" env-default:""`
	Database     string        `env:"MONGO_DATABASE" env-default:"seeddata"`
	WriteTimeout time.Duration `env:"MONGO_WRITE_TIMEOUT" env-default:"30s"`
}

// OutputConfig governs the file sink.
type OutputConfig struct {
	Dir string `env:"OUTPUT_DIR" env-default:"seed-data"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `env:"LOG_LEVEL" env-default:"info"`
	Format        string `env:"LOG_FORMAT" env-default:"text"` // text|json
	IncludeCaller bool   `env:"LOG_INCLUDE_CALLER" env-default:"false"`
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment config: %w", err)
	}
	return cfg, nil
}
