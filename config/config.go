package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration parameters read from environment variables.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	// ReadOnly serves the browse-only variant: query, sort, view and cite,
	// with every mutating route refused.
	ReadOnly bool `envconfig:"READ_ONLY" default:"false"`

	// FacetDatasetsAll prepends the "All" sentinel to the datasets facet.
	// Off by default; the filter control renders its own "All Datasets" entry.
	FacetDatasetsAll bool `envconfig:"FACET_DATASETS_ALL" default:"false"`

	// SeedFile overrides the bundled dataset with a JSON or YAML file.
	SeedFile string `envconfig:"SEED_FILE"`
}

// Load reads the configuration from the environment, honoring an optional
// .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
