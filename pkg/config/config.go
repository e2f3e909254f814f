package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// DataDir is where the embedded Badger store keeps its files.
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"your-secret-key"`
	JWTExpiry int64  `envconfig:"JWT_EXPIRY" default:"86400"` // seconds

	// SeedDemoData loads the demo accounts and conversation into an
	// empty store at startup.
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`
}

func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
