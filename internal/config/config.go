package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port          string `env:"MAITAI_PORT" envDefault:"8080"`
	DBPath        string `env:"MAITAI_DB_PATH" envDefault:"maitai.db"`
	AdminPassword string `env:"MAITAI_ADMIN_PASSWORD" envDefault:"maitai2025"`
	UploadDir     string `env:"MAITAI_UPLOAD_DIR" envDefault:"web/static/uploads"`
	LogLevel      string `env:"MAITAI_LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
