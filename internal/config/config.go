package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIKey      string `json:"api_key"`
	LinkShareID string `json:"linkshare_id"`
	BaseURL     string `json:"base_url"`
}

// Load reads configuration from the environment, honoring a local .env file
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		APIKey:      os.Getenv("WALMART_API_KEY"),
		LinkShareID: os.Getenv("WALMART_LINKSHARE_ID"),
		BaseURL:     os.Getenv("WALMART_BASE_URL"),
	}

	return config, nil
}
