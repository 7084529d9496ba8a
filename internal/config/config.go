package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string
	AppEnv       string
	StorePath    string
	PollInterval time.Duration
}

const defaultPollInterval = 30 * time.Second

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:   os.Getenv("API_BASE_URL"),
		AppEnv:       os.Getenv("APP_ENV"),
		StorePath:    os.Getenv("STORE_PATH"),
		PollInterval: defaultPollInterval,
	}

	if raw := os.Getenv("POLL_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid POLL_INTERVAL %q: %v", raw, err)
		}
		cfg.PollInterval = d
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.StorePath == "" {
		cfg.StorePath = "storefront-state.json"
	}

	return cfg
}
