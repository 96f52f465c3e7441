package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
)

// Config holds the CLI settings. Values come from the optional JSON config
// file first, then from the environment, and finally from flags.
type Config struct {
	DatabasePath string   `json:"database_path" env:"GEOIP_DB_PATH"`
	Language     string   `json:"language" env:"GEOIP_LANGUAGE"`
	LogLevel     string   `json:"log_level" env:"GEOIP_LOG_LEVEL"`
	DNSServers   []string `json:"dns_servers" env:"GEOIP_DNS_SERVERS" envSeparator:","`
}

func defaultConfig() Config {
	return Config{
		DatabasePath: "geolite/GeoLite2-City.mmdb",
		Language:     "en",
		LogLevel:     "info",
	}
}

// ReadConfig loads the JSON file at path over the defaults. An empty path
// skips the file.
func ReadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if len(path) > 0 {
		f, err := os.ReadFile(path)

		if err != nil {
			return nil, err
		}

		if err = json.Unmarshal(f, &config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	return &config, nil
}
