package config

import "os"

// Environment variables recognized by the CLI. The API URL mirrors the web
// client's build-time variable: deployments point the client at a backend
// without touching flags or files.
const (
	EnvAPIBaseURL   = "INKPRESS_API_URL"
	EnvDatabasePath = "INKPRESS_DB_PATH"
)

// parseEnv overlays Config with values from the environment. Unset variables
// leave the existing values untouched.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
}
