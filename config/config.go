// Package config provides configuration for the gateway.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the gateway configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Nimbus backend
	NimbusURL   string
	NimbusToken string

	// Session verification
	SessionSecret string

	// Chat history database
	DatabaseURL string

	// Logging
	LogLevel string
}

// Development fallbacks. NIMBUS_API_TOKEN and SESSION_SECRET must be set in
// any real deployment; the defaults exist only so a local checkout runs.
const (
	defaultNimbusURL     = "http://127.0.0.1:18785"
	defaultNimbusToken   = "oc-nimbus-2026"
	defaultSessionSecret = "nimbus-dev-secret"
)

// Load loads configuration from environment variables. A .env file in the
// working directory is read first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:      getEnvInt("HTTP_PORT", 8080),
		NimbusURL:     getEnv("NIMBUS_API_URL", defaultNimbusURL),
		NimbusToken:   getEnv("NIMBUS_API_TOKEN", defaultNimbusToken),
		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
		DatabaseURL:   getEnv("DATABASE_URL", "file:studio.db?cache=shared&mode=rwc"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

// InsecureDefaults lists credentials still set to their development
// fallback. Callers log these at startup; they are never fixed silently.
func (c *Config) InsecureDefaults() []string {
	var insecure []string
	if c.NimbusToken == defaultNimbusToken {
		insecure = append(insecure, "NIMBUS_API_TOKEN")
	}
	if c.SessionSecret == defaultSessionSecret {
		insecure = append(insecure, "SESSION_SECRET")
	}
	return insecure
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
