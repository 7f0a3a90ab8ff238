package config

import (
	"os"
	"strconv"

	"gridnav/internal/domain/models/navigation"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	TablePrefix string
	DatabaseURL string
	JWKSURL     string // Empty disables authenticated routes
	// Logging
	LogDir      string
	LogMaxFiles int
	// URL scheme
	HomeURL     string // Base URL share links are built against
	Org         string
	SingleOrg   string
	BaseDomain  string
	PathOnly    bool
	PluginURL   string
	StrictHosts bool // Reject requests whose host names no org and is not localhost
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix: getTablePrefix(env),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWKSURL:     getEnv("JWKS_URL", ""),
		LogDir:      getEnv("LOG_DIR", ""),
		LogMaxFiles: getEnvInt("LOG_MAX_FILES", 10),
		HomeURL:     getEnv("HOME_URL", "http://localhost:8484"),
		Org:         getEnv("GRIST_ORG", ""),
		SingleOrg:   getEnv("GRIST_SINGLE_ORG", ""),
		BaseDomain:  getEnv("BASE_DOMAIN", ""),
		PathOnly:    getEnv("PATH_ONLY", "false") == "true",
		PluginURL:   getEnv("PLUGIN_URL", ""),
		StrictHosts: getEnv("STRICT_HOSTS", "false") == "true",
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// OrgConfig returns the org settings handed to the URL codec. The current
// org is filled in per request.
func (c *Config) OrgConfig() navigation.OrgConfig {
	return navigation.OrgConfig{
		Org:        c.Org,
		SingleOrg:  c.SingleOrg,
		BaseDomain: c.BaseDomain,
		PathOnly:   c.PathOnly,
		PluginURL:  c.PluginURL,
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
