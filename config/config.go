package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds process configuration. Everything comes from the
// environment, optionally via a .env file; there are no config files
// beyond that.
type Config struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
}

// Load reads .env if present and resolves configuration with defaults.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	return &Config{
		Port:           v.GetString("PORT"),
		GinMode:        v.GetString("GIN_MODE"),
		AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
	}
}

// splitOrigins parses the comma-separated origin list.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
