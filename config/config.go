package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
}

// Load reads .env (if present) and the process environment. Missing values
// fall back to development defaults; nothing here is fatal.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:    "8000",
		GinMode: "debug",
	}

	if port, ok := os.LookupEnv("PORT"); ok {
		cfg.Port = port
	}
	if mode, ok := os.LookupEnv("GIN_MODE"); ok {
		cfg.GinMode = mode
	}
	if origins, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}
