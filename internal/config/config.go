package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all service settings, populated from environment variables.
type AppConfig struct {
	Host string
	Port string

	// Input CSV paths, resolved relative to the working directory.
	HWIPath          string
	HeatwaveDaysPath string

	// ReloadInterval controls the optional periodic dataset reload.
	// Zero disables reloading; the startup snapshot then lives for the
	// whole process.
	ReloadInterval time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		Host:             os.Getenv("HOST"),
		Port:             getenvDefault("PORT", "8050"),
		HWIPath:          getenvDefault("HWI_CSV_PATH", "data/LV_average_HWI.csv"),
		HeatwaveDaysPath: getenvDefault("HW_DAYS_CSV_PATH", "data/LV_average_HWdays.csv"),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		LogFormat:        getenvDefault("LOG_FORMAT", "text"),
	}

	reloadStr := getenvDefault("RELOAD_INTERVAL", "0")
	reload, err := time.ParseDuration(reloadStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RELOAD_INTERVAL: %w", err)
	}
	if reload < 0 {
		return nil, fmt.Errorf("invalid RELOAD_INTERVAL: must not be negative")
	}
	cfg.ReloadInterval = reload

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
