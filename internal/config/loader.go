package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/example/trip-planner/internal/theme"
)

// Config captures environment driven configuration values for the trip
// planner runtime.
type Config struct {
	SQLiteDSN     string
	SessionSecret string
	SessionTTL    time.Duration
	DefaultTheme  theme.Preference
	LogLevel      string
}

// Load parses configuration values from the current process environment.
//
// Optional fields fall back to sensible defaults; all missing or invalid
// entries are collected and reported together so a broken environment shows
// every problem at once.
func Load() (Config, error) {
	cfg := Config{
		SQLiteDSN:    "file:tripplanner.db",
		SessionTTL:   30 * 24 * time.Hour,
		DefaultTheme: theme.Default,
		LogLevel:     "info",
	}

	missing := make([]string, 0, 1)
	invalid := make([]string, 0, 2)

	if dsn := strings.TrimSpace(os.Getenv("TRIPPLANNER_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if secret := strings.TrimSpace(os.Getenv("TRIPPLANNER_SESSION_SECRET")); secret == "" {
		missing = append(missing, "TRIPPLANNER_SESSION_SECRET")
	} else {
		cfg.SessionSecret = secret
	}

	if ttlValue := strings.TrimSpace(os.Getenv("TRIPPLANNER_SESSION_TTL")); ttlValue != "" {
		ttl, err := time.ParseDuration(ttlValue)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "TRIPPLANNER_SESSION_TTL")
		} else {
			cfg.SessionTTL = ttl
		}
	}

	if themeValue := strings.TrimSpace(os.Getenv("TRIPPLANNER_DEFAULT_THEME")); themeValue != "" {
		switch strings.ToLower(themeValue) {
		case string(theme.Light), string(theme.Dark):
			cfg.DefaultTheme = theme.Parse(themeValue)
		default:
			invalid = append(invalid, "TRIPPLANNER_DEFAULT_THEME")
		}
	}

	if levelValue := strings.TrimSpace(os.Getenv("TRIPPLANNER_LOG_LEVEL")); levelValue != "" {
		switch strings.ToLower(levelValue) {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = strings.ToLower(levelValue)
		default:
			invalid = append(invalid, "TRIPPLANNER_LOG_LEVEL")
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables are not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("environment variables have invalid values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
