package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/joho/godotenv"
)

// Config holds the client and dev server settings.
type Config struct {
	APIURL      string
	StateDir    string
	HTTPTimeout time.Duration

	// Report submission timings
	StepInterval time.Duration
	SettleDelay  time.Duration
	NoticeTTL    time.Duration

	FontPath string
	LogLevel string

	// Dev server
	Port          string
	DatabaseURL   string
	MigrationsDir string
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not read .env file, using process environment")
	}

	return &Config{
		APIURL:       strings.TrimRight(getEnv("MEDIGUARD_API_URL", "http://localhost:8000"), "/"),
		StateDir:     getEnv("MEDIGUARD_STATE_DIR", defaultStateDir()),
		HTTPTimeout:  time.Duration(getInt("MEDIGUARD_HTTP_TIMEOUT_SECONDS", 60)) * time.Second,
		StepInterval: time.Duration(getInt("MEDIGUARD_STEP_INTERVAL_MS", 1500)) * time.Millisecond,
		SettleDelay:  time.Duration(getInt("MEDIGUARD_SETTLE_DELAY_MS", 1000)) * time.Millisecond,
		NoticeTTL:    time.Duration(getInt("MEDIGUARD_NOTICE_MS", 3000)) * time.Millisecond,
		FontPath:     getEnv("MEDIGUARD_FONT_PATH", ""),
		LogLevel:     getEnv("MEDIGUARD_LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8000"),

		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MigrationsDir: getEnv("MEDIGUARD_MIGRATIONS_DIR", "migrations"),
	}
}

// SetupLogging installs h as the apex/log handler at the configured level.
// An unknown level falls back to info.
func (c *Config) SetupLogging(h log.Handler) {
	log.SetHandler(h)
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithField("level", c.LogLevel).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// StatePath is the file backing the persisted client state.
func (c *Config) StatePath() string {
	return filepath.Join(c.StateDir, "state.json")
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mediguard"
	}
	return filepath.Join(home, ".mediguard")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.WithFields(log.Fields{"key": key, "value": value}).Warn("invalid integer setting, using default")
		return fallback
	}
	return n
}
