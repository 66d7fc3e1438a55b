// Package config loads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const defaultActivityLimit = 9

// Config holds everything the application needs at startup.
type Config struct {
	// DBPath is the SQLite database file. KABINET_DB.
	DBPath string
	// OwnerID scopes every query to one practitioner account. KABINET_OWNER.
	OwnerID string
	// Locale is the BCP 47 tag used for alphabetic list sorting. KABINET_LOCALE.
	Locale string
	// ActivityLimit caps the dashboard activity feed. KABINET_ACTIVITY_LIMIT.
	ActivityLimit int
	// LogPath, when set, receives service telemetry. KABINET_LOG.
	LogPath string
}

// Load reads the configuration. A missing .env file is not an error; the
// environment always wins over file-provided values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:        getEnv("KABINET_DB", defaultDBPath()),
		OwnerID:       getEnv("KABINET_OWNER", "default"),
		Locale:        getEnv("KABINET_LOCALE", "ru"),
		ActivityLimit: getEnvInt("KABINET_ACTIVITY_LIMIT", defaultActivityLimit),
		LogPath:       os.Getenv("KABINET_LOG"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded values before anything opens the database.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DBPath, validation.Required),
		validation.Field(&c.OwnerID, validation.Required),
		validation.Field(&c.Locale, validation.Required, validation.By(validLocale)),
		validation.Field(&c.ActivityLimit, validation.Required, validation.Min(1)),
	)
}

// LanguageTag parses the configured locale. Validate has already checked
// that the tag parses.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

func validLocale(value any) error {
	s, _ := value.(string)
	if _, err := language.Parse(s); err != nil {
		return fmt.Errorf("unrecognized locale %q", s)
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "kabinet.db"
	}
	return filepath.Join(home, ".kabinet", "kabinet.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
