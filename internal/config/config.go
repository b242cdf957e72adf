// Package config stores credentials and display preferences in a viper
// config file under the user's config directory, with LECTERN_* environment
// overrides for scripting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults for the display preferences.
const (
	DefaultLookaheadDays = 3
	DefaultExtraWeeks    = 1
	DefaultWeekStart     = "sunday"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Config is the stored client configuration: instance URL, access token,
// and how the assignment views are windowed.
type Config struct {
	v   *viper.Viper
	dir string
}

// Load reads the config file if one exists, applying defaults and env
// overrides. A missing file is not an error; the user just has not logged
// in yet.
func Load() (*Config, error) {
	dir := os.Getenv("LECTERN_CONFIG_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dir = filepath.Join(home, ".config", "lectern")
	}

	v := viper.New()
	v.SetDefault("lookahead_days", DefaultLookaheadDays)
	v.SetDefault("extra_weeks", DefaultExtraWeeks)
	v.SetDefault("week_start", DefaultWeekStart)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("LECTERN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &Config{v: v, dir: dir}, nil
}

// BaseURL returns the LMS instance URL, e.g. "https://school.instructure.com".
func (c *Config) BaseURL() string { return c.v.GetString("base_url") }

// Token returns the stored API access token.
func (c *Config) Token() string { return c.v.GetString("token") }

// IsAuthenticated reports whether both credentials are present.
func (c *Config) IsAuthenticated() bool {
	return c.Token() != "" && c.BaseURL() != ""
}

// LookaheadDays is the window for the "due soon" view.
func (c *Config) LookaheadDays() int {
	if d := c.v.GetInt("lookahead_days"); d > 0 {
		return d
	}
	return DefaultLookaheadDays
}

// ExtraWeeks is how many week groups to show beyond the current one.
func (c *Config) ExtraWeeks() int {
	if w := c.v.GetInt("extra_weeks"); w >= 0 {
		return w
	}
	return DefaultExtraWeeks
}

// WeekStart parses the configured week-start day name. Unknown names fall
// back to Sunday rather than failing a display command.
func (c *Config) WeekStart() time.Weekday {
	if d, ok := weekdays[strings.ToLower(c.v.GetString("week_start"))]; ok {
		return d
	}
	return time.Sunday
}

// Set records a value in memory; Save persists it.
func (c *Config) Set(key, value string) {
	c.v.Set(key, value)
}

// Save writes the configuration to disk, creating the directory on first use.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(c.dir, "config.yaml")
	if err := c.v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
