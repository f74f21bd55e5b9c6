// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/task"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Filter   FilterConfig   `toml:"filter"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// CalendarConfig holds month grid settings.
type CalendarConfig struct {
	WeekStart       string `toml:"week_start"`       // "sunday" or "monday"
	MaxSlots        int    `toml:"max_slots"`        // bar lanes per week, 0 = unbounded
	DefaultCategory string `toml:"default_category"` // preselected in the task form
}

// FilterConfig holds the initial board filter.
type FilterConfig struct {
	WithinWeeks int `toml:"within_weeks"` // 0 disables the time window
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			WeekStart:       "sunday",
			MaxSlots:        3,
			DefaultCategory: string(task.CategoryWork),
		},
		Filter: FilterConfig{
			WithinWeeks: 0,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return "dulcinea.db"
	}
	return filepath.Join(home, ".local", "share", "dulcinea", "dulcinea.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "dulcinea", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DULCINEA_WEEK_START"); v != "" {
		cfg.Calendar.WeekStart = v
	}
	if v := os.Getenv("DULCINEA_MAX_SLOTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DULCINEA_MAX_SLOTS: %w", err)
		}
		cfg.Calendar.MaxSlots = n
	}
	if v := os.Getenv("DULCINEA_DEFAULT_CATEGORY"); v != "" {
		cfg.Calendar.DefaultCategory = v
	}
	if v := os.Getenv("DULCINEA_WITHIN_WEEKS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DULCINEA_WITHIN_WEEKS: %w", err)
		}
		cfg.Filter.WithinWeeks = n
	}
	if v := os.Getenv("DULCINEA_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("DULCINEA_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	ws, err := dateutil.ParseWeekday(c.Calendar.WeekStart)
	if err != nil {
		return fmt.Errorf("week_start: %w", err)
	}
	if ws != time.Sunday && ws != time.Monday {
		return fmt.Errorf("week_start must be sunday or monday, got %q", c.Calendar.WeekStart)
	}
	if c.Calendar.MaxSlots < 0 {
		return errors.New("max_slots must not be negative")
	}
	if _, err := task.ParseCategory(c.Calendar.DefaultCategory); err != nil {
		return fmt.Errorf("default_category: %w", err)
	}
	if c.Filter.WithinWeeks < 0 {
		return errors.New("within_weeks must not be negative")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// WeekStartDay returns the configured first day of the week.
// Invalid values fall back to Sunday; Validate reports them.
func (c *Config) WeekStartDay() time.Weekday {
	ws, err := dateutil.ParseWeekday(c.Calendar.WeekStart)
	if err != nil {
		return time.Sunday
	}
	return ws
}

// Category returns the configured default task category.
func (c *Config) Category() task.Category {
	cat, err := task.ParseCategory(c.Calendar.DefaultCategory)
	if err != nil {
		return task.CategoryWork
	}
	return cat
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return strings.TrimRight(string(data), "\n")
}
