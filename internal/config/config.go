package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultWeeks is the planning horizon used when the config names none.
	DefaultWeeks = 12

	dateLayout = "2006-01-02"
)

// RecurrenceRule defines a repeating calendar rule, expanded into concrete
// dates over the scheduling horizon.
type RecurrenceRule struct {
	RRule string `yaml:"rrule" validate:"required"`
	Label string `yaml:"label,omitempty"`
}

// SlackConfig holds the settings used when posting week notices
type SlackConfig struct {
	Channel  string `yaml:"channel,omitempty"`
	BotToken string `yaml:"-" env:"SLACK_BOT_TOKEN"`
}

// Config represents the application configuration
type Config struct {
	DataDir       string           `yaml:"dataDir,omitempty" env:"ONCALL_DATA_DIR"`
	Weeks         int              `yaml:"weeks,omitempty" env:"ONCALL_WEEKS" validate:"omitempty,min=1"`
	StartDate     string           `yaml:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	HolidayRules  []RecurrenceRule `yaml:"holidayRules,omitempty" validate:"dive"`
	PatchingRules []RecurrenceRule `yaml:"patchingRules,omitempty" validate:"dive"`
	Slack         SlackConfig      `yaml:"slack,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from oncall_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// Environment variables override file values, and defaults fill whatever is
// still unset.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each recurrence rule
	for i, rule := range cfg.HolidayRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}
	}
	for i, rule := range cfg.PatchingRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in patchingRules[%d]: %w", i, err)
		}
	}

	return nil
}

// EffectiveStartDate returns the configured start date, or fallback when the
// config names none.
func (c *Config) EffectiveStartDate(fallback time.Time) time.Time {
	if c.StartDate == "" {
		return fallback
	}
	parsed, err := time.Parse(dateLayout, c.StartDate)
	if err != nil {
		return fallback
	}
	return parsed
}

func applyDefaults(cfg *Config) {
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	if cfg.Weeks == 0 {
		cfg.Weeks = DefaultWeeks
	}
}

// findConfigFile searches for oncall_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "oncall_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
