package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joeshaw/envdecode"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultDisplayLimit = 50
	defaultLogLevel     = "warn"
	defaultLogOutput    = "stderr"
)

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	// DisplayLimit is the largest result set printed in full; 0 hides every listing.
	DisplayLimit int    `yaml:"display_limit"`
	LogLevel     string `yaml:"log_level"`
	LogOutput    string `yaml:"log_output"`
	Color        string `yaml:"color"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	DisplayLimit *int   `yaml:"display_limit"`
	LogLevel     string `yaml:"log_level"`
	LogOutput    string `yaml:"log_output"`
	Color        string `yaml:"color"`
}

// envConfig lists the environment variables understood by the calculator.
type envConfig struct {
	DisplayLimit string `env:"COMBI_DISPLAY_LIMIT"`
	LogLevel     string `env:"COMBI_LOG_LEVEL"`
	LogOutput    string `env:"COMBI_LOG_OUTPUT"`
	Color        string `env:"COMBI_COLOR"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile   string
	DisplayLimit *int
	LogLevel     *string
	LogOutput    *string
	Color        *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	// YAML overrides the environment
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		DisplayLimit: defaultDisplayLimit,
		LogLevel:     defaultLogLevel,
		LogOutput:    defaultLogOutput,
		Color:        ColorAuto,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.DisplayLimit != nil {
		cfg.DisplayLimit = *yamlCfg.DisplayLimit
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogOutput != "" {
		cfg.LogOutput = yamlCfg.LogOutput
	}
	if yamlCfg.Color != "" {
		cfg.Color = yamlCfg.Color
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	var env envConfig
	if err := envdecode.Decode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return err
	}

	if raw := strings.TrimSpace(env.DisplayLimit); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("COMBI_DISPLAY_LIMIT: invalid integer %q", raw)
		}
		cfg.DisplayLimit = value
	}
	if level := strings.TrimSpace(env.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	if output := strings.TrimSpace(env.LogOutput); output != "" {
		cfg.LogOutput = output
	}
	if color := strings.TrimSpace(env.Color); color != "" {
		cfg.Color = color
	}
	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.DisplayLimit != nil {
		cfg.DisplayLimit = *overrides.DisplayLimit
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
	if overrides.LogOutput != nil && *overrides.LogOutput != "" {
		cfg.LogOutput = *overrides.LogOutput
	}
	if overrides.Color != nil && *overrides.Color != "" {
		cfg.Color = *overrides.Color
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.DisplayLimit < 0 {
		return fmt.Errorf("display limit must be >= 0, got %d", cfg.DisplayLimit)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if cfg.LogOutput == "" {
		return fmt.Errorf("log output cannot be empty")
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never, got %q", cfg.Color)
	}
	return nil
}
