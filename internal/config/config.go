package config

import (
	"fmt"
	"os"
	"strings"

	infraconfig "dolarito-rates/internal/infrastructure/config"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	// LogFile is the rotated log file; empty disables file logging.
	LogFile  string `yaml:"log_file"`
	Port     string `yaml:"port"`
	Provider string `yaml:"provider"`
}

func Default() Config {
	return Config{
		Env:      infraconfig.DefaultEnv,
		LogLevel: infraconfig.DefaultLogLevel,
		LogFile:  infraconfig.DefaultLogFile,
		Port:     infraconfig.DefaultHTTPPort,
		Provider: infraconfig.DefaultProvider,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load applies defaults, then the YAML file at path (or CONFIG_FILE when path
// is empty), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func overrideWithEnv(cfg *Config) {
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Provider = getEnv("PROVIDER", cfg.Provider)
	// LOG_FILE= (set but empty) turns the file sink off.
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
}

func (c Config) Validate() error {
	switch c.Provider {
	case "dolarito", "fake":
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port is empty")
	}
	return nil
}
