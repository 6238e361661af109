package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/aretw0/fasim/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given explicitly.
const DefaultPath = "fasim.yaml"

// EnvPrefix prefixes every environment override (e.g. FASIM_DELIMITER).
const EnvPrefix = "FASIM_"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the runtime settings of fasim.
type Config struct {
	Delimiter string       `yaml:"delimiter" mapstructure:"delimiter"`
	TrimSpace bool         `yaml:"trim_space" mapstructure:"trim_space"`
	LogLevel  string       `yaml:"log_level" mapstructure:"log_level"`
	Color     string       `yaml:"color" mapstructure:"color"`
	Server    ServerConfig `yaml:"server" mapstructure:"server"`
	MCP       MCPConfig    `yaml:"mcp" mapstructure:"mcp"`
	Redis     RedisConfig  `yaml:"redis" mapstructure:"redis"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// MCPConfig configures the MCP adapter.
type MCPConfig struct {
	Transport string `yaml:"transport" mapstructure:"transport"`
	Port      int    `yaml:"port" mapstructure:"port"`
}

// RedisConfig configures the Redis description loader.
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
	Prefix   string `yaml:"prefix" mapstructure:"prefix"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Delimiter: domain.DefaultDelimiter,
		LogLevel:  "info",
		Color:     ColorAuto,
		Server:    ServerConfig{Addr: ":8080"},
		MCP:       MCPConfig{Transport: "stdio", Port: 8081},
		Redis:     RedisConfig{Addr: "localhost:6379", Prefix: "fasim:description:"},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// FASIM_* environment overrides.
// A missing file is only an error when required is true.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never; got %q", c.Color)
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("unknown mcp transport %q", c.MCP.Transport)
	}
	return nil
}

func decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	str("DELIMITER", &cfg.Delimiter)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("COLOR", &cfg.Color)
	str("SERVER_ADDR", &cfg.Server.Addr)
	str("MCP_TRANSPORT", &cfg.MCP.Transport)
	str("REDIS_ADDR", &cfg.Redis.Addr)
	str("REDIS_PASSWORD", &cfg.Redis.Password)
	str("REDIS_PREFIX", &cfg.Redis.Prefix)

	if v, ok := lookup(EnvPrefix + "TRIM_SPACE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sTRIM_SPACE: %w", EnvPrefix, err)
		}
		cfg.TrimSpace = b
	}
	for key, dst := range map[string]*int{"MCP_PORT": &cfg.MCP.Port, "REDIS_DB": &cfg.Redis.DB} {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
			}
			*dst = n
		}
	}
	return nil
}
