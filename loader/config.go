package loader

import (
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Config controls document loading
type Config struct {
	Strict      bool   `yaml:"strict"`      // reject documents producing duplicate canonical references
	MaxDepth    int    `yaml:"maxDepth"`    // member nesting limit
	ToolVersion string `yaml:"toolVersion"` // newest producer version the loader is known to read
}

// DefaultConfig returns default config
func DefaultConfig() *Config {
	return &Config{
		Strict:      true,
		MaxDepth:    64,
		ToolVersion: "7.52.0",
	}
}

// LoadConfig parses YAML config, unset fields keep their defaults
func LoadConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Errorf("failed to parse loader config: %w", err)
	}
	if config.MaxDepth <= 0 {
		return nil, errors.Errorf("invalid maxDepth: %d", config.MaxDepth)
	}
	return config, nil
}
