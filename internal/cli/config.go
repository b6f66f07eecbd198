package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vulnmgt/cvsskit/util"
)

// Config holds CLI defaults loadable from a YAML file.
type Config struct {
	Format        string `yaml:"format"`         // text or json
	ConvertTarget string `yaml:"convert_target"` // 3.1 or 4.0
}

var cfg Config

func initialize() {
	if configPath == "" {
		configPath = util.GetEnvDefault("CVSSKIT_CONFIG", "")
	}
	if configPath == "" {
		return
	}

	loaded, err := loadConfig(configPath)
	if err != nil {
		logger.Warnw("ignoring config file", "path", configPath, "error", err)
		return
	}
	cfg = *loaded
	logger.Infow("loaded config file", "path", configPath)
}

func loadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &c, nil
}
