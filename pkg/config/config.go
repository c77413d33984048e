package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the program configuration, read from YAML.
type Config struct {
	Data struct {
		Path             string `yaml:"path"`
		ExpectedRows     int    `yaml:"expected_rows"`
		ExpectedFeatures int    `yaml:"expected_features"`
	} `yaml:"data"`
	Log Log `yaml:"log"`
}

// Log configures the logger. An empty File logs to stderr.
type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default points at data/heart.csv and derives the shape from the file.
func Default() *Config {
	var c Config
	c.Data.Path = "data/heart.csv"
	c.Log.Level = "info"
	c.Log.MaxSizeMB = 10
	c.Log.MaxBackups = 3
	return &c
}

// Load reads path over the defaults. A missing file yields Default().
func Load(path string) (*Config, error) {
	config := Default()

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(config); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects values the loader cannot use.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return errors.New("data.path is required")
	}
	if c.Data.ExpectedRows < 0 || c.Data.ExpectedFeatures < 0 {
		return errors.Errorf("expected shape (%d, %d) must not be negative", c.Data.ExpectedRows, c.Data.ExpectedFeatures)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
