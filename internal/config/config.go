package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// DefaultConfigPath is looked up in the working directory when no --config
// flag is given.
const DefaultConfigPath = "mobileaudit.yml"

// Default values applied to settings left empty in the YAML file.
const (
	DefaultLogLevel = "INFO"
	DefaultThreads  = 1
	DefaultFormat   = "text"
)

type Config struct {
	Logger Logger `yaml:"logger"`
	Audit  Audit  `yaml:"audit"`
}

type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

type Audit struct {
	Threads int    `yaml:"threads"`
	Format  string `yaml:"format"`
}

// ValidateConfigPath checks that path exists and is a regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	// An empty file decodes to io.EOF and leaves data untouched.
	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// NewConfig loads configPath and fills unset values with defaults.
func NewConfig(configPath string) (*Config, error) {
	config := &Config{}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}
	config.applyDefaults()

	return config, nil
}

// Load resolves the configuration for a run. An explicit path must exist.
// Without one, DefaultConfigPath is used when present and built-in defaults
// otherwise.
func Load(configPath string) (*Config, error) {
	if configPath != "" {
		return NewConfig(configPath)
	}

	cfg, err := NewConfig(DefaultConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	c.Logger.Level = SetThen(c.Logger.Level, DefaultLogLevel)
	c.Audit.Threads = SetThen(c.Audit.Threads, DefaultThreads)
	c.Audit.Format = SetThen(c.Audit.Format, DefaultFormat)
}
