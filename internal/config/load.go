package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/lvenv/internal/messages"
	"github.com/conn-castle/lvenv/internal/templates"
)

// ErrConfigValidation wraps config validation failures, as opposed to TOML
// syntax or filesystem errors.
var ErrConfigValidation = errors.New(messages.ConfigValidationFailed)

const templateSource = "template config.toml"

// Default returns the embedded default config.
func Default() (*Config, error) {
	data, err := defaultTemplate()
	if err != nil {
		return nil, err
	}
	return Parse(data, templateSource)
}

func defaultTemplate() ([]byte, error) {
	return templates.Read(configFileName)
}

// Load reads the config at path. A missing file yields Default unless
// explicit is set, in which case it is an error.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
			}
			return Default()
		}
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses and validates config TOML data. source names the data in errors.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	if err := cfg.expand(source); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

func (c *Config) expand(source string) error {
	if c.Python.Interpreter == "" {
		return nil
	}
	expanded, err := homedir.Expand(c.Python.Interpreter)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandPathFmt, source, c.Python.Interpreter, err)
	}
	c.Python.Interpreter = expanded
	return nil
}

func (c *Config) applyDefaults() {
	if c.Python.Interpreter == "" {
		c.Python.Interpreter = messages.ConfigDefaultInterpreterName
	}
	if c.Python.Name == "" {
		c.Python.Name = messages.ConfigDefaultInterpreterName
	}
}
