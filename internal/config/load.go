package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the default configuration filename.
const DefaultConfigFilename = "cfdistro.yaml"

// Load reads, decodes and validates a configuration file.
func Load(path string) (*Desired, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes decodes and validates a YAML configuration.
func LoadFromBytes(data []byte) (*Desired, error) {
	d, err := LoadFromBytesWithoutValidation(data)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return d, nil
}

// LoadFromBytesWithoutValidation decodes a YAML configuration without validating it.
func LoadFromBytesWithoutValidation(data []byte) (*Desired, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return Decode(raw)
}

// Decode converts a plain keyed record, such as module parameters, into a Desired config.
// Keys use the snake_case field names; unknown keys are rejected. Decode does not validate.
func Decode(params map[string]interface{}) (*Desired, error) {
	var d Desired
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &d,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(params); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &d, nil
}

// Save writes a configuration to a YAML file. Unset fields are omitted.
func Save(d *Desired, path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// FindConfigFile looks for cfdistro.yaml in the current directory and its parents.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("config file %s not found", DefaultConfigFilename)
}
