package handlers

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"
)

// Output formats accepted by Render.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render prints the provider config for the configuration file without
// contacting AWS.
func Render(opts *Options, format string) error {
	desired, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	translator, err := opts.translator()
	if err != nil {
		return err
	}

	cfg, err := translator.Render(desired)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatJSON, "":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("unknown output format %q: must be %s or %s", format, FormatJSON, FormatYAML)
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err = stdout.Write(data)
	return err
}
