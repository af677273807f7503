// Package config loads the optional .respsync.yaml file. The raw document is
// schema-validated before binding, the same way the api document is vetted
// before compilation elsewhere in this toolchain.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/masnyjimmy/respsync/reconcile"
	"github.com/masnyjimmy/respsync/validation"
)

const DefaultFile = ".respsync.yaml"

type Config struct {
	Root          string            `yaml:"root"`
	HandlerSuffix string            `yaml:"handlerSuffix"`
	ResponseType  string            `yaml:"responseType"`
	Placeholder   string            `yaml:"placeholder"`
	Helpers       map[string]string `yaml:"helpers,omitempty"`
}

func Default() *Config {
	return &Config{
		Root:          ".",
		HandlerSuffix: "_handler.go",
		ResponseType:  "respond.Response",
	}
}

// Load reads and validates a config file. A missing file is not an error;
// defaults apply.
func Load(path string) (*Config, error) {
	bytes, err := os.ReadFile(path)

	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config %v: %w", path, err)
	}

	var object any

	if err := yaml.Unmarshal(bytes, &object); err != nil {
		return nil, fmt.Errorf("unable to parse config %v: %w", path, err)
	}

	if err := validation.ValidateConfig(object); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", path, err)
	}

	out := Default()

	if err := yaml.Unmarshal(bytes, out); err != nil {
		return nil, fmt.Errorf("unable to parse config %v: %w", path, err)
	}

	if out.Root == "" {
		out.Root = "."
	}
	if out.HandlerSuffix == "" {
		out.HandlerSuffix = "_handler.go"
	}
	if out.ResponseType == "" {
		out.ResponseType = "respond.Response"
	}

	return out, nil
}

// HelperCodes resolves the configured extra constructor names against the
// known status codes.
func (c *Config) HelperCodes() (map[string]reconcile.Code, error) {
	if len(c.Helpers) == 0 {
		return nil, nil
	}

	out := make(map[string]reconcile.Code, len(c.Helpers))

	for helper, name := range c.Helpers {
		code, err := reconcile.CodeByName(name)

		if err != nil {
			return nil, fmt.Errorf("helper %v: %w", helper, err)
		}

		out[helper] = code
	}

	return out, nil
}
