package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the command-line options shared by all commands.
type Config struct {
	Output string
}

// NewConfig Create New Config
func NewConfig() *Config {
	return &Config{
		Output: OutputJSON,
	}
}

// AddFlags Add Flags
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Output, "output", "o", c.Output, "Output format: json or yaml")
}

// Validate checks the option values.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", c.Output)
	}
}

// Write encodes v to w in the configured output format.
func (c *Config) Write(w io.Writer, v any) error {
	switch c.Output {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
