// Package config loads URI rewrite rules for the pathuri command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"lesiw.io/pathuri"
)

// Format is the encoding of a rules file.
type Format int

const (
	TOML Format = iota
	YAML
)

// Config holds the rewrite rules read from a rules file.
type Config struct {
	Rules      pathuri.Rules `toml:"rules" yaml:"rules"`
	NoDefaults bool          `toml:"no_default_rules" yaml:"no_default_rules"`
}

// Effective returns the rules to apply, in order: c.Rules first, followed by
// [pathuri.DefaultRules] unless they are disabled by c or noDefaults.
// A nil Config yields the default rules alone.
func (c *Config) Effective(noDefaults bool) pathuri.Rules {
	var rules pathuri.Rules
	if c != nil {
		rules = append(rules, c.Rules...)
		noDefaults = noDefaults || c.NoDefaults
	}
	if !noDefaults {
		rules = append(rules, pathuri.DefaultRules...)
	}
	return rules
}

// FormatOf returns the format implied by the extension of name.
// Files ending in .yaml or .yml are YAML; everything else is TOML.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// Read decodes and validates a Config from r.
func Read(r io.Reader, f Format) (*Config, error) {
	var cfg Config
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode yaml config: %w", err)
		}
	default:
		md, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode toml config: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, undec[0])
		}
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// ReadFromFile reads a Config from the file at name.
// The format is chosen by [FormatOf].
func ReadFromFile(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Read(f, FormatOf(name))
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", name, err)
	}
	return cfg, nil
}

// Write encodes rules to w as TOML, in the layout Read accepts.
func Write(w io.Writer, rules pathuri.Rules) error {
	cfg := Config{Rules: rules, NoDefaults: true}
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
