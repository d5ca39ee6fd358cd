package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects how generated assertion identifiers are produced.
type Mode string

const (
	// ModeCounter names assertions with a monotonic per-file counter.
	// Every directive gets a fresh identifier, so repeated use on one
	// source line is safe. This is the default.
	ModeCounter Mode = "counter"
	// ModeLine names assertions after the directive's source line.
	// Two directives on the same line produce the same identifier and the
	// generated file fails to compile with a redefinition error; callers
	// needing same-line use must supply explicit names.
	ModeLine Mode = "line"
)

// Config controls generation. It is loaded from .buildcheck.yml when
// present and overridable by flags on cmd/staticassert-gen.
type Config struct {
	// Mode is the identifier supply, counter or line.
	Mode Mode `yaml:"mode"`
	// Suffix replaces the source file's ".go" to form the generated
	// file's name.
	Suffix string `yaml:"suffix"`
	// Imports are added to every generated file so directive expressions
	// can reference packages such as unsafe.
	Imports []string `yaml:"imports"`
}

// DefaultConfig returns the configuration used when no .buildcheck.yml exists.
func DefaultConfig() Config {
	return Config{
		Mode:   ModeCounter,
		Suffix: "_assert.go",
	}
}

// LoadConfig reads a yaml configuration file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.Mode {
	case ModeCounter, ModeLine:
	default:
		return fmt.Errorf("unknown identifier mode %q", cfg.Mode)
	}

	if cfg.Suffix == "" || cfg.Suffix == ".go" {
		return fmt.Errorf("suffix %q would overwrite the source file", cfg.Suffix)
	}

	return nil
}
