// Package config loads and validates service configuration from defaults,
// YAML files and environment variables, in that order of precedence.
package config

import (
	"github.com/XiaoConstantine/checklist-go/pkg/checklist"
)

// Config is the root service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" validate:"required"`
	Logging   LoggingConfig   `yaml:"logging"`
	Checklist ChecklistConfig `yaml:"checklist"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Address string `yaml:"address" validate:"required"`

	// CORSOrigins lists allowed browser origins for the MCP endpoints.
	CORSOrigins []string `yaml:"cors_origins"`

	// VerificationToken is served as plain text at /.well-known/openai-api
	// for domain-ownership proof. Empty disables the endpoint.
	VerificationToken string `yaml:"verification_token"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR FATAL"`
	File  string `yaml:"file"`
}

// ChecklistConfig configures the generation pipeline.
type ChecklistConfig struct {
	Locale             string `yaml:"locale" validate:"omitempty,oneof=en zh"`
	BulletAware        bool   `yaml:"bullet_aware"`
	SplitConjunctions  bool   `yaml:"split_conjunctions"`
	ParameterizedSteps bool   `yaml:"parameterized_steps"`
}

// GeneratorOptions maps the checklist section onto pipeline options.
func (c ChecklistConfig) GeneratorOptions() checklist.Options {
	return checklist.Options{
		Segmenter: checklist.SegmenterOptions{
			BulletAware:       c.BulletAware,
			SplitConjunctions: c.SplitConjunctions,
		},
		Parameterized: c.ParameterizedSteps,
	}
}

// Default returns the baseline configuration before any source is applied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
		Checklist: ChecklistConfig{
			Locale:            checklist.LocaleEN,
			BulletAware:       true,
			SplitConjunctions: true,
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty or missing), then environment overrides,
// then validation.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := applyFile(cfg, path); err != nil {
		return nil, err
	}
	applyEnvironment(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
