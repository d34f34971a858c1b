package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/XiaoConstantine/checklist-go/pkg/errors"
)

// Environment variable names recognized by applyEnvironment.
const (
	EnvAddress     = "CHECKLIST_ADDRESS"
	EnvLogLevel    = "CHECKLIST_LOG_LEVEL"
	EnvLogFile     = "CHECKLIST_LOG_FILE"
	EnvLocale      = "CHECKLIST_LOCALE"
	EnvVerifyToken = "CHECKLIST_VERIFY_TOKEN"
	EnvBulletAware = "CHECKLIST_BULLET_AWARE"
)

// applyFile merges the YAML file at path into cfg. A missing file is not an
// error so deployments can run on defaults plus environment alone.
func applyFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.WithFields(errors.Wrap(err, errors.InvalidInput, "failed to read config file"), errors.Fields{
			"path": path,
		})
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.WithFields(errors.Wrap(err, errors.InvalidInput, "failed to parse config file"), errors.Fields{
			"path": path,
		})
	}
	return nil
}

// applyEnvironment overrides individual fields from the process environment.
func applyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvAddress); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.Checklist.Locale = v
	}
	if v := os.Getenv(EnvVerifyToken); v != "" {
		cfg.Server.VerificationToken = v
	}
	if v := os.Getenv(EnvBulletAware); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.Checklist.BulletAware = parsed
		}
	}
}
