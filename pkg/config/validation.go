package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/XiaoConstantine/checklist-go/pkg/errors"
)

var validate = validator.New()

// Validate checks the effective configuration against the struct contract.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.InvalidInput, "config must not be nil")
	}

	if err := validate.Struct(cfg); err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.Wrap(err, errors.ValidationFailed, "config validation failed")
		}

		fields := errors.Fields{}
		for _, fe := range fieldErrors {
			fields[fe.Namespace()] = fe.Tag()
		}
		return errors.WithFields(errors.New(errors.ValidationFailed, "config validation failed"), fields)
	}
	return nil
}
