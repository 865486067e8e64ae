package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return storyerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Backgrounds))
	for i, bg := range cfg.Backgrounds {
		if prev, exists := seen[bg.Name]; exists {
			return storyerrors.NewValidationError(
				fmt.Sprintf("backgrounds[%d].name", i),
				fmt.Sprintf("duplicate background %q (first declared at backgrounds[%d])", bg.Name, prev),
				nil,
			)
		}
		seen[bg.Name] = i
	}

	if cfg.DefaultBackground != "" && len(cfg.Backgrounds) > 0 {
		if _, ok := seen[cfg.DefaultBackground]; !ok {
			return storyerrors.NewValidationError(
				"default_background",
				fmt.Sprintf("references unknown preset %q (known: %s)", cfg.DefaultBackground, strings.Join(cfg.BackgroundNames(), ", ")),
				nil,
			)
		}
	}

	decorators := make(map[string]struct{}, len(cfg.Decorators))
	for i, name := range cfg.Decorators {
		if _, dup := decorators[name]; dup {
			return storyerrors.NewValidationError(fmt.Sprintf("decorators[%d]", i), fmt.Sprintf("decorator %q listed twice", name), nil)
		}
		decorators[name] = struct{}{}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return storyerrors.NewValidationError(field, msg, err)
	}

	return storyerrors.NewValidationError("config", err.Error(), err)
}

// fieldPath drops the root struct name from the validator namespace, leaving
// the yaml path, e.g. "backgrounds[1].value".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
