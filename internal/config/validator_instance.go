package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	presetNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	cssVarPattern     = regexp.MustCompile(`^var\(--[a-z][a-z0-9-]*\)$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("preset_name", func(fl validator.FieldLevel) bool {
			return presetNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			return IsCSSColor(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// IsCSSColor reports whether value is a hex colour or a token reference of the form var(--name).
func IsCSSColor(value string) bool {
	if cssVarPattern.MatchString(value) {
		return true
	}
	return validatorInstance().Var(value, "hexcolor") == nil
}

// IsTokenName reports whether name is usable as a token or preset identifier.
func IsTokenName(name string) bool {
	return presetNamePattern.MatchString(name)
}
