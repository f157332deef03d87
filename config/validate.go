// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	componentName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentName.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})

		validateInst = v
	})

	return validateInst
}

// ValidationError reports the first invalid field of a Config.
type ValidationError struct {
	// Field is the lowercase path of the field, such as
	// "config.ribbon.height".
	Field string
	Tag   string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s failed validation for tag '%s'", e.Field, e.Tag)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks cfg against its field rules.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return &ValidationError{Field: strings.ToLower(ve.StructNamespace()), Tag: ve.Tag(), Err: err}
	}
	return err
}
