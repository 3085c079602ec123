package components

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the validator shared by component configs.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			_, err := ParseThemeMode(fl.Field().String())
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

// Validator exposes the component validator so config loaders share its custom tags.
func Validator() *validator.Validate {
	return validatorInstance()
}
