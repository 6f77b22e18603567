package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the project-specific rules into the validator.
func registerCustomRules(v *validator.Validate) error {
	// notplaceholder rejects the literal "string" that API consoles send as
	// a default value, along with empty or whitespace-only input. Evaluator
	// endpoints use it so no model call is ever made for junk input.
	return v.RegisterValidation("notplaceholder", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value != "string" && strings.TrimSpace(value) != ""
	})
}
