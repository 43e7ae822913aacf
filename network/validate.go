// SPDX-License-Identifier: MIT
package network

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// nameRules are the validator tags applied to every user name.
const nameRules = "required,max=64,username"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// username: printable runes only and no whitespace anywhere.
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if unicode.IsSpace(r) || !unicode.IsPrint(r) {
				return false
			}
		}
		return true
	}); err != nil {
		panic(err)
	}
	return v
}

// validateName checks name against nameRules.
func validateName(name string) error {
	if err := validate.Var(name, nameRules); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidName, name, err)
	}
	return nil
}
