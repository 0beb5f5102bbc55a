// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound requests.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator.Validate instance.
type EchoValidator struct {
	validate *validator.Validate
}

// New is the constructor for EchoValidator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
