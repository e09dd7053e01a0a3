// Package validator bridges go-playground/validator into Echo so handlers
// can call c.Validate on typed request DTOs.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator implements echo.Validator on top of go-playground/validator.
type echoValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the Echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags on a request DTO.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
