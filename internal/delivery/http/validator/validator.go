// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	domainerrors "linkvault/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports failures as VALIDATION_FAILED.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the struct tags of i.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+" "+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", "))
}
