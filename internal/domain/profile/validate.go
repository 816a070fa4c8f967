// Package profile holds the operations on profile documents: validation, URL
// normalization, link ordering, the canonical encoding and the tag schemas.
package profile

import (
	"regexp"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag name.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return v
}

// ValidUsername reports whether username matches ^[a-z0-9-]+$.
func ValidUsername(username string) bool {
	return validate.Var(username, "username") == nil
}

// Validate checks a document before it is published. A blank name or username is
// reported as MissingRequiredField before the username format is checked.
func Validate(p *entity.Profile) error {
	if p == nil {
		return domainerrors.ErrMissingRequiredField.WithDetails("profile")
	}

	required := []struct {
		field string
		value string
	}{
		{"name", p.Name},
		{"username", p.Username},
	}
	for _, r := range required {
		if err := validate.Var(r.value, "notblank"); err != nil {
			return domainerrors.ErrMissingRequiredField.WithDetails(r.field)
		}
	}

	if !ValidUsername(p.Username) {
		return domainerrors.ErrInvalidUsername.WithDetails(p.Username)
	}

	if p.Settings.PasswordProtected && validate.Var(p.Settings.Password, "notblank") != nil {
		return domainerrors.ErrMissingRequiredField.WithDetails("settings.password")
	}
	if p.Settings.AgeRestricted && validate.Var(p.Settings.MinimumAge, "gt=0") != nil {
		return domainerrors.ErrValidationFailed.WithDetails("settings.minimumAge must be greater than zero")
	}

	seen := make(map[string]struct{}, len(p.Links))
	for _, link := range p.Links {
		if validate.Var(link.ID, "notblank") != nil {
			return domainerrors.ErrMissingRequiredField.WithDetails("links.id")
		}
		if _, dup := seen[link.ID]; dup {
			return domainerrors.ErrValidationFailed.WithDetails("duplicate link id " + link.ID)
		}
		seen[link.ID] = struct{}{}
	}

	return nil
}
