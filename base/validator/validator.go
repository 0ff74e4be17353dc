package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail returns is an email address well formed or not
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsCampusEmail reports whether the email belongs to the allowed campus domain
func IsCampusEmail(email, allowedDomain string) bool {
	if !IsValidEmail(email) {
		return false
	}
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(allowedDomain))
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
