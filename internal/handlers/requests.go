package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/ruebensh/portfolio/internal/domain"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a CustomValidator sharing the domain rules, including
// the notblank tag.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: domain.Validator()}
}

// Validate implements the echo.Validator interface. Failures wrap
// domain.ErrInvalidInput with a readable message.
func (cv *CustomValidator) Validate(i interface{}) error {
	return domain.Validate(i)
}

// Bind decodes the request into in and validates it. Both kinds of failure
// wrap domain.ErrInvalidInput.
func Bind(c echo.Context, in any) error {
	if err := c.Bind(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return c.Validate(in)
}

// UserMessage turns an error into text fit for a flash message.
func UserMessage(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
		if msg == "" || msg == err.Error() {
			return fallback
		}
		return strings.ToUpper(msg[:1]) + msg[1:] + "."
	default:
		return fallback
	}
}
