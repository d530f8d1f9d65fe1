// Package forms validates user input before it is sent to the API. A form
// that fails validation yields a *ValidationError whose Message is shown
// verbatim; no request is made.
package forms

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError names the first offending field and the text to show.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		_, err := ParsePrice(fl.Field().String())
		return err == nil
	})
	return v
}

// rule maps a failed (field, tag) pair to a message. An empty field matches
// any field. Rules are tried in order, so earlier rules win when several
// fields fail at once.
type rule struct {
	field   string
	tag     string
	message string
}

func check(form any, rules []rule) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	for _, r := range rules {
		for _, fe := range ve {
			if fe.Tag() == r.tag && (r.field == "" || r.field == fe.StructField()) {
				return &ValidationError{Field: fe.StructField(), Message: r.message}
			}
		}
	}

	fe := ve[0]
	return &ValidationError{Field: fe.StructField(), Message: "Invalid " + strings.ToLower(fe.StructField())}
}

var errInvalidPrice = errors.New("invalid price")

// ParsePrice accepts a finite decimal number that is not negative.
func ParsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0, errInvalidPrice
	}
	return p, nil
}
