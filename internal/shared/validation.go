package shared

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports field names from json tags so
// validation errors match the wire format.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// AsValidationError converts the first violation in a validator error into a
// *ValidationError. Non-validator errors pass through unchanged.
func AsValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	field := verrs[0]
	if field.Tag() == "required" {
		return MissingField(field.Field())
	}
	return MalformedField(field.Field(), "failed "+field.Tag()+" validation")
}
