// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports json field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate checks i against its validate tags.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	return errors.New(describe(fieldErrs))
}

// describe renders field errors as "email is required; name must be at most 100 characters".
func describe(fieldErrs validator.ValidationErrors) string {
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fe.Field()+" is required")
		case "email":
			messages = append(messages, fe.Field()+" must be a valid email address")
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}

	return strings.Join(messages, "; ")
}
