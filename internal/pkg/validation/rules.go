package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterRules installs the custom tags on gin's validator engine and makes
// field errors report JSON field names. Safe to call more than once.
func RegisterRules() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = Register(v)
	})
	return err
}

// Register installs the custom tags on v
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	return v.RegisterValidation("notblank", notBlank)
}

// notBlank rejects strings made only of whitespace
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// FieldMessage renders a single field error as a human readable sentence
func FieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}
