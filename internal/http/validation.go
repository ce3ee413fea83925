package http

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/audiobook/internal/database"
)

const nonFieldErrors = "non_field_errors"

var bindingOnce sync.Once

// configureBinding rejects unknown JSON fields and makes validator errors
// report JSON field names. Must run before the first request is bound.
func configureBinding() {
	bindingOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// translateBindingError turns decoder and validator failures into
// field-level messages.
func translateBindingError(err error) *database.ValidationError {
	var (
		verr      *database.ValidationError
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			verr = verr.Add(fe.Field(), fieldMessage(fe))
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = nonFieldErrors
		}
		verr = verr.Add(field, typeMessage(typeErr.Type))
	case errors.Is(err, io.EOF):
		verr = verr.Add(nonFieldErrors, "No data provided.")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		verr = verr.Add(field, "Unknown field.")
	default:
		verr = verr.Add(nonFieldErrors, "Malformed JSON.")
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if isString {
			if fe.Param() == "1" {
				return "This field may not be blank."
			}
			return "Ensure this field has at least " + fe.Param() + " characters."
		}
		return "Ensure this value is greater than or equal to " + fe.Param() + "."
	case "max":
		if isString {
			return "Ensure this field has no more than " + fe.Param() + " characters."
		}
		return "Ensure this value is less than or equal to " + fe.Param() + "."
	case "email":
		return "Enter a valid email address."
	default:
		return "Invalid value."
	}
}

func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.String:
		return "Not a valid string."
	default:
		return "Incorrect type."
	}
}
