package middleware

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"time"

	"shop-admin/internal/apperr"
	"shop-admin/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator instance
var validate *validator.Validate

// Earliest calendar date an order may carry.
var minOrderDate = domain.NewDate(2020, time.January, 1)

func init() {
	validate = validator.New()

	// Report json field names so validation detail matches the wire format
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Expose decimal fields to the numeric rules (gte etc.)
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Expose domain.Date as time.Time for the orderdate rule
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(domain.Date); ok {
			return d.Time()
		}
		return nil
	}, domain.Date{})

	validate.RegisterValidation("orderdate", validateOrderDate)
}

// validateOrderDate enforces the minimum calendar date for orders
func validateOrderDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.Before(minOrderDate.Time())
}

// ValidateRequest validates a payload struct against its validation tags
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// DecodeAndValidate decodes a JSON request body and validates it. All
// failing fields are aggregated; the caller sees the full set at once.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return ValidateRequest(v)
}

// FormatValidationErrors converts validator errors into field-level detail
func FormatValidationErrors(err error) []apperr.FieldError {
	var fields []apperr.FieldError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			fields = append(fields, apperr.FieldError{
				Field:   e.Field(),
				Message: getErrorMessage(e),
			})
		}
	}

	return fields
}

func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gte":
		return "Value must be greater than or equal to " + e.Param()
	case "lte":
		return "Value must be less than or equal to " + e.Param()
	case "orderdate":
		return "Order date must be on or after " + minOrderDate.String()
	default:
		return "Invalid value"
	}
}
