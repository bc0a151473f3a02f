package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// plainAmount is an unsigned decimal without exponent; the length bound keeps parsing cheap
var plainAmount = regexp.MustCompile(`^[0-9]{1,13}(\.[0-9]{1,2})?$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("year_month", validateYearMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatErrors converts validation errors into "field: message" details.
// Errors that are not validation errors are returned as a single detail.
func FormatErrors(err error) []string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}
	return details
}

// ErrorCode picks the API error code for a validation failure: VALIDATION_002 when
// only required fields are missing, VALIDATION_005 when only dates are malformed.
func ErrorCode(err error) apierrors.ErrorCode {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apierrors.ValidationGeneral
	}

	missing, dates := 0, 0
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			missing++
		case "iso_date", "year_month":
			dates++
		}
	}

	switch len(validationErrors) {
	case missing:
		return apierrors.ValidationRequiredField
	case dates:
		return apierrors.ValidationInvalidDate
	default:
		return apierrors.ValidationGeneral
	}
}

// describe converts a validator.FieldError to a human-readable message
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "transaction_type":
		return "must be income or expense"
	case "positive_amount":
		return "must be a positive decimal number below 1000000000000 with at most 2 decimal places"
	case "category":
		return "must be one of: " + strings.Join(models.AllCategories(), ", ")
	case "iso_date":
		return "must be a date in YYYY-MM-DD format"
	case "year_month":
		return "must be a month in YYYY-MM format"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// Custom validation functions

// validateTransactionType validates that transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validatePositiveAmount validates that an amount is greater than 0, below models.MaxAmount
// and has at most 2 decimal places. Strings must be plain decimal notation.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.String:
		s := strings.TrimSpace(field.String())
		if !plainAmount.MatchString(s) {
			return false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return false
		}
		return models.IsValidAmount(d)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return models.IsValidAmount(decimal.NewFromInt(field.Int()))
	case reflect.Float32, reflect.Float64:
		return models.IsValidAmount(decimal.NewFromFloat(field.Float()))
	default:
		return false
	}
}

// validateCategory validates that the category is one of the fixed categories
func validateCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01", fl.Field().String())
	return err == nil
}
