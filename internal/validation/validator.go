package validation

import (
	"reflect"
	"regexp"
	"strings"

	"crm-assessment/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("lead_status", validateLeadStatus)
	_ = v.RegisterValidation("lead_status_filter", validateLeadStatusFilter)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validatePhone validates a phone number: optional leading +, then 7-16 digits
// with optional dash/space separators
func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if phone == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\+?[0-9][0-9 \-]{5,18}[0-9]$`, phone)
	return matched
}

// validateLeadStatus validates that a status is one of the stored lead statuses
func validateLeadStatus(fl validator.FieldLevel) bool {
	return models.IsValidLeadStatus(fl.Field().String())
}

// validateLeadStatusFilter accepts a stored lead status or the "All" sentinel
func validateLeadStatusFilter(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	return status == models.LeadStatusFilterAll || models.IsValidLeadStatus(status)
}

// validateNonNegativeAmount validates that a decimal amount is >= 0
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !amount.IsNegative()
}
