package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern is the login email format.
	EmailPattern = `(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// DatePattern is a calendar date as YYYY-MM-DD, the student password format.
	DatePattern = `^\d{4}-\d{2}-\d{2}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Date  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Date:  regexp.MustCompile(DatePattern),
}

// StringValidation checks one named string field.
type StringValidation struct {
	Field    string
	Value    string
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a required-field validation. The value is
// trimmed before checking.
func NewStringValidation(field, value string) *StringValidation {
	return &StringValidation{
		Field:    field,
		Value:    strings.TrimSpace(value),
		Required: true,
	}
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate returns nil or an error naming the field and the broken rule.
func (v *StringValidation) Validate() error {
	if v.Value == "" {
		if v.Required {
			return fmt.Errorf("%s cannot be empty", v.Field)
		}
		return nil
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return fmt.Errorf("%s has an invalid format", v.Field)
	}
	return nil
}

// First runs the validations in order and returns the first failure.
func First(validations ...*StringValidation) error {
	for _, v := range validations {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
