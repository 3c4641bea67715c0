package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// ClockTimePattern matches a 24h "HH:MM" wall-clock time
	ClockTimePattern = `^([01][0-9]|2[0-3]):[0-5][0-9]$`

	// EmailPattern matches a lower-cased email address
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Course name length bounds
	NameMinLength = 2
	NameMaxLength = 200

	// Person and room name length bounds
	PersonNameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	ClockTime *regexp.Regexp
	Email     *regexp.Regexp
}{
	ClockTime: regexp.MustCompile(ClockTimePattern),
	Email:     regexp.MustCompile(EmailPattern),
}

// ClockTimeTag is the struct tag registered for HH:MM fields
const ClockTimeTag = "clocktime"

// RegisterCustomRules registers the project's custom tags on a validator instance.
// gin's binding engine is passed in from bootstrap.
func RegisterCustomRules(v *validator.Validate) error {
	return v.RegisterValidation(ClockTimeTag, func(fl validator.FieldLevel) bool {
		return CompiledPatterns.ClockTime.MatchString(fl.Field().String())
	})
}

// StringValidation validates a single string value
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
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

// Validate performs validation. Lengths are counted in runes.
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	n := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && n < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && n > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
