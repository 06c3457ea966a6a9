// Package validation implements the field-level rule engine behind form
// validation. Rules are evaluated in a fixed order and only the first failing
// rule's message is reported per field. Rule violations are values, never
// errors: the engine has no failure mode of its own.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Default messages for rules that carry no custom message.
const (
	MsgRequired       = "This field is required"
	MsgInvalidEmail   = "Invalid email format"
	MsgInvalidPattern = "Invalid format"
)

// emailPattern accepts the usual local@domain.tld shape: no whitespace, a
// single @, and a dot somewhere in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule is the validation configuration for one field. Zero-value fields
// disable the corresponding check.
type Rule struct {
	Required  bool
	MinLength int
	Email     bool

	// Pattern, when non-nil, must match the value; PatternMessage overrides
	// the generic message.
	Pattern        *regexp.Regexp
	PatternMessage string

	// Custom is evaluated last. A non-empty return is the failure message;
	// it can flag values every prior check let through.
	Custom func(value string) string
}

// Rules maps field names to their rule.
type Rules map[string]Rule

// CheckField evaluates the rule against a value and returns the first
// failing check's message, or "" when the value passes. Evaluation order is
// fixed: required, minLength, email, pattern, custom. The presence-dependent
// checks fall through silently on an empty value; catching absence is
// required's job.
func CheckField(value string, rule Rule) string {
	if rule.Required && isBlank(value) {
		return MsgRequired
	}

	if rule.MinLength > 0 && value != "" && len([]rune(value)) < rule.MinLength {
		return minLengthMessage(rule.MinLength)
	}

	if rule.Email && value != "" && !emailPattern.MatchString(value) {
		return MsgInvalidEmail
	}

	if rule.Pattern != nil && value != "" && !rule.Pattern.MatchString(value) {
		if rule.PatternMessage != "" {
			return rule.PatternMessage
		}
		return MsgInvalidPattern
	}

	if rule.Custom != nil {
		if msg := rule.Custom(value); msg != "" {
			return msg
		}
	}

	return ""
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func minLengthMessage(n int) string {
	return fmt.Sprintf("Must be at least %d characters", n)
}
