package validation

import (
	"regexp"
	"testing"
)

func TestCheckFieldRequired(t *testing.T) {
	rule := Rule{Required: true}

	for _, value := range []string{"", "   ", "\t\n"} {
		if msg := CheckField(value, rule); msg != MsgRequired {
			t.Errorf("CheckField(%q) = %q, want required message", value, msg)
		}
	}
	if msg := CheckField("x", rule); msg != "" {
		t.Errorf("CheckField(\"x\") = %q, want valid", msg)
	}
}

func TestCheckFieldMinLength(t *testing.T) {
	rule := Rule{MinLength: 5}

	if msg := CheckField("abc", rule); msg == "" {
		t.Error("expected minLength violation for short value")
	}
	if msg := CheckField("abcde", rule); msg != "" {
		t.Errorf("CheckField(\"abcde\") = %q, want valid", msg)
	}
	// Absent value falls through silently; required is responsible for absence.
	if msg := CheckField("", rule); msg != "" {
		t.Errorf("CheckField(\"\") = %q, want silent fall-through", msg)
	}
}

func TestCheckFieldEmail(t *testing.T) {
	rule := Rule{Email: true}

	valid := []string{"user@example.com", "a.b@sub.domain.org"}
	for _, v := range valid {
		if msg := CheckField(v, rule); msg != "" {
			t.Errorf("CheckField(%q) = %q, want valid", v, msg)
		}
	}

	invalid := []string{"bad", "no@tld", "two@@example.com", "has space@example.com"}
	for _, v := range invalid {
		if msg := CheckField(v, rule); msg != MsgInvalidEmail {
			t.Errorf("CheckField(%q) = %q, want email message", v, msg)
		}
	}

	// Empty value falls through silently.
	if msg := CheckField("", rule); msg != "" {
		t.Errorf("CheckField(\"\") = %q, want silent fall-through", msg)
	}
}

// The email rule alone must report the email message, not the required one.
func TestEmailRuleWithoutRequired(t *testing.T) {
	rule := Rule{Email: true}
	if msg := CheckField("bad", rule); msg != MsgInvalidEmail {
		t.Errorf("CheckField(\"bad\") = %q, want %q", msg, MsgInvalidEmail)
	}
}

func TestCheckFieldPattern(t *testing.T) {
	rule := Rule{Pattern: regexp.MustCompile(`^[0-9]{5}$`), PatternMessage: "Invalid postal code"}

	if msg := CheckField("7500", rule); msg != "Invalid postal code" {
		t.Errorf("CheckField(\"7500\") = %q, want custom pattern message", msg)
	}
	if msg := CheckField("75001", rule); msg != "" {
		t.Errorf("CheckField(\"75001\") = %q, want valid", msg)
	}

	// Generic fallback when no custom message is supplied.
	generic := Rule{Pattern: regexp.MustCompile(`^[a-z]+$`)}
	if msg := CheckField("123", generic); msg != MsgInvalidPattern {
		t.Errorf("CheckField(\"123\") = %q, want %q", msg, MsgInvalidPattern)
	}
}

func TestCheckFieldCustom(t *testing.T) {
	rule := Rule{Custom: func(value string) string {
		if value == "forbidden" {
			return "Value not allowed"
		}
		return ""
	}}

	if msg := CheckField("forbidden", rule); msg != "Value not allowed" {
		t.Errorf("CheckField(\"forbidden\") = %q, want custom message", msg)
	}
	if msg := CheckField("anything else", rule); msg != "" {
		t.Errorf("CheckField() = %q, want valid", msg)
	}
}

// First failing rule wins: required precedes minLength, minLength precedes
// email, and so on.
func TestCheckFieldPrecedence(t *testing.T) {
	rule := Rule{Required: true, MinLength: 10, Email: true}

	if msg := CheckField("", rule); msg != MsgRequired {
		t.Errorf("empty value: got %q, want required message first", msg)
	}
	if msg := CheckField("a@b.co", rule); msg == MsgInvalidEmail {
		t.Error("minLength must be reported before email format")
	}
	if msg := CheckField("not-an-email-x", rule); msg != MsgInvalidEmail {
		t.Errorf("long non-email: got %q, want email message", msg)
	}
}

// Custom runs last and can flag values every prior check let through.
func TestCustomOverridesSilence(t *testing.T) {
	rule := Rule{
		Required: true,
		Custom: func(value string) string {
			if value == "valid-looking" {
				return "Rejected anyway"
			}
			return ""
		},
	}

	if msg := CheckField("valid-looking", rule); msg != "Rejected anyway" {
		t.Errorf("CheckField() = %q, want custom rejection", msg)
	}
}
