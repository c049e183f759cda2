package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// Strict phone regex - E.164, country code prefix is mandatory
var strictPhoneRegex = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

// ValidEmail validates that a string is a valid email address using RFC 5322.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// Display names and angle brackets are not accepted in a form field.
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value || addr.Name != "" {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidStrictPhone validates a phone number that must carry its country code,
// e.g. +919876543210. Spaces and dashes are ignored.
func ValidStrictPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strictPhoneRegex.MatchString(cleanPhone(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number with country code",
			TranslationKey: "validation.phone_strict",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func cleanPhone(value string) string {
	value = strings.TrimSpace(value)
	return strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
}
