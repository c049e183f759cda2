package sanitizer

import (
	"strings"
	"unicode"
)

// MaskEmail keeps the first character of the local part and the full domain.
// Values that are not a single local@domain pair are masked entirely.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return strings.Repeat("*", len([]rune(email)))
	}

	first := []rune(local)[0]
	return string(first) + strings.Repeat("*", len([]rune(local))-1) + "@" + domain
}

// NormalizePhone keeps only the digits of a phone number.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// MaskPhone shows only the last four digits.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// MaskName keeps the initial of every word.
func MaskName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		words[i] = string(unicode.ToUpper(r[0])) + strings.Repeat("*", len(r)-1)
	}
	return strings.Join(words, " ")
}
