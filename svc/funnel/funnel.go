package funnel

import (
	"strings"
)

// Completion kinds.
const (
	CompleteWithMessage  = "message"
	CompleteWithRedirect = "redirect"
)

// Fields maps the logical registration fields to their wire names.
type Fields struct {
	FullName     string `yaml:"full_name"`
	MobileNumber string `yaml:"mobile_number"`
	Email        string `yaml:"email"`
	Subject      string `yaml:"subject"`
}

// All returns the wire names in validation order.
func (f Fields) All() []string {
	return []string{f.FullName, f.MobileNumber, f.Email, f.Subject}
}

// Messages holds the user-facing validation messages.
type Messages struct {
	NameRequired    string `yaml:"name_required"`
	NameTooLong     string `yaml:"name_too_long"`
	PhoneRequired   string `yaml:"phone_required"`
	PhoneInvalid    string `yaml:"phone_invalid"`
	EmailRequired   string `yaml:"email_required"`
	EmailInvalid    string `yaml:"email_invalid"`
	SubjectRequired string `yaml:"subject_required"`
	SubjectTooLong  string `yaml:"subject_too_long"`
}

// DefaultMessages are used for every message a funnel leaves empty.
var DefaultMessages = Messages{
	NameRequired:    "Please enter your name",
	NameTooLong:     "Please enter a shorter name",
	PhoneRequired:   "Please enter your phone number",
	PhoneInvalid:    "Please enter a valid phone number",
	EmailRequired:   "Please enter your email address",
	EmailInvalid:    "Please enter a valid email address",
	SubjectRequired: "Please enter the subject(s)",
	SubjectTooLong:  "Please shorten the subject(s)",
}

func (m Messages) withDefaults() Messages {
	pick := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	}
	return Messages{
		NameRequired:    pick(m.NameRequired, DefaultMessages.NameRequired),
		NameTooLong:     pick(m.NameTooLong, DefaultMessages.NameTooLong),
		PhoneRequired:   pick(m.PhoneRequired, DefaultMessages.PhoneRequired),
		PhoneInvalid:    pick(m.PhoneInvalid, DefaultMessages.PhoneInvalid),
		EmailRequired:   pick(m.EmailRequired, DefaultMessages.EmailRequired),
		EmailInvalid:    pick(m.EmailInvalid, DefaultMessages.EmailInvalid),
		SubjectRequired: pick(m.SubjectRequired, DefaultMessages.SubjectRequired),
		SubjectTooLong:  pick(m.SubjectTooLong, DefaultMessages.SubjectTooLong),
	}
}

// Completion is what happens after a successful registration.
type Completion struct {
	Kind        string `yaml:"kind"`
	RedirectURL string `yaml:"redirect_url"`
}

// Content describes the CMS content a funnel's landing page renders.
type Content struct {
	PageName string   `yaml:"page_name"`
	Sections []string `yaml:"sections"`
}

// HasSection reports whether endpoint is one of the funnel's sections.
func (c Content) HasSection(endpoint string) bool {
	for _, s := range c.Sections {
		if s == endpoint {
			return true
		}
	}
	return false
}

// Funnel is one registration flow of the campaign site.
type Funnel struct {
	Name                string            `yaml:"name"`
	Endpoint            string            `yaml:"endpoint"`
	Fields              Fields            `yaml:"fields"`
	Messages            Messages          `yaml:"messages"`
	Aliases             map[string]string `yaml:"aliases"`
	DefaultMobilePrefix string            `yaml:"default_mobile_prefix"`
	ReportAllErrors     bool              `yaml:"report_all_errors"`
	Completion          Completion        `yaml:"completion"`
	Content             Content           `yaml:"content"`
}

// FieldFor maps a field path reported by the upstream validator to the
// wire field it belongs to. Unknown paths are returned unchanged.
func (f *Funnel) FieldFor(path string) string {
	if alias, ok := f.Aliases[path]; ok && alias != "" {
		return alias
	}
	return path
}

// RedirectURL returns the post-registration redirect, or "" when the
// funnel completes with a message.
func (f *Funnel) RedirectURL() string {
	if f.Completion.Kind != CompleteWithRedirect {
		return ""
	}
	return f.Completion.RedirectURL
}
