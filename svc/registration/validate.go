package registration

import (
	"github.com/classtym/campaign/pkg/validator"
	"github.com/classtym/campaign/svc/funnel"
)

// Length caps for free-text fields, in characters.
const (
	MaxNameLength    = 100
	MaxSubjectLength = 500
)

// FieldError is the single client-side validation failure of an attempt.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks req in field order and reports only the first failure,
// keyed by the funnel's wire name.
func Validate(f *funnel.Funnel, req Request) *FieldError {
	fields, msg := f.Fields, f.Messages

	err := validator.ApplyFirst(
		validator.RequiredString(fields.FullName, req.FullName).WithMessage(msg.NameRequired),
		validator.MaxLenString(fields.FullName, req.FullName, MaxNameLength).WithMessage(msg.NameTooLong),
		validator.RequiredString(fields.MobileNumber, req.MobileNumber).WithMessage(msg.PhoneRequired),
		validator.ValidStrictPhone(fields.MobileNumber, req.MobileNumber).WithMessage(msg.PhoneInvalid),
		validator.RequiredString(fields.Email, req.Email).WithMessage(msg.EmailRequired),
		validator.ValidEmail(fields.Email, req.Email).WithMessage(msg.EmailInvalid),
		validator.RequiredString(fields.Subject, req.Subject).WithMessage(msg.SubjectRequired),
		validator.MaxLenString(fields.Subject, req.Subject, MaxSubjectLength).WithMessage(msg.SubjectTooLong),
	)

	first := validator.FirstError(err)
	if first == nil {
		return nil
	}
	return &FieldError{Field: first.Field, Message: first.Message}
}
