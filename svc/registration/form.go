package registration

import (
	"github.com/classtym/campaign/svc/funnel"
)

// ErrorSet maps a wire field name to the one message shown for it.
type ErrorSet map[string]string

// Clear removes the error for field.
func (e ErrorSet) Clear(field string) {
	delete(e, field)
}

// Form is the state of one registration form between attempts: the values,
// the errors of the last attempt and the field to focus.
type Form struct {
	Funnel  *funnel.Funnel
	Request Request
	Errors  ErrorSet
	Focus   string
}

// NewForm returns an empty form with the funnel's mobile prefix preset.
func NewForm(f *funnel.Funnel) *Form {
	form := &Form{Funnel: f}
	form.Reset()
	return form
}

// Set updates a field by wire name and clears its error.
func (f *Form) Set(field, value string) {
	switch field {
	case f.Funnel.Fields.FullName:
		f.Request.FullName = value
	case f.Funnel.Fields.MobileNumber:
		f.Request.MobileNumber = value
	case f.Funnel.Fields.Email:
		f.Request.Email = value
	case f.Funnel.Fields.Subject:
		f.Request.Subject = value
	case FieldIPAddress:
		f.Request.IPAddress = value
	case FieldUTMSource:
		f.Request.UTMSource = value
	case FieldUTMCampaign:
		f.Request.UTMCampaign = value
	case FieldUTMMedium:
		f.Request.UTMMedium = value
	default:
		return
	}
	f.Errors.Clear(field)
	if f.Focus == field {
		f.Focus = ""
	}
}

// Reset empties every field, errors included. The mobile number goes
// back to the funnel's default prefix.
func (f *Form) Reset() {
	f.Request = Request{MobileNumber: f.Funnel.DefaultMobilePrefix}
	f.Errors = ErrorSet{}
	f.Focus = ""
}

// Values returns the visible form fields keyed by wire name.
func (f *Form) Values() map[string]string {
	return map[string]string{
		f.Funnel.Fields.FullName:     f.Request.FullName,
		f.Funnel.Fields.MobileNumber: f.Request.MobileNumber,
		f.Funnel.Fields.Email:        f.Request.Email,
		f.Funnel.Fields.Subject:      f.Request.Subject,
	}
}
