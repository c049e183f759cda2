package email

import (
	"context"
	"errors"
	"strings"

	"github.com/classtym/campaign/pkg/validator"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`       // Email address of the recipient
	Subject  string `json:"subject"`       // Subject of the email
	BodyHTML string `json:"body_html"`     // HTML body of the email
	Tag      string `json:"tag,omitempty"` // Optional
}

// Validate checks that the recipient is a valid address and that subject and body are present.
func (p SendEmailParams) Validate() error {
	err := validator.Apply(
		validator.RequiredString("send_to", p.SendTo).WithMessage("SendTo is required"),
		validator.ValidEmail("send_to", strings.TrimSpace(p.SendTo)).WithMessage("SendTo must be a valid email address"),
		validator.RequiredString("subject", p.Subject).WithMessage("Subject is required"),
		validator.RequiredString("body_html", p.BodyHTML).WithMessage("BodyHTML is required"),
	)
	if err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

// New picks the sender for cfg: Postmark when a server token is set, the
// dev file sender when DevDir is set, ErrNotConfigured otherwise.
func New(cfg Config) (EmailSender, error) {
	switch {
	case cfg.PostmarkServerToken != "":
		return NewPostmarkClient(cfg)
	case cfg.DevDir != "":
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, ErrNotConfigured
	}
}
