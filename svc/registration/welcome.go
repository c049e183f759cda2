package registration

import (
	"context"
	"fmt"

	"github.com/classtym/campaign/pkg/email"
	"github.com/classtym/campaign/pkg/email/templates"
)

// WelcomeSubject is the subject of the welcome email.
const WelcomeSubject = "Welcome to ClassTym"

// Welcomer sends the welcome email through an email.EmailSender.
type Welcomer struct {
	sender        email.EmailSender
	getStartedURL string
	supportEmail  string
}

// NewWelcomer creates a Welcomer. getStartedURL is the "Get Started" link
// target; supportEmail is shown as the contact address.
func NewWelcomer(sender email.EmailSender, getStartedURL, supportEmail string) *Welcomer {
	return &Welcomer{sender: sender, getStartedURL: getStartedURL, supportEmail: supportEmail}
}

// SendWelcome renders and sends the welcome email to the registrant.
func (w *Welcomer) SendWelcome(ctx context.Context, req Request) error {
	body, err := templates.Render(ctx, templates.Welcome(templates.WelcomeData{
		Name:          req.FullName,
		GetStartedURL: w.getStartedURL,
		SupportEmail:  w.supportEmail,
	}))
	if err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}

	return w.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   req.Email,
		Subject:  WelcomeSubject,
		BodyHTML: body,
		Tag:      "welcome",
	})
}
