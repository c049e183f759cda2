// Package email sends transactional emails through Postmark, or writes them
// to disk in development.
//
// New selects the EmailSender from Config: a Postmark server token enables
// PostmarkClient, EMAIL_DEV_DIR enables DevSender, and neither yields
// ErrNotConfigured so the caller can run without mail. Bodies are rendered
// from templ components with the templates subpackage:
//
//	body, err := templates.Render(ctx, templates.Welcome(data))
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "asha@example.com",
//	    Subject:  "Welcome to ClassTym",
//	    BodyHTML: body,
//	    Tag:      "welcome",
//	})
//
// Invalid parameters fail with ErrInvalidParams before anything is sent;
// delivery failures wrap ErrFailedToSendEmail.
package email
