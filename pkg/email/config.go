package email

// Config holds email service configuration. Sending is optional: with no
// Postmark server token and no DevDir the service runs without a mailer.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@classtym.com"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"info@classtym.com"`
	// DevDir makes the dev sender write messages to disk instead of sending them.
	DevDir string `env:"EMAIL_DEV_DIR"`
}

// Enabled reports whether any sender is configured.
func (c Config) Enabled() bool {
	return c.PostmarkServerToken != "" || c.DevDir != ""
}
