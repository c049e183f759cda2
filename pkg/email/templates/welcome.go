package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// WelcomeData fills the welcome email sent after a successful registration.
type WelcomeData struct {
	Name          string
	GetStartedURL string
	SupportEmail  string
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Welcome to ClassTym</title>
</head>
<body style="margin:0;padding:0;background:#f4f5f7;font-family:Arial,Helvetica,sans-serif;color:#1f2933;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="padding:24px 0;">
<tr><td align="center">
<table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;padding:32px;">
<tr><td>
<h1 style="font-size:22px;margin:0 0 16px;">Welcome to ClassTym</h1>
<p style="font-size:15px;line-height:22px;margin:0 0 16px;">Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</p>
<p style="font-size:15px;line-height:22px;margin:0 0 24px;">Please click on Get Started to complete your profile and start using ClassTym.</p>
<p style="margin:0 0 24px;"><a href="{{.GetStartedURL}}" style="display:inline-block;background:#4f46e5;color:#ffffff;text-decoration:none;padding:12px 24px;border-radius:6px;font-weight:bold;">Get Started</a></p>
<p style="font-size:13px;line-height:20px;color:#52606d;margin:0;">Questions? Write to us at <a href="mailto:{{.SupportEmail}}" style="color:#4f46e5;">{{.SupportEmail}}</a>.</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>
`))

// Welcome returns the welcome email component.
func Welcome(data WelcomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return welcomeTemplate.Execute(w, data)
	})
}
