package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/tsenadheera/portfolio/internal/contact/domain"
	"github.com/tsenadheera/portfolio/internal/notify"
)

var htmlBody = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #0ef; text-align: center;">New Portfolio Contact</h2>
  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <div style="margin-top: 20px;">
      <strong>Message:</strong>
      <div style="background: white; padding: 15px; border-radius: 4px; margin-top: 10px;">
        {{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
      </div>
    </div>
  </div>
  <p style="text-align: center; margin-top: 20px; color: #666;">Sent from your portfolio website</p>
</div>
`))

// FormatMessage renders a submission as a notification with rich and
// plain-text bodies. User input is escaped in the rich body.
func FormatMessage(sub domain.Submission, to, from string) (notify.Message, error) {
	var buf bytes.Buffer
	err := htmlBody.Execute(&buf, struct {
		domain.Submission
		Lines []string
	}{sub, strings.Split(normalizeNewlines(sub.Message), "\n")})
	if err != nil {
		return notify.Message{}, fmt.Errorf("render contact html: %w", err)
	}

	text := fmt.Sprintf("New Portfolio Contact\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		sub.Name, sub.Email, sub.Subject, sub.Message)

	return notify.Message{
		To:      to,
		From:    from,
		ReplyTo: sub.Email,
		Subject: "Portfolio Contact: " + sub.Subject,
		HTML:    buf.String(),
		Text:    text,
	}, nil
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
